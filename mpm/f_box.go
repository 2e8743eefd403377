// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gosl/chk"
)

// DirichletBox constrains the nodes on the faces of the grid
//  Walls[a] holds the wall types of the lower and upper faces normal to axis a
type DirichletBox struct {
	Walls  [][2]int    // [ndim][2] wall types
	Layers int         // number of node layers of each face
	faces  []*NodeWall // non-free faces
}

// add force to factory
func init() {
	forceallocators["box"] = func(dat *inp.ForceData, nodes *Nodes) (Forcer, error) {
		if len(dat.Walls) != nodes.Ndim {
			return nil, chk.Err("box needs wall types for %d axes. %d were given", nodes.Ndim, len(dat.Walls))
		}
		walls := make([][2]int, nodes.Ndim)
		for a, names := range dat.Walls {
			if len(names) != 2 {
				return nil, chk.Err("box: axis %d needs a pair of wall types (lower and upper)", a)
			}
			for side, name := range names {
				typ, err := WallType(name)
				if err != nil {
					return nil, err
				}
				walls[a][side] = typ
			}
		}
		return NewDirichletBox(nodes, walls, dat.Layers)
	}
}

// NewDirichletBox returns a new box
func NewDirichletBox(nodes *Nodes, walls [][2]int, layers int) (o *DirichletBox, err error) {
	if len(walls) != nodes.Ndim {
		return nil, chk.Err("box needs wall types for %d axes", nodes.Ndim)
	}
	if layers < 1 {
		layers = 1
	}
	o = &DirichletBox{Walls: walls, Layers: layers}
	for a := 0; a < nodes.Ndim; a++ {
		if layers > nodes.Size[a] {
			return nil, chk.Err("box: %d layers exceed the %d nodes along axis %d", layers, nodes.Size[a], a)
		}
		for side := 0; side < 2; side++ {
			if walls[a][side] == WallFree {
				continue
			}
			face := &NodeWall{Type: walls[a][side], Axis: a, Side: 2*side - 1}
			for n := 0; n < nodes.Nnodes; n++ {
				i := nodes.Unravel(n)[a]
				if (side == 0 && i < layers) || (side == 1 && i >= nodes.Size[a]-layers) {
					face.Ids = append(face.Ids, n)
				}
			}
			o.faces = append(o.faces, face)
		}
	}
	return
}

// Apply applies force
func (o *DirichletBox) Apply(nodes *Nodes, parts *Particles, shape *shp.Shape, Δt float64) (err error) {
	for _, face := range o.faces {
		if err = face.Apply(nodes, parts, shape, Δt); err != nil {
			return
		}
	}
	return
}
