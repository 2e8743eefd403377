// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gosl/chk"
)

// wall types
const (
	WallFree      = iota // no constraint
	WallStick            // all velocity components are zero
	WallSlip             // normal velocity component is zero
	WallSeparable        // normal velocity component is zero if moving into the wall
)

// WallType returns the wall type code corresponding to name
func WallType(name string) (typ int, err error) {
	switch name {
	case "free", "":
		return WallFree, nil
	case "stick":
		return WallStick, nil
	case "slip":
		return WallSlip, nil
	case "separable":
		return WallSeparable, nil
	}
	return 0, chk.Err("wall type %q is invalid. options: free, stick, slip, separable", name)
}

// NodeWall constrains the velocity of a set of nodes
type NodeWall struct {
	Type int   // wall type
	Axis int   // normal direction
	Side int   // -1: the wall is at the lower side of the material; +1: upper side
	Ids  []int // node ids
}

// add force to factory
func init() {
	forceallocators["nodewall"] = func(dat *inp.ForceData, nodes *Nodes) (Forcer, error) {
		typ, err := WallType(dat.Wall)
		if err != nil {
			return nil, err
		}
		if dat.Axis < 0 || dat.Axis >= nodes.Ndim {
			return nil, chk.Err("nodewall: axis=%d is invalid for ndim=%d", dat.Axis, nodes.Ndim)
		}
		for _, n := range dat.Nodes {
			if n < 0 || n >= nodes.Nnodes {
				return nil, chk.Err("nodewall: node %d is outside the grid", n)
			}
		}
		side := -1
		if dat.Side > 0 {
			side = 1
		}
		return &NodeWall{Type: typ, Axis: dat.Axis, Side: side, Ids: dat.Nodes}, nil
	}
}

// Apply applies force
func (o *NodeWall) Apply(nodes *Nodes, parts *Particles, shape *shp.Shape, Δt float64) error {
	a := o.Axis
	for _, n := range o.Ids {
		switch o.Type {
		case WallStick:
			for i := 0; i < nodes.Ndim; i++ {
				nodes.MomentNt[n][i] = 0
				nodes.Force[n][i] = 0
			}
		case WallSlip:
			nodes.MomentNt[n][a] = 0
			nodes.Force[n][a] = 0
		case WallSeparable:
			pred := nodes.MomentNt[n][a] + nodes.Force[n][a]*Δt
			if pred*float64(o.Side) > 0 {
				nodes.MomentNt[n][a] = 0
				nodes.Force[n][a] = 0
			}
		}
	}
	return nil
}
