// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gosl/chk"
)

// Forcer applies body forces, boundary conditions or contact corrections on nodes
//  Apply runs after P2G and before the time integration of nodal momenta. It may modify
//  nodes.Force and nodes.MomentNt
type Forcer interface {
	Apply(nodes *Nodes, parts *Particles, shape *shp.Shape, Δt float64) error
}

// Recordable is implemented by forces with fields that can be recorded in snapshots
type Recordable interface {
	Field(name string) ([][]float64, error)
}

// forceallocators holds all available forces; type => allocator
var forceallocators = make(map[string]func(dat *inp.ForceData, nodes *Nodes) (Forcer, error))

// NewForce allocates a new force from input data
func NewForce(dat *inp.ForceData, nodes *Nodes) (Forcer, error) {
	allocator, ok := forceallocators[dat.Type]
	if !ok {
		return nil, chk.Err("cannot find force type named %q", dat.Type)
	}
	return allocator(dat, nodes)
}
