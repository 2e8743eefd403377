// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gosl/chk"
)

// Solver implements one explicit time step
type Solver interface {
	Update(nodes *Nodes, parts *Particles, shape *shp.Shape, mats []*MatBatch, forces []Forcer) error // runs one step
	Clock() (nstep int, time float64)                                                                // returns the number of steps and the current time
}

// solverallocators holds all available solvers; type => allocator
var solverallocators = make(map[string]func(α, Δt float64) Solver)

// NewSolver returns a new solver
//  Input:
//   typ -- solver type; e.g. "usl"
//   α   -- FLIP/PIC blending in [0, 1]
//   Δt  -- time step
func NewSolver(typ string, α, Δt float64) (Solver, error) {
	if α < 0 || α > 1 {
		return nil, chk.Err("alpha=%g must be in [0, 1]", α)
	}
	if !(Δt > 0) {
		return nil, chk.Err("dt=%g must be positive", Δt)
	}
	alloc, ok := solverallocators[typ]
	if !ok {
		return nil, chk.Err("cannot find solver type named %q", typ)
	}
	return alloc(α, Δt), nil
}
