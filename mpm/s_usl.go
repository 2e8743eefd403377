// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/shp"
)

// USL implements the explicit Update-Stress-Last scheme
//  Each step runs:
//   1. reset grid
//   2. compute interactions (shape functions)
//   3. P2G
//   4. apply forces and boundary conditions
//   5. integrate nodal momenta
//   6. G2P
//   7. update stresses
//   8. advance clock
type USL struct {
	Alpha float64 // FLIP/PIC blending; 1 is pure FLIP
	Dt    float64 // time step
	Time  float64 // current time
	Nstep int     // number of completed steps

	transfer Transfer
}

// set factory of solvers
func init() {
	solverallocators["usl"] = func(α, Δt float64) Solver {
		return &USL{Alpha: α, Dt: Δt}
	}
}

// Clock returns the number of completed steps and the current time
func (o *USL) Clock() (nstep int, time float64) { return o.Nstep, o.Time }

// Update runs one step. Errors are returned as *StepError
func (o *USL) Update(nodes *Nodes, parts *Particles, shape *shp.Shape, mats []*MatBatch, forces []Forcer) (err error) {
	step, time := o.Nstep+1, o.Time
	defer func() {
		if err != nil {
			p, cause := particleOf(err)
			err = &StepError{Step: step, Time: time, Particle: p, Err: cause}
		}
	}()

	// grid and interactions
	nodes.Refresh()
	shape.Calc(nodes.Origin, nodes.InvH, nodes.Size, parts.X)

	// P2G
	o.P2G(nodes, parts, shape)

	// forces and boundary conditions
	for _, f := range forces {
		if err = f.Apply(nodes, parts, shape, o.Dt); err != nil {
			return
		}
	}

	// time integration on grid
	nodes.Integrate(o.Dt)

	// G2P and stresses
	if err = o.G2P(nodes, parts, shape); err != nil {
		return
	}
	if err = UpdateStress(parts, mats, o.Dt); err != nil {
		return
	}

	// clock
	o.Nstep++
	o.Time += o.Dt
	return parts.checkFinite()
}

// P2G transfers particle data to the grid
func (o *USL) P2G(nodes *Nodes, parts *Particles, shape *shp.Shape) {
	o.transfer.P2G(nodes, parts, shape)
}

// G2P transfers grid data back to particles
func (o *USL) G2P(nodes *Nodes, parts *Particles, shape *shp.Shape) error {
	return o.transfer.G2P(nodes, parts, shape, o.Alpha, o.Dt)
}
