// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpm implements the material point method: background grid, particles,
// particle-grid transfers, explicit solvers, forces and the time loop
package mpm

import (
	"time"

	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/msolid"
	"github.com/cpmech/gompm/par"
	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MPM holds all data for a simulation using the material point method
type MPM struct {
	Sim       *inp.Simulation // simulation data
	Nodes     *Nodes          // background grid
	Particles *Particles      // material points
	Shape     *shp.Shape      // shape functions
	Materials []*MatBatch     // materials and their particles
	Forces    []Forcer        // forces and boundary conditions
	Solver    Solver          // time integration scheme
	Summary   *Summary        // global quantities at output times
	Snapshots []*Snapshot     // recorded fields
	Verbose   bool            // show messages
}

// NewMPM returns a new MPM structure
//  Input:
//   simfilepath -- simulation (.yaml) filename including full path
//   alias       -- word to be appended to simulation key
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
func NewMPM(simfilepath, alias string, erasePrev, verbose bool) (o *MPM, err error) {

	// new MPM object
	o = &MPM{Verbose: verbose, Summary: new(Summary)}

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath, alias, erasePrev)
	if err != nil {
		return nil, err
	}
	if o.Sim.Solver.Nworkers > 0 {
		par.Nworkers = o.Sim.Solver.Nworkers
	}

	// grid
	o.Nodes, err = NewNodes(o.Sim.Grid.Origin, o.Sim.Grid.End, o.Sim.Grid.H)
	if err != nil {
		return nil, err
	}

	// materials
	models := make([]msolid.Model, len(o.Sim.Materials))
	for i, mat := range o.Sim.Materials {
		models[i], err = msolid.New(mat.Model)
		if err != nil {
			return nil, err
		}
		err = models[i].Init(o.Sim.Ndim, mat.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise material %q:\n%v", mat.Name, err)
		}
	}

	// particles
	err = o.genParticles(models)
	if err != nil {
		return nil, err
	}
	o.Materials, err = NewMatBatches(models, o.Particles)
	if err != nil {
		return nil, err
	}

	// shape functions
	o.Shape, err = shp.New(o.Sim.Solver.Shape, o.Particles.Np, o.Nodes.Ndim)
	if err != nil {
		return nil, err
	}
	err = o.Shape.CheckGrid(o.Nodes.Size)
	if err != nil {
		return nil, err
	}

	// forces
	o.Forces = make([]Forcer, len(o.Sim.Forces))
	for i, dat := range o.Sim.Forces {
		o.Forces[i], err = NewForce(dat, o.Nodes)
		if err != nil {
			return nil, chk.Err("cannot allocate force %d (%s):\n%v", i, dat.Type, err)
		}
	}

	// solver
	o.Solver, err = NewSolver(o.Sim.Solver.Type, o.Sim.Solver.Alpha, o.Sim.Solver.Dt)
	if err != nil {
		return nil, err
	}
	if o.Verbose {
		io.Pf("%s: ndim=%d nnodes=%d nparticles=%d shape=%s\n", o.Sim.Key, o.Nodes.Ndim, o.Nodes.Nnodes, o.Particles.Np, o.Shape.Type)
	}
	return
}

// Run runs the simulation
func (o *MPM) Run() (err error) {
	cputime := time.Now()
	o.Snapshots, err = Run(o.Solver, o.Nodes, o.Particles, o.Shape, o.Materials, o.Forces, RunControl{
		Nsteps:  o.Sim.Solver.Nsteps,
		Every:   o.Sim.Solver.Every,
		Pfields: o.Sim.Solver.Pfields,
		Ffields: o.Sim.Solver.Ffields,
		Verbose: o.Verbose,
		Summary: o.Summary,
	})
	if o.Verbose {
		nstep, t := o.Solver.Clock()
		io.Pf("\nfinal time = %v (%d steps)\n", t, nstep)
		io.Pfyel("cpu time   = %v\n", time.Now().Sub(cputime))
	}
	return
}

// genParticles generates the particles of all blocks and sets their masses and volumes
func (o *MPM) genParticles(models []msolid.Model) (err error) {
	var X [][]float64
	var mats []int
	var vels [][]float64
	for i, blk := range o.Sim.Blocks {
		var Y [][]float64
		Y, err = GenBlock(blk.Start, blk.Size, blk.Spacing)
		if err != nil {
			return chk.Err("block %d:\n%v", i, err)
		}
		m := o.Sim.MatIndex(blk.Mat)
		for range Y {
			mats = append(mats, m)
			vels = append(vels, blk.V)
		}
		X = append(X, Y...)
	}
	o.Particles, err = NewParticles(X)
	if err != nil {
		return
	}
	rho := make([]float64, len(X))
	for p := range X {
		o.Particles.Mat[p] = mats[p]
		if len(vels[p]) > 0 {
			o.Particles.V[p] = tsr.NewVec(vels[p])
		}
		rho[p] = models[mats[p]].GetRho()
	}
	return Discretize(o.Particles, o.Nodes, rho)
}
