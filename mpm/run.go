// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"fmt"

	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RunControl holds the controls of the time loop
type RunControl struct {
	Nsteps  int      // number of steps
	Every   int      // record a snapshot after every Every steps
	Pfields []string // particle fields to record
	Ffields []string // force fields to record (only forces implementing Recordable)
	Verbose bool     // show messages
	Summary *Summary // if not nil, records global quantities with each snapshot
}

// Snapshot holds the fields recorded after one step
type Snapshot struct {
	Step      int                      // step number
	Time      float64                  // time after the step
	Particles map[string][][]float64   // particle field => [np][ncomp]
	Forces    []map[string][][]float64 // [nforces] force field => rows; nil maps for non-recordable forces
}

// Run runs ctrl.Nsteps steps and returns ctrl.Nsteps / ctrl.Every snapshots
func Run(solver Solver, nodes *Nodes, parts *Particles, shape *shp.Shape, mats []*MatBatch, forces []Forcer, ctrl RunControl) (snaps []*Snapshot, err error) {

	// check controls and fields
	if ctrl.Nsteps < 0 {
		return nil, chk.Err("number of steps must be non-negative. Nsteps=%d is invalid", ctrl.Nsteps)
	}
	if ctrl.Every < 1 {
		return nil, chk.Err("output stride must be positive. Every=%d is invalid", ctrl.Every)
	}
	for _, name := range ctrl.Pfields {
		if _, ok := particleFields[name]; !ok {
			return nil, fmt.Errorf("particle field %q: %w", name, ErrUnknownField)
		}
	}
	if len(ctrl.Ffields) > 0 {
		for _, f := range forces {
			if r, ok := f.(Recordable); ok {
				for _, name := range ctrl.Ffields {
					if _, err = r.Field(name); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	// time loop
	snaps = make([]*Snapshot, 0, ctrl.Nsteps/ctrl.Every)
	for step := 1; step <= ctrl.Nsteps; step++ {
		err = solver.Update(nodes, parts, shape, mats, forces)
		if err != nil {
			return
		}
		if step%ctrl.Every != 0 {
			continue
		}
		var snap *Snapshot
		snap, err = record(solver, parts, forces, ctrl)
		if err != nil {
			return
		}
		snaps = append(snaps, snap)
		if ctrl.Verbose {
			io.Pf("step %8d  t = %13.6e  snapshot %d\n", snap.Step, snap.Time, len(snaps))
		}
	}
	return
}

// record copies the selected fields
func record(solver Solver, parts *Particles, forces []Forcer, ctrl RunControl) (snap *Snapshot, err error) {
	snap = &Snapshot{Particles: make(map[string][][]float64, len(ctrl.Pfields))}
	snap.Step, snap.Time = solver.Clock()
	if ctrl.Summary != nil {
		ctrl.Summary.Record(snap.Step, snap.Time, parts)
	}
	for _, name := range ctrl.Pfields {
		if snap.Particles[name], err = parts.Field(name); err != nil {
			return
		}
	}
	if len(ctrl.Ffields) == 0 {
		return
	}
	snap.Forces = make([]map[string][][]float64, len(forces))
	for i, f := range forces {
		r, ok := f.(Recordable)
		if !ok {
			continue
		}
		snap.Forces[i] = make(map[string][][]float64, len(ctrl.Ffields))
		for _, name := range ctrl.Ffields {
			if snap.Forces[i][name], err = r.Field(name); err != nil {
				return
			}
		}
	}
	return
}
