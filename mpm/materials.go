// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/msolid"
	"github.com/cpmech/gompm/par"
	"github.com/cpmech/gosl/chk"
)

// MatBatch holds the particles sharing one material model
type MatBatch struct {
	Model msolid.Model // constitutive model
	Ids   []int        // particle indices
}

// NewMatBatches groups particles by parts.Mat and initialises their internal variables.
// Particles with Mat < 0 are left out
func NewMatBatches(models []msolid.Model, parts *Particles) (batches []*MatBatch, err error) {
	batches = make([]*MatBatch, len(models))
	for i, mdl := range models {
		batches[i] = &MatBatch{Model: mdl}
	}
	for p, m := range parts.Mat {
		if m < 0 {
			continue
		}
		if m >= len(models) {
			return nil, chk.Err("particle %d has material index %d but there are only %d materials", p, m, len(models))
		}
		batches[m].Ids = append(batches[m].Ids, p)
		parts.Alp[p], err = models[m].InitIntVars(&parts.Sig[p])
		if err != nil {
			return nil, chk.Err("particle %d:\n%v", p, err)
		}
	}
	return
}

// UpdateStress updates the stresses of all particles in all batches
func UpdateStress(parts *Particles, batches []*MatBatch, Δt float64) error {
	for _, b := range batches {
		var errs par.Errors
		par.For(len(b.Ids), func(lo, hi int) {
			for _, p := range b.Ids[lo:hi] {
				σ, err := b.Model.Update(parts.Sig[p], parts.L[p], parts.Alp[p], parts.Vol[p], Δt)
				if err != nil {
					errs.Set(p, &particleError{p, err})
					return
				}
				parts.Sig[p] = σ
			}
		})
		if err := errs.Err(); err != nil {
			return err
		}
	}
	return nil
}
