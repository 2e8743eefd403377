// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/tsr"
	"gonum.org/v1/gonum/floats"
)

// Summary records global quantities of the particles at output times
type Summary struct {
	Steps    []int       // step numbers
	Times    []float64   // output times
	Mass     []float64   // total mass
	Momentum [][]float64 // total momentum [nout][ndim]
	KE       []float64   // kinetic energy
}

// Record appends the global quantities of parts
func (o *Summary) Record(step int, time float64, parts *Particles) {
	o.Steps = append(o.Steps, step)
	o.Times = append(o.Times, time)
	o.Mass = append(o.Mass, TotalMass(parts))
	o.Momentum = append(o.Momentum, TotalMomentum(parts))
	o.KE = append(o.KE, KineticEnergy(parts))
}

// TotalMass returns Σ m
func TotalMass(parts *Particles) float64 {
	return floats.Sum(parts.M)
}

// TotalMomentum returns Σ m v
func TotalMomentum(parts *Particles) (res []float64) {
	res = make([]float64, parts.Ndim)
	vi := make([]float64, parts.Np)
	for i := 0; i < parts.Ndim; i++ {
		for p := 0; p < parts.Np; p++ {
			vi[p] = parts.V[p][i]
		}
		res[i] = floats.Dot(parts.M, vi)
	}
	return
}

// KineticEnergy returns Σ ½ m |v|²
func KineticEnergy(parts *Particles) float64 {
	v2 := make([]float64, parts.Np)
	for p := 0; p < parts.Np; p++ {
		v2[p] = tsr.Dot(parts.V[p], parts.V[p])
	}
	return 0.5 * floats.Dot(parts.M, v2)
}
