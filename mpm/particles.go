// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"fmt"

	"github.com/cpmech/gompm/tsr"
)

// Particles holds the state of all material points
type Particles struct {
	Ndim int       // space dimension
	Np   int       // number of particles
	X    []tsr.Vec // [np] positions
	V    []tsr.Vec // [np] velocities
	Fext []tsr.Vec // [np] external forces
	M    []float64 // [np] masses
	Vol  []float64 // [np] volumes
	Vol0 []float64 // [np] reference volumes
	Sig  []tsr.Ten // [np] Cauchy stresses
	F    []tsr.Ten // [np] deformation gradients
	L    []tsr.Ten // [np] velocity gradients
	Mat  []int     // [np] material index; -1 means no material

	// internal variables of the material models; nil for models without state
	Alp [][]float64 // [np][nalp]
}

// NewParticles allocates particles at positions X
//  Each row of X has ndim components. F is set to the identity and Mat to -1
func NewParticles(X [][]float64) (o *Particles, err error) {
	o = new(Particles)
	if len(X) > 0 {
		o.Ndim = len(X[0])
	}
	if o.Ndim < 1 || o.Ndim > 3 {
		return nil, fmt.Errorf("particles with %d coordinates: %w", o.Ndim, ErrInvalidDimension)
	}
	o.Resize(len(X))
	for p, x := range X {
		if len(x) != o.Ndim {
			return nil, fmt.Errorf("particle %d has %d coordinates instead of %d: %w", p, len(x), o.Ndim, ErrInvalidDimension)
		}
		o.X[p] = tsr.NewVec(x)
	}
	return
}

// Resize (re)allocates all arrays for np particles
func (o *Particles) Resize(np int) {
	o.Np = np
	o.X = make([]tsr.Vec, np)
	o.V = make([]tsr.Vec, np)
	o.Fext = make([]tsr.Vec, np)
	o.M = make([]float64, np)
	o.Vol = make([]float64, np)
	o.Vol0 = make([]float64, np)
	o.Sig = make([]tsr.Ten, np)
	o.F = make([]tsr.Ten, np)
	o.L = make([]tsr.Ten, np)
	o.Mat = make([]int, np)
	o.Alp = make([][]float64, np)
	for p := 0; p < np; p++ {
		o.F[p] = tsr.Identity()
		o.Mat[p] = -1
	}
}

// SetVelocity sets the velocity of all particles
func (o *Particles) SetVelocity(v []float64) {
	u := tsr.NewVec(v)
	for p := 0; p < o.Np; p++ {
		o.V[p] = u
	}
}

// SetMass sets the mass of all particles
func (o *Particles) SetMass(m []float64) {
	copy(o.M, m)
}

// SetVolume sets both current and reference volumes
func (o *Particles) SetVolume(vol []float64) {
	copy(o.Vol, vol)
	copy(o.Vol0, vol)
}

// Field returns the rows of a named particle field
//  Available: position, velocity, mass, volume, stress, F, L, pressure, vonmises
func (o *Particles) Field(name string) (res [][]float64, err error) {
	get, ok := particleFields[name]
	if !ok {
		return nil, fmt.Errorf("particle field %q: %w", name, ErrUnknownField)
	}
	res = make([][]float64, o.Np)
	for p := 0; p < o.Np; p++ {
		res[p] = get(o, p)
	}
	return
}

// particleFields maps field names to getters
var particleFields = map[string]func(o *Particles, p int) []float64{
	"position": func(o *Particles, p int) []float64 { return o.X[p].Slice(o.Ndim) },
	"velocity": func(o *Particles, p int) []float64 { return o.V[p].Slice(o.Ndim) },
	"mass":     func(o *Particles, p int) []float64 { return []float64{o.M[p]} },
	"volume":   func(o *Particles, p int) []float64 { return []float64{o.Vol[p]} },
	"stress":   func(o *Particles, p int) []float64 { return tsr.Flatten(&o.Sig[p]) },
	"F":        func(o *Particles, p int) []float64 { return tsr.Flatten(&o.F[p]) },
	"L":        func(o *Particles, p int) []float64 { return tsr.Flatten(&o.L[p]) },
	"pressure": func(o *Particles, p int) []float64 { return []float64{tsr.Pressure(&o.Sig[p])} },
	"vonmises": func(o *Particles, p int) []float64 { return []float64{tsr.VonMises(&o.Sig[p])} },
}

// checkFinite returns ErrNonFiniteState if any position, velocity or stress is NaN or Inf
func (o *Particles) checkFinite() error {
	for p := 0; p < o.Np; p++ {
		if !tsr.VecIsFinite(o.X[p]) || !tsr.VecIsFinite(o.V[p]) || !tsr.IsFinite(&o.Sig[p]) {
			return &particleError{p, ErrNonFiniteState}
		}
	}
	return nil
}
