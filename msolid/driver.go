// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Driver runs a single material point under prescribed velocity gradients
type Driver struct {

	// input
	Mdl Model // solid model

	// settings
	Silent bool    // do not show messages
	TolSig float64 // tolerance on the confining stress of drained triaxial paths
	MaxIt  int     // max number of iterations to find the lateral strain rate

	// results
	Res []tsr.Ten   // stresses [nsteps+1]
	Eps []tsr.Ten   // accumulated small strains [nsteps+1]
	Alp [][]float64 // internal variables [nsteps+1]
}

// Init initialises driver
func (o *Driver) Init(mdl Model) (err error) {
	if mdl == nil {
		return chk.Err("driver needs a model")
	}
	o.Mdl = mdl
	o.Silent = !io.Verbose
	o.TolSig = 1e-10
	o.MaxIt = 30
	return
}

// Run runs nsteps increments of size Δt starting at σ0 with a constant velocity gradient
func (o *Driver) Run(σ0, L tsr.Ten, Δt float64, nsteps int) (err error) {
	return o.run(σ0, Δt, nsteps, func(σ tsr.Ten, α []float64) (tsr.Ten, tsr.Ten, error) {
		σnew, err := o.Mdl.Update(σ, L, α, 1, Δt)
		return σnew, L, err
	})
}

// Triaxial runs a triaxial compression test along x with axial strain rate εdot starting
// from the isotropic pressure p0
//  drained   -- the lateral stresses are kept at -p0
//  undrained -- isochoric straining
func (o *Driver) Triaxial(p0, εdot, Δt float64, nsteps int, drained bool) (err error) {
	var σ0 tsr.Ten
	for i := 0; i < 3; i++ {
		σ0[i][i] = -p0
	}
	if !drained {
		return o.Run(σ0, Isochoric(εdot), Δt, nsteps)
	}
	tol := o.TolSig * math.Max(p0, 1)
	scratch := make([]float64, 0)
	return o.run(σ0, Δt, nsteps, func(σ tsr.Ten, α []float64) (σnew, L tsr.Ten, err error) {

		// lateral stress residual for a lateral strain rate r
		residual := func(r float64) (float64, error) {
			scratch = append(scratch[:0], α...)
			σnew, err = o.Mdl.Update(σ, lateral(εdot, r), scratch, 1, Δt)
			return σnew[1][1] + p0, err
		}

		// secant iterations starting from the isochoric guess
		ra, rb := 0.0, εdot/2
		ga, err := residual(ra)
		if err != nil {
			return
		}
		for it := 0; it < o.MaxIt; it++ {
			var gb float64
			gb, err = residual(rb)
			if err != nil {
				return
			}
			if math.Abs(gb) <= tol {
				L = lateral(εdot, rb)
				copy(α, scratch)
				return
			}
			if gb == ga {
				break
			}
			ra, rb, ga = rb, rb-gb*(rb-ra)/(gb-ga), gb
		}
		err = chk.Err("cannot keep the confining stress after %d iterations", o.MaxIt)
		return
	})
}

// run runs nsteps increments computing each new state with update
func (o *Driver) run(σ0 tsr.Ten, Δt float64, nsteps int, update func(σ tsr.Ten, α []float64) (σnew, L tsr.Ten, err error)) (err error) {

	// internal variables
	α, err := o.Mdl.InitIntVars(&σ0)
	if err != nil {
		return chk.Err("driver: cannot initialise internal variables:\n%v", err)
	}

	// allocate results arrays
	o.Res = make([]tsr.Ten, nsteps+1)
	o.Eps = make([]tsr.Ten, nsteps+1)
	o.Alp = make([][]float64, nsteps+1)
	o.Res[0] = σ0
	o.Alp[0] = append([]float64{}, α...)

	// update states
	var L, Δε tsr.Ten
	for i := 1; i <= nsteps; i++ {
		o.Res[i], L, err = update(o.Res[i-1], α)
		if err != nil {
			return chk.Err("driver: update failed at step %d:\n%v", i, err)
		}
		o.Alp[i] = append([]float64{}, α...)
		tsr.Sym(&Δε, &L)
		tsr.Scale(&Δε, Δt, &Δε)
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				o.Eps[i][a][b] = o.Eps[i-1][a][b] + Δε[a][b]
			}
		}
		if !o.Silent {
			io.Pf("%4d p=%13.6e q=%13.6e\n", i, tsr.Pressure(&o.Res[i]), tsr.VonMises(&o.Res[i]))
		}
	}
	return
}

// SimpleShear returns the velocity gradient of simple shear with rate γdot in the x-y plane
func SimpleShear(γdot float64) (L tsr.Ten) {
	L[0][1] = γdot
	return
}

// Uniaxial returns the velocity gradient of uniaxial (oedometric) straining along x
//  εdot > 0 means compression
func Uniaxial(εdot float64) (L tsr.Ten) {
	L[0][0] = -εdot
	return
}

// Isochoric returns the velocity gradient of axisymmetric compression along x without volume change
//  εdot > 0 means compression
func Isochoric(εdot float64) (L tsr.Ten) {
	return lateral(εdot, εdot/2)
}

// lateral returns the axisymmetric velocity gradient with axial compression rate εdot and
// lateral extension rate r
func lateral(εdot, r float64) (L tsr.Ten) {
	L[0][0] = -εdot
	L[1][1] = r
	L[2][2] = r
	return
}
