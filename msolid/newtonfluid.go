// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/fun/dbf"
)

// NewtonFluid implements a weakly compressible Newtonian fluid
//  p_(n+1) = p_(n) - K tr(D) Δt
//  σ = -p I + 2 μ dev(D)
type NewtonFluid struct {
	K   float64 // bulk modulus
	Mu  float64 // dynamic viscosity
	Rho float64 // density
}

// add model to factory
func init() {
	allocators["newton-fluid"] = func() Model { return new(NewtonFluid) }
}

// Init initialises model
func (o *NewtonFluid) Init(ndim int, prms dbf.Params) (err error) {
	if err = checkNames(prms, "newton-fluid", "K", "mu", "rho"); err != nil {
		return
	}
	return connect(prms, "newton-fluid", []*float64{&o.K, &o.Mu, &o.Rho}, "K", "mu", "rho")
}

// GetPrms gets (an example) of parameters
func (o NewtonFluid) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "K", V: 2e6},
		&dbf.P{N: "mu", V: 1e-3},
		&dbf.P{N: "rho", V: 1000},
	}
}

// GetRho returns density
func (o NewtonFluid) GetRho() float64 { return o.Rho }

// InitIntVars initialises internal variables; none for this model
func (o NewtonFluid) InitIntVars(σ *tsr.Ten) (α []float64, err error) { return }

// Update updates stresses for given velocity gradient
func (o NewtonFluid) Update(σ, L tsr.Ten, α []float64, vol, Δt float64) (σnew tsr.Ten, err error) {
	var D, s tsr.Ten
	tsr.Sym(&D, &L)
	tsr.Dev(&s, &D)
	p := tsr.Pressure(&σ) - o.K*tsr.Tr(&D)*Δt
	tsr.Scale(&σnew, 2.0*o.Mu, &s)
	for i := 0; i < 3; i++ {
		σnew[i][i] -= p
	}
	return
}
