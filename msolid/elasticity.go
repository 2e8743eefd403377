// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/fun/dbf"
)

// Calc_K_from_Enu returns the bulk modulus K from Young's modulus E and Poisson's coefficient ν
func Calc_K_from_Enu(E, ν float64) float64 { return E / (3.0 * (1.0 - 2.0*ν)) }

// Calc_G_from_Enu returns the shear modulus G from Young's modulus E and Poisson's coefficient ν
func Calc_G_from_Enu(E, ν float64) float64 { return E / (2.0 * (1.0 + ν)) }

// Calc_l_from_Enu returns Lamé's coefficient λ from Young's modulus E and Poisson's coefficient ν
func Calc_l_from_Enu(E, ν float64) float64 { return E * ν / ((1.0 + ν) * (1.0 - 2.0*ν)) }

// LinElast implements a linear isotropic elastic model in rate form
type LinElast struct {
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	K   float64 // bulk modulus
	G   float64 // shear modulus
	L   float64 // Lamé's coefficient λ
	Rho float64 // density
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(ndim int, prms dbf.Params) (err error) {
	if err = checkNames(prms, "lin-elast", "E", "nu", "rho"); err != nil {
		return
	}
	if err = connect(prms, "lin-elast", []*float64{&o.E, &o.Nu, &o.Rho}, "E", "nu", "rho"); err != nil {
		return
	}
	o.K = Calc_K_from_Enu(o.E, o.Nu)
	o.G = Calc_G_from_Enu(o.E, o.Nu)
	o.L = Calc_l_from_Enu(o.E, o.Nu)
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 10000},
		&dbf.P{N: "nu", V: 0.1},
		&dbf.P{N: "rho", V: 1000},
	}
}

// GetRho returns density
func (o LinElast) GetRho() float64 { return o.Rho }

// InitIntVars initialises internal variables; none for this model
func (o LinElast) InitIntVars(σ *tsr.Ten) (α []float64, err error) { return }

// Update updates stresses for given velocity gradient
func (o LinElast) Update(σ, L tsr.Ten, α []float64, vol, Δt float64) (σnew tsr.Ten, err error) {
	var Δε tsr.Ten
	tsr.Sym(&Δε, &L)
	tsr.Scale(&Δε, Δt, &Δε)
	o.ElastUpdate(&σnew, &σ, &Δε)
	return
}

// ElastUpdate computes σnew = σ + λ tr(Δε) I + 2 G Δε
func (o LinElast) ElastUpdate(σnew, σ, Δε *tsr.Ten) {
	trΔε := tsr.Tr(Δε)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			σnew[i][j] = σ[i][j] + 2.0*o.G*Δε[i][j]
		}
		σnew[i][i] += o.L * trΔε
	}
}
