// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"errors"
	"math"

	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ErrReturnMapping is returned when the plastic corrector does not converge
var ErrReturnMapping = errors.New("return mapping did not converge")

// CamClayMod implements the modified CamClay model with hypoelastic bulk modulus
//  f = q² / M² + p (p - pc)
//  K = v p / κ    G = 3 K (1 - 2ν) / (2 (1 + ν))
//  dpc = pc v dεvp / (λ - κ)
//  Internal variables: α[0] = pc (preconsolidation pressure), α[1] = v (specific volume)
type CamClayMod struct {

	// parameters
	M   float64 // slope of critical state line
	λ   float64 // slope of isotropic compression line
	κ   float64 // slope of unloading-reloading line
	ν   float64 // Poisson's coefficient
	ocr float64 // initial over-consolidation ratio
	v0  float64 // initial specific volume
	p0  float64 // initial isotropic pressure assigned to unstressed points
	Rho float64 // density

	// settings
	MaxIt int     // max number of iterations of the plastic corrector
	Tol   float64 // tolerance of the plastic corrector
}

// add model to factory
func init() {
	allocators["ccm"] = func() Model { return new(CamClayMod) }
}

// Init initialises model
func (o *CamClayMod) Init(ndim int, prms dbf.Params) (err error) {

	// parameters
	if err = checkNames(prms, "ccm", "M", "phi", "lam", "kap", "nu", "ocr", "v0", "p0", "rho"); err != nil {
		return
	}
	if err = connect(prms, "ccm", []*float64{&o.λ, &o.κ, &o.ν, &o.Rho}, "lam", "kap", "nu", "rho"); err != nil {
		return
	}
	o.M, o.ocr, o.v0, o.p0 = 0, 1, 2, 0
	for _, p := range prms {
		switch p.N {
		case "M":
			o.M = p.V
		case "phi":
			o.M, _, err = Mmatch(0, p.V, 0)
			if err != nil {
				return
			}
		case "ocr":
			o.ocr = p.V
		case "v0":
			o.v0 = p.V
		case "p0":
			o.p0 = p.V
		}
	}

	// check
	if o.M <= 0 {
		return chk.Err("ccm: M (or phi) must be positive. M = %v", o.M)
	}
	if o.κ <= 0 || o.λ <= o.κ {
		return chk.Err("ccm: 0 < kap < lam is required. lam = %v, kap = %v", o.λ, o.κ)
	}
	if o.ν < 0 || o.ν >= 0.5 {
		return chk.Err("ccm: 0 <= nu < 0.5 is required. nu = %v", o.ν)
	}
	if o.ocr < 1 || o.v0 <= 1 {
		return chk.Err("ccm: ocr >= 1 and v0 > 1 are required. ocr = %v, v0 = %v", o.ocr, o.v0)
	}

	// settings
	o.MaxIt = 50
	o.Tol = 1e-12
	return
}

// GetPrms gets (an example) of parameters
func (o CamClayMod) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "M", V: 1.2},
		&dbf.P{N: "lam", V: 0.2},
		&dbf.P{N: "kap", V: 0.04},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "ocr", V: 1},
		&dbf.P{N: "v0", V: 2},
		&dbf.P{N: "p0", V: 100},
		&dbf.P{N: "rho", V: 1800},
	}
}

// GetRho returns density
func (o CamClayMod) GetRho() float64 { return o.Rho }

// Yield computes the yield function
func (o CamClayMod) Yield(σ *tsr.Ten, pc float64) float64 {
	p, q := tsr.Pressure(σ), tsr.VonMises(σ)
	return q*q/(o.M*o.M) + p*(p-pc)
}

// InitIntVars initialises internal variables. A zero σ is set to -p0 I
func (o CamClayMod) InitIntVars(σ *tsr.Ten) (α []float64, err error) {
	if *σ == (tsr.Ten{}) {
		for i := 0; i < 3; i++ {
			σ[i][i] = -o.p0
		}
	}
	p, q := tsr.Pressure(σ), tsr.VonMises(σ)
	if p <= 0 {
		return nil, chk.Err("ccm: initial stress must be compressive. p = %v", p)
	}
	pc := p + q*q/(o.M*o.M*p)
	return []float64{o.ocr * pc, o.v0}, nil
}

// Update updates stresses for given velocity gradient
func (o CamClayMod) Update(σ, L tsr.Ten, α []float64, vol, Δt float64) (σnew tsr.Ten, err error) {

	// state at the beginning of the increment
	pcn, v := α[0], α[1]
	var Δε tsr.Ten
	tsr.Sym(&Δε, &L)
	tsr.Scale(&Δε, Δt, &Δε)
	trΔε := tsr.Tr(&Δε)

	// elastic moduli
	K := v * math.Max(tsr.Pressure(&σ), 1e-3*pcn) / o.κ
	G := 3.0 * K * (1.0 - 2.0*o.ν) / (2.0 * (1.0 + o.ν))

	// trial state
	l := K - 2.0*G/3.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			σnew[i][j] = σ[i][j] + 2.0*G*Δε[i][j]
		}
		σnew[i][i] += l * trΔε
	}
	vnew := v * math.Exp(trΔε)
	M2 := o.M * o.M
	ptr, qtr := tsr.Pressure(&σnew), tsr.VonMises(&σnew)
	if qtr*qtr/M2+ptr*(ptr-pcn) <= o.Tol*pcn*pcn {
		α[1] = vnew
		return
	}

	// plastic corrector: Newton iterations on the plastic volumetric strain x and Δγ
	θ := v / (o.λ - o.κ)
	var x, Δγ, p, q, pc float64
	converged := false
	for it := 0; it < o.MaxIt; it++ {
		pc = pcn * math.Exp(θ*x)
		p = ptr - K*x
		c := 1.0 + 6.0*G*Δγ/M2
		q = qtr / c
		r1 := x - Δγ*(2.0*p-pc)
		r2 := (q*q/M2 + p*(p-pc)) / (pcn * pcn)
		if math.Abs(r1) < o.Tol && math.Abs(r2) < o.Tol {
			converged = true
			break
		}
		J11 := 1.0 + Δγ*(2.0*K+θ*pc)
		J12 := -(2.0*p - pc)
		J21 := (-K*(2.0*p-pc) - θ*p*pc) / (pcn * pcn)
		J22 := (2.0 * q / M2) * (-q * 6.0 * G / (M2 * c)) / (pcn * pcn)
		det := J11*J22 - J12*J21
		if det == 0 {
			break
		}
		x -= (r1*J22 - J12*r2) / det
		Δγ -= (J11*r2 - J21*r1) / det
	}
	if !converged || p <= 0 || math.IsNaN(p) {
		return σ, ErrReturnMapping
	}

	// corrected stress
	var s tsr.Ten
	if qtr > 0 {
		tsr.Dev(&s, &σnew)
		tsr.Scale(&s, q/qtr, &s)
	}
	σnew = s
	for i := 0; i < 3; i++ {
		σnew[i][i] -= p
	}
	α[0], α[1] = pc, vnew
	return
}
