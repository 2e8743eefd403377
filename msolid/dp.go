// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/fun/dbf"
)

// DruckerPrager implements a perfectly plastic Drucker-Prager model
//  f = q - M p - qy0
//  The return mapping acts on the deviatoric stress only (plastic potential g = q)
type DruckerPrager struct {
	LinElast
	M   float64 // slope of fc line
	qy0 float64 // cohesion term
}

// add model to factory
func init() {
	allocators["dp"] = func() Model { return new(DruckerPrager) }
}

// Init initialises model
func (o *DruckerPrager) Init(ndim int, prms dbf.Params) (err error) {

	// parse parameters
	var c, φ float64
	var typ int
	var elast dbf.Params
	for _, p := range prms {
		switch p.N {
		case "M":
			o.M = p.V
		case "qy0":
			o.qy0 = p.V
		case "c":
			c = p.V
		case "phi":
			φ = p.V
		case "typ":
			typ = int(p.V)
		default:
			elast = append(elast, p)
		}
	}
	err = o.LinElast.Init(ndim, elast)
	if err != nil {
		return
	}

	// compute M from φ
	if φ > 0 {
		o.M, o.qy0, err = Mmatch(c, φ, typ)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o DruckerPrager) GetPrms() dbf.Params {
	return append(o.LinElast.GetPrms(),
		&dbf.P{N: "M", V: 1},
		&dbf.P{N: "qy0", V: 0.5},
	)
}

// Yield computes the yield function
func (o DruckerPrager) Yield(σ *tsr.Ten) float64 {
	return tsr.VonMises(σ) - o.M*tsr.Pressure(σ) - o.qy0
}

// Update updates stresses for given velocity gradient
func (o DruckerPrager) Update(σ, L tsr.Ten, α []float64, vol, Δt float64) (σnew tsr.Ten, err error) {

	// trial state
	var Δε tsr.Ten
	tsr.Sym(&Δε, &L)
	tsr.Scale(&Δε, Δt, &Δε)
	o.ElastUpdate(&σnew, &σ, &Δε)
	if o.Yield(&σnew) <= 0 {
		return
	}

	// radial return; apex when the cone has no deviatoric room left
	p := tsr.Pressure(&σnew)
	qnew := o.M*p + o.qy0
	var s tsr.Ten
	if qnew <= 0 {
		if o.M > 0 {
			p = -o.qy0 / o.M
		}
	} else {
		tsr.Dev(&s, &σnew)
		tsr.Scale(&s, qnew/math.Max(tsr.VonMises(&σnew), 1e-300), &s)
	}
	σnew = s
	for i := 0; i < 3; i++ {
		σnew[i][i] -= p
	}
	return
}
