// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Pressure returns p = -tr(σ)/3 (compression positive)
func Pressure(σ *Ten) float64 {
	return -Tr(σ) / 3.0
}

// VonMises returns q = sqrt(3/2 s:s) where s = dev(σ)
func VonMises(σ *Ten) float64 {
	var s Ten
	Dev(&s, σ)
	return math.Sqrt(1.5 * Ddot(&s, &s))
}

// Tau returns the shear stress invariant τ = sqrt(1/2 s:s)
func Tau(σ *Ten) float64 {
	var s Ten
	Dev(&s, σ)
	return math.Sqrt(0.5 * Ddot(&s, &s))
}

// VolStrain returns εv = -tr(ε) (compression positive)
func VolStrain(ε *Ten) float64 {
	return -Tr(ε)
}

// Gamma returns the engineering shear strain invariant γ = sqrt(2 e:e), e = dev(ε)
func Gamma(ε *Ten) float64 {
	var e Ten
	Dev(&e, ε)
	return math.Sqrt(2.0 * Ddot(&e, &e))
}

// SmallStrain computes ε = sym(F) - I, the small strain measure from the deformation gradient
func SmallStrain(ε, F *Ten) {
	Sym(ε, F)
	ε[0][0] -= 1
	ε[1][1] -= 1
	ε[2][2] -= 1
}

// Principal returns the eigenvalues of the symmetric part of a in ascending order
func Principal(a *Ten) (λ []float64, ok bool) {
	var b Ten
	Sym(&b, a)
	sym := mat.NewSymDense(3, []float64{
		b[0][0], b[0][1], b[0][2],
		b[1][0], b[1][1], b[1][2],
		b[2][0], b[2][1], b[2][2],
	})
	var eig mat.EigenSym
	if !eig.Factorize(sym, false) {
		return nil, false
	}
	return eig.Values(nil), true
}
