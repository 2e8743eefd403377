// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// VibratingBar implements the first vibration mode of an elastic bar fixed at x=0 and free at x=L
//
//    ▕▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒
//    ▕ x=0                            x=L
//
//  initial velocity: v(x, 0) = v0 sin(β x) with β = π / (2 L)
type VibratingBar struct {
	L   float64 // length
	E   float64 // Young's modulus
	Rho float64 // density
	V0  float64 // velocity amplitude
}

// Beta returns the wave number β = π / (2 L)
func (o VibratingBar) Beta() float64 { return math.Pi / (2.0 * o.L) }

// Omega returns the angular frequency ω = β sqrt(E/ρ)
func (o VibratingBar) Omega() float64 { return o.Beta() * math.Sqrt(o.E/o.Rho) }

// Period returns the period of vibration
func (o VibratingBar) Period() float64 { return 2.0 * math.Pi / o.Omega() }

// Velocity returns v(x, t) = v0 sin(β x) cos(ω t)
func (o VibratingBar) Velocity(x, t float64) float64 {
	return o.V0 * math.Sin(o.Beta()*x) * math.Cos(o.Omega()*t)
}

// Displacement returns u(x, t) = v0/ω sin(β x) sin(ω t)
func (o VibratingBar) Displacement(x, t float64) float64 {
	return o.V0 / o.Omega() * math.Sin(o.Beta()*x) * math.Sin(o.Omega()*t)
}

// VelocityCM returns the velocity of the centre of mass: 2 v0 / π cos(ω t)
func (o VibratingBar) VelocityCM(t float64) float64 {
	return 2.0 * o.V0 / math.Pi * math.Cos(o.Omega()*t)
}
