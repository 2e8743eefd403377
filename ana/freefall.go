// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

// FreeFall implements the motion of a body under constant gravity
//
//       ○ x0, v0
//       │
//       ↓ g
//
type FreeFall struct {
	X0 float64 // initial position
	V0 float64 // initial velocity
	G  float64 // gravity acceleration (negative if pointing down)
}

// Position returns x(t) = x0 + v0 t + ½ g t²
func (o FreeFall) Position(t float64) float64 {
	return o.X0 + o.V0*t + 0.5*o.G*t*t
}

// Velocity returns v(t) = v0 + g t
func (o FreeFall) Velocity(t float64) float64 {
	return o.V0 + o.G*t
}

// PositionDiscrete returns the position after n steps of the semi-implicit Euler scheme
//  v_(k+1) = v_k + g Δt
//  x_(k+1) = x_k + Δt v_(k+1)
//  x_n = x0 + v0 n Δt + g Δt² n (n+1) / 2
func (o FreeFall) PositionDiscrete(n int, Δt float64) float64 {
	N := float64(n)
	return o.X0 + o.V0*N*Δt + 0.5*o.G*Δt*Δt*N*(N+1)
}
