// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tsr implements small fixed-size vectors and second order tensors
// used by the material point method. Components beyond the space dimension
// are kept equal to zero (1D and 2D quantities are padded to 3D)
package tsr

import "math"

// Vec is a 3-component vector
type Vec [3]float64

// Ten is a second order tensor in matrix form
type Ten [3][3]float64

// Identity returns the identity tensor
func Identity() (I Ten) {
	I[0][0], I[1][1], I[2][2] = 1, 1, 1
	return
}

// NewVec returns a padded vector from a slice with len(v) <= 3
func NewVec(v []float64) (u Vec) {
	copy(u[:], v)
	return
}

// Slice returns the first ndim components of u
func (u Vec) Slice(ndim int) []float64 {
	res := make([]float64, ndim)
	copy(res, u[:ndim])
	return res
}

// Dot returns u·v
func Dot(u, v Vec) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// Norm returns |u|
func Norm(u Vec) float64 {
	return math.Sqrt(Dot(u, u))
}

// AddScaled computes u += α * v
func AddScaled(u *Vec, α float64, v Vec) {
	u[0] += α * v[0]
	u[1] += α * v[1]
	u[2] += α * v[2]
}

// MatVec computes w = a · v
func MatVec(w *Vec, a *Ten, v Vec) {
	for i := 0; i < 3; i++ {
		w[i] = a[i][0]*v[0] + a[i][1]*v[1] + a[i][2]*v[2]
	}
}

// AddOuter computes c += α * u ⊗ v  =>  c_ij += α u_i v_j
func AddOuter(c *Ten, α float64, u, v Vec) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] += α * u[i] * v[j]
		}
	}
}

// MatMul computes c = a · b. c must not alias a or b
func MatMul(c, a, b *Ten) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
}

// Det returns the determinant of a
func Det(a *Ten) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Tr returns the trace of a
func Tr(a *Ten) float64 {
	return a[0][0] + a[1][1] + a[2][2]
}

// Sym computes b = (a + aᵀ) / 2
func Sym(b, a *Ten) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = 0.5 * (a[i][j] + a[j][i])
		}
	}
}

// Dev computes the deviatoric part b = a - tr(a)/3 I
func Dev(b, a *Ten) {
	m := Tr(a) / 3.0
	*b = *a
	b[0][0] -= m
	b[1][1] -= m
	b[2][2] -= m
}

// Ddot returns a : b
func Ddot(a, b *Ten) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res += a[i][j] * b[i][j]
		}
	}
	return
}

// Scale computes b = α * a
func Scale(b *Ten, α float64, a *Ten) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = α * a[i][j]
		}
	}
}

// IsFinite tells whether all components of a are finite
func IsFinite(a *Ten) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(a[i][j]) || math.IsInf(a[i][j], 0) {
				return false
			}
		}
	}
	return true
}

// VecIsFinite tells whether all components of u are finite
func VecIsFinite(u Vec) bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(u[i]) || math.IsInf(u[i], 0) {
			return false
		}
	}
	return true
}

// Flatten returns the 9 components of a in row-major order
func Flatten(a *Ten) []float64 {
	return []float64{
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2],
	}
}

// Slices returns a as a slice of rows
func (a Ten) Slices() [][]float64 {
	return [][]float64{a[0][:], a[1][:], a[2][:]}
}
