// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/io"
)

// CheckPartition checks that the shape functions of each particle sum up to one
func CheckPartition(tst *testing.T, o *Shape, tol float64, verbose bool) {
	for p := 0; p < o.Np; p++ {
		sum := 0.0
		for s := 0; s < o.Nstencil; s++ {
			sum += o.S[p*o.Nstencil+s]
		}
		if verbose {
			io.Pf("p=%3d  ΣS = %v\n", p, sum)
		}
		if math.Abs(sum-1.0) > tol {
			tst.Errorf("%s: partition of unity failed for particle %d: ΣS = %v\n", o.Type, p, sum)
			return
		}
	}
}

// CheckConsistency checks that the gradients of each particle sum up to zero
func CheckConsistency(tst *testing.T, o *Shape, tol float64, verbose bool) {
	for p := 0; p < o.Np; p++ {
		var sum tsr.Vec
		for s := 0; s < o.Nstencil; s++ {
			tsr.AddScaled(&sum, 1, o.G[p*o.Nstencil+s])
		}
		if verbose {
			io.Pf("p=%3d  ΣG = %v\n", p, sum)
		}
		if tsr.Norm(sum) > tol {
			tst.Errorf("%s: gradient consistency failed for particle %d: ΣG = %v\n", o.Type, p, sum)
			return
		}
	}
}

// CheckGradients compares the gradients of one particle at x with central differences
func CheckGradients(tst *testing.T, o *Shape, origin tsr.Vec, invh float64, size []int, x tsr.Vec, tol float64, verbose bool) {

	// analytical
	a := o.GetCopy()
	a.Calc(origin, invh, size, []tsr.Vec{x})

	// numerical
	δ := 1e-6 / invh
	pos, neg := o.GetCopy(), o.GetCopy()
	for i := 0; i < o.Ndim; i++ {
		xp, xm := x, x
		xp[i] += δ
		xm[i] -= δ
		pos.Calc(origin, invh, size, []tsr.Vec{xp})
		neg.Calc(origin, invh, size, []tsr.Vec{xm})
		for s := 0; s < o.Nstencil; s++ {
			if a.Hashes[s] < 0 {
				continue
			}
			num := (pos.S[s] - neg.S[s]) / (2 * δ)
			if verbose {
				io.Pf("  dS%d/dx%d @ %v = %v (num: %v)\n", s, i, x, a.G[s][i], num)
			}
			if math.Abs(a.G[s][i]-num) > tol {
				tst.Errorf("%s: dS%d/dx%d failed with err = %g\n", o.Type, s, i, math.Abs(a.G[s][i]-num))
				return
			}
		}
	}
}
