// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// add linear shape to factory
func init() {
	allocators["linear"] = func(ndim int) *Shape {
		var stencil [][3]int
		switch ndim {
		case 1:
			stencil = [][3]int{{0}, {1}}
		case 2:
			stencil = [][3]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
		case 3:
			stencil = [][3]int{
				{0, 0, 0}, {0, 0, 1}, {1, 0, 0}, {1, 0, 1},
				{0, 1, 0}, {0, 1, 1}, {1, 1, 0}, {1, 1, 1},
			}
		}
		return &Shape{Func: LinearBasis, Stencil: stencil, MinNodes: 2}
	}
}

// LinearBasis implements the tent function
//  The derivative uses half-open intervals [-1,0) and [0,1) so that the two nodes of a cell
//  always carry opposite gradients, even when the particle sits exactly on a node
func LinearBasis(ξ, invh float64, species int) (N, dNdx float64) {
	switch {
	case ξ >= 0 && ξ < 1:
		return 1 - ξ, -invh
	case ξ >= -1 && ξ < 0:
		return 1 + ξ, invh
	}
	return 0, 0
}
