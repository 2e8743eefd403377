// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Cubic B-splines with modified functions near the grid boundaries. Reference:
//  De Vaucorbeil A, Nguyen VP, Sinaie S, Wu JY (2020) Material point method after 25 years:
//  theory, implementation, and applications. Advances in Applied Mechanics 53:185-398

// add cubic shape to factory
func init() {
	allocators["cubic"] = func(ndim int) *Shape {
		offsets := []int{-1, 0, 1, 2}
		var stencil [][3]int
		switch ndim {
		case 1:
			for _, i := range offsets {
				stencil = append(stencil, [3]int{i})
			}
		case 2:
			for _, j := range offsets {
				for _, i := range offsets {
					stencil = append(stencil, [3]int{i, j})
				}
			}
		case 3:
			for _, j := range offsets {
				for _, i := range offsets {
					for _, k := range offsets {
						stencil = append(stencil, [3]int{i, j, k})
					}
				}
			}
		}
		return &Shape{Func: CubicBasis, Stencil: stencil, MinNodes: 4}
	}
}

// CubicBasis selects the spline family according to the node species
func CubicBasis(ξ, invh float64, species int) (N, dNdx float64) {
	switch species {
	case START:
		return cubicStart(ξ, invh)
	case END:
		return cubicEnd(ξ, invh)
	case EDGE:
		return cubicEdge(ξ, invh)
	}
	return cubicMiddle(ξ, invh)
}

// cubicMiddle computes the splines for interior nodes
func cubicMiddle(x, h float64) (N, dN float64) {
	switch {
	case x >= 1.0 && x < 2.0:
		N = ((-1.0/6.0*x+1.0)*x-2.0)*x + 4.0/3.0
		dN = h * ((-0.5*x+2)*x - 2.0)
	case x >= 0.0 && x < 1.0:
		N = (0.5*x-1)*x*x + 2.0/3.0
		dN = h * (3.0/2.0*x - 2.0) * x
	case x >= -1.0 && x < 0.0:
		N = (-0.5*x-1)*x*x + 2.0/3.0
		dN = h * (-3.0/2.0*x - 2.0) * x
	case x >= -2.0 && x < -1.0:
		N = ((1.0/6.0*x+1.0)*x+2.0)*x + 4.0/3.0
		dN = h * ((0.5*x+2)*x + 2.0)
	}
	return
}

// cubicEnd computes the splines for the padding node next to the upper boundary
func cubicEnd(x, h float64) (N, dN float64) {
	switch {
	case x >= 0.0 && x < 1.0:
		N = (1.0/3.0*x-1.0)*x*x + 2.0/3.0
		dN = h * x * (x - 2)
	case x >= -1.0 && x < 0.0:
		N = (-0.5*x-1)*x*x + 2.0/3.0
		dN = h * (-3.0/2.0*x - 2.0) * x
	case x >= -2.0 && x < -1.0:
		N = ((1.0/6.0*x+1)*x+2)*x + 4.0/3.0
		dN = h * ((0.5*x+2.0)*x + 2.0)
	}
	return
}

// cubicStart computes the splines for the padding node next to the lower boundary
func cubicStart(x, h float64) (N, dN float64) {
	switch {
	case x >= 1.0 && x < 2.0:
		N = ((-1.0/6.0*x+1.0)*x-2.0)*x + 4.0/3.0
		dN = h * ((-0.5*x+2)*x - 2.0)
	case x >= 0.0 && x < 1.0:
		N = (0.5*x-1)*x*x + 2.0/3.0
		dN = h * (3.0/2.0*x - 2.0) * x
	case x >= -1.0 && x < 0.0:
		N = (-1.0/3.0*x-1.0)*x*x + 2.0/3.0
		dN = h * (-x - 2) * x
	}
	return
}

// cubicEdge computes the splines for nodes on the boundary
func cubicEdge(x, h float64) (N, dN float64) {
	switch {
	case x >= 1.0 && x < 2.0:
		N = ((-1.0/6.0*x+1.0)*x-2.0)*x + 4.0/3.0
		dN = h * ((-0.5*x+2)*x - 2.0)
	case x >= 0.0 && x < 1.0:
		N = (1.0/6.0*x*x-1.0)*x + 1.0
		dN = h * (0.5*x*x - 1.0)
	case x >= -1.0 && x < 0.0:
		N = (-1.0/6.0*x*x+1.0)*x + 1.0
		dN = h * (-0.5*x*x + 1.0)
	case x >= -2.0 && x < -1.0:
		N = ((1.0/6.0*x+1.0)*x+2.0)*x + 4.0/3.0
		dN = h * ((0.5*x+2)*x + 2.0)
	}
	return
}
