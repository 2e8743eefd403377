// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements the shape functions coupling material points to grid nodes
package shp

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/gompm/par"
	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/chk"
)

// FACETOL is the tolerance, in cell units, to consider a particle on the upper face of the grid
const FACETOL = 1e-10

// errors
var (
	ErrInvalidDimension = errors.New("space dimension must be 1, 2 or 3")
	ErrDegenerateGrid   = errors.New("degenerate grid")
)

// BasisFunc computes the 1D basis value N and its derivative dNdx for the normalised
// distance ξ = (xp - xn) / h. species is the node classification along this axis
type BasisFunc func(ξ, invh float64, species int) (N, dNdx float64)

// Shape holds the stencil and the interaction records of all particles
//  Interaction k = p * Nstencil + s couples particle p with stencil node s
type Shape struct {

	// definition
	Type     string    // name; e.g. "linear"
	Func     BasisFunc // 1D basis function
	Ndim     int       // space dimension
	Np       int       // number of particles
	Nstencil int       // number of nodes in stencil
	Stencil  [][3]int  // [nstencil] offsets with respect to the particle's cell
	MinNodes int       // minimum number of nodes per axis

	// interactions
	Hashes []int     // [np*nstencil] node flat index; -1 if the node is outside the grid
	S      []float64 // [np*nstencil] shape function
	G      []tsr.Vec // [np*nstencil] gradient of shape function (zero padded)
	Dist   []tsr.Vec // [np*nstencil] normalised particle-node distance (zero padded)
}

// allocators holds all available shape functions; name => allocator
var allocators = map[string]func(ndim int) *Shape{}

// New returns a new shape structure with buffers for np particles
func New(typ string, np, ndim int) (o *Shape, err error) {
	if ndim < 1 || ndim > 3 {
		return nil, fmt.Errorf("cannot allocate %q shape with ndim=%d: %w", typ, ndim, ErrInvalidDimension)
	}
	allocator, ok := allocators[typ]
	if !ok {
		return nil, chk.Err("shape function %q is not available", typ)
	}
	o = allocator(ndim)
	o.Type = typ
	o.Ndim = ndim
	o.Nstencil = len(o.Stencil)
	o.Resize(np)
	return
}

// Resize reallocates the interaction buffers for np particles
func (o *Shape) Resize(np int) {
	o.Np = np
	n := np * o.Nstencil
	o.Hashes = make([]int, n)
	o.S = make([]float64, n)
	o.G = make([]tsr.Vec, n)
	o.Dist = make([]tsr.Vec, n)
}

// GetCopy returns a new copy of this shape structure
func (o *Shape) GetCopy() *Shape {
	p := *o
	p.Stencil = append([][3]int(nil), o.Stencil...)
	p.Hashes = append([]int(nil), o.Hashes...)
	p.S = append([]float64(nil), o.S...)
	p.G = append([]tsr.Vec(nil), o.G...)
	p.Dist = append([]tsr.Vec(nil), o.Dist...)
	return &p
}

// CheckGrid checks whether a grid with size nodes per axis can hold this shape
func (o *Shape) CheckGrid(size []int) error {
	if len(size) != o.Ndim {
		return fmt.Errorf("grid has %d axes but shape has ndim=%d: %w", len(size), o.Ndim, ErrInvalidDimension)
	}
	for i, n := range size {
		if n < o.MinNodes {
			return fmt.Errorf("%s shape needs at least %d nodes along axis %d, got %d: %w", o.Type, o.MinNodes, i, n, ErrDegenerateGrid)
		}
	}
	return nil
}

// Calc computes the interactions between all particles and their stencil nodes
//  Input:
//   origin -- grid origin
//   invh   -- inverse of node spacing
//   size   -- [ndim] number of nodes per axis
//   X      -- [np] particle positions
func (o *Shape) Calc(origin tsr.Vec, invh float64, size []int, X []tsr.Vec) {
	if len(X) != o.Np {
		o.Resize(len(X))
	}
	par.For(o.Np, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			o.calcParticle(p, origin, invh, size, X[p])
		}
	})
}

// Interaction returns the record of interaction k
func (o *Shape) Interaction(k int) (hash int, S float64, G tsr.Vec) {
	return o.Hashes[k], o.S[k], o.G[k]
}

// calcParticle computes the interactions of particle p
func (o *Shape) calcParticle(p int, origin tsr.Vec, invh float64, size []int, x tsr.Vec) {

	// grid coordinates and cell containing the particle. A particle lying on
	// the upper face is taken as the left limit so that it belongs to the
	// last cell and sees one-sided gradients
	var u tsr.Vec
	var cell [3]int
	for i := 0; i < o.Ndim; i++ {
		u[i] = (x[i] - origin[i]) * invh
		last := float64(size[i] - 1)
		if u[i] >= last && u[i] <= last+FACETOL {
			u[i] = math.Nextafter(last, 0)
		}
		cell[i] = int(math.Floor(u[i]))
	}

	// loop over stencil
	var N, dN [3]float64
	var node [3]int
	for s, offset := range o.Stencil {
		k := p*o.Nstencil + s

		// node index and flat index
		hash := 0
		inside := true
		for i := 0; i < o.Ndim; i++ {
			node[i] = cell[i] + offset[i]
			if node[i] < 0 || node[i] >= size[i] {
				inside = false
			}
			hash = hash*size[i] + node[i]
		}

		// distance and 1D basis functions
		var ξ tsr.Vec
		for i := 0; i < o.Ndim; i++ {
			ξ[i] = u[i] - float64(node[i])
			N[i], dN[i] = o.Func(ξ[i], invh, Species(node[i], size[i]))
		}
		o.Dist[k] = ξ
		if !inside {
			o.Hashes[k] = -1
			o.S[k] = 0
			o.G[k] = tsr.Vec{}
			continue
		}
		o.Hashes[k] = hash

		// tensor product
		var g tsr.Vec
		switch o.Ndim {
		case 1:
			o.S[k] = N[0]
			g[0] = dN[0]
		case 2:
			o.S[k] = N[0] * N[1]
			g[0] = dN[0] * N[1]
			g[1] = N[0] * dN[1]
		case 3:
			o.S[k] = N[0] * N[1] * N[2]
			g[0] = dN[0] * N[1] * N[2]
			g[1] = N[0] * dN[1] * N[2]
			g[2] = N[0] * N[1] * dN[2]
		}
		o.G[k] = g
	}
}
