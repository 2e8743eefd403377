// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
)

// GenBlock generates a regular block of particle positions
//  Input:
//   start   -- [ndim] lower corner
//   size    -- [ndim] lengths along each axis
//   spacing -- distance between particles
//  Note: positions are start + i*spacing < start + size; the last axis runs fastest
func GenBlock(start, size []float64, spacing float64) (X [][]float64, err error) {
	ndim := len(start)
	if ndim < 1 || ndim > 3 || len(size) != ndim {
		return nil, fmt.Errorf("block with len(start)=%d and len(size)=%d: %w", len(start), len(size), ErrInvalidDimension)
	}
	if !(spacing > 0) {
		return nil, chk.Err("block spacing must be positive. spacing=%g is invalid", spacing)
	}
	count := make([]int, ndim)
	total := 1
	for i := 0; i < ndim; i++ {
		count[i] = int(math.Ceil(size[i]/spacing - 1e-9))
		if count[i] < 1 {
			return nil, chk.Err("block size %g along axis %d is smaller than spacing %g", size[i], i, spacing)
		}
		total *= count[i]
	}
	X = make([][]float64, total)
	idx := make([]int, ndim)
	for p := 0; p < total; p++ {
		X[p] = make([]float64, ndim)
		for i := 0; i < ndim; i++ {
			X[p][i] = start[i] + float64(idx[i])*spacing
		}
		for i := ndim - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < count[i] {
				break
			}
			idx[i] = 0
		}
	}
	return
}

// GenLine generates positions along the segment [start, end) with the given spacing
func GenLine(start, end []float64, spacing float64) (X [][]float64, err error) {
	ndim := len(start)
	if ndim < 1 || ndim > 3 || len(end) != ndim {
		return nil, fmt.Errorf("line with len(start)=%d and len(end)=%d: %w", len(start), len(end), ErrInvalidDimension)
	}
	length := 0.0
	for i := 0; i < ndim; i++ {
		length += (end[i] - start[i]) * (end[i] - start[i])
	}
	length = math.Sqrt(length)
	if !(spacing > 0) || length < spacing {
		return nil, chk.Err("line of length %g cannot hold particles with spacing %g", length, spacing)
	}
	n := int(math.Ceil(length/spacing - 1e-9))
	X = make([][]float64, n)
	for k := 0; k < n; k++ {
		X[k] = make([]float64, ndim)
		for i := 0; i < ndim; i++ {
			X[k][i] = start[i] + float64(k)*spacing*(end[i]-start[i])/length
		}
	}
	return
}

// Discretize sets volumes and masses of particles
//  The volume of each cell is shared by the particles inside it and mass = ρ * volume,
//  where ρ is given per particle. Particles outside the grid cause an error
func Discretize(parts *Particles, nodes *Nodes, rho []float64) (err error) {
	if len(rho) != parts.Np {
		return chk.Err("discretize needs %d densities. %d were given", parts.Np, len(rho))
	}
	ncells := 1
	for i := 0; i < nodes.Ndim; i++ {
		ncells *= nodes.Size[i] - 1
	}
	cells := make([]int, parts.Np)
	count := make([]int, ncells)
	for p := 0; p < parts.Np; p++ {
		c := 0
		for i := 0; i < nodes.Ndim; i++ {
			ci := int(math.Floor((parts.X[p][i] - nodes.Origin[i]) * nodes.InvH))
			if ci < 0 || ci >= nodes.Size[i]-1 {
				return chk.Err("particle %d at %v is outside the grid", p, parts.X[p].Slice(nodes.Ndim))
			}
			c = c*(nodes.Size[i]-1) + ci
		}
		cells[p] = c
		count[c]++
	}
	cellvol := math.Pow(nodes.H, float64(nodes.Ndim))
	for p := 0; p < parts.Np; p++ {
		vol := cellvol / float64(count[cells[p]])
		parts.Vol[p] = vol
		parts.Vol0[p] = vol
		parts.M[p] = rho[p] * vol
	}
	return
}
