// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"fmt"
	"math"

	"github.com/cpmech/gompm/tsr"
)

// MINMASS is the smallest node mass considered in velocity computations; lighter nodes are inert
const MINMASS = 1e-14

// Nodes holds the background grid and the node accumulators
type Nodes struct {

	// geometry
	Ndim   int     // space dimension
	Origin tsr.Vec // lower corner
	End    tsr.Vec // upper corner
	H      float64 // node spacing
	InvH   float64 // 1/H
	Size   []int   // [ndim] number of nodes along each axis
	Nnodes int     // total number of nodes

	// accumulators
	Mass     []float64 // [nnodes] mass
	Moment   []tsr.Vec // [nnodes] momentum after P2G
	MomentNt []tsr.Vec // [nnodes] momentum modified by forces and integrated in time
	Force    []tsr.Vec // [nnodes] internal plus external forces
}

// NewNodes allocates a new grid
//  Input:
//   origin -- [ndim] lower corner
//   end    -- [ndim] upper corner
//   h      -- node spacing
func NewNodes(origin, end []float64, h float64) (o *Nodes, err error) {
	ndim := len(origin)
	if ndim < 1 || ndim > 3 || len(end) != ndim {
		return nil, fmt.Errorf("grid with len(origin)=%d and len(end)=%d: %w", len(origin), len(end), ErrInvalidDimension)
	}
	if !(h > 0) || math.IsInf(h, 0) {
		return nil, fmt.Errorf("node spacing h=%g must be positive: %w", h, ErrDegenerateGrid)
	}
	o = &Nodes{Ndim: ndim, H: h, InvH: 1.0 / h, Size: make([]int, ndim), Nnodes: 1}
	o.Origin = tsr.NewVec(origin)
	o.End = tsr.NewVec(end)
	for i := 0; i < ndim; i++ {
		if !(end[i] > origin[i]) {
			return nil, fmt.Errorf("axis %d has zero extent [%g, %g]: %w", i, origin[i], end[i], ErrDegenerateGrid)
		}
		o.Size[i] = int(math.Round((end[i]-origin[i])/h)) + 1
		o.Nnodes *= o.Size[i]
	}
	o.Mass = make([]float64, o.Nnodes)
	o.Moment = make([]tsr.Vec, o.Nnodes)
	o.MomentNt = make([]tsr.Vec, o.Nnodes)
	o.Force = make([]tsr.Vec, o.Nnodes)
	return
}

// Refresh zeroes all accumulators
func (o *Nodes) Refresh() {
	for n := 0; n < o.Nnodes; n++ {
		o.Mass[n] = 0
		o.Moment[n] = tsr.Vec{}
		o.MomentNt[n] = tsr.Vec{}
		o.Force[n] = tsr.Vec{}
	}
}

// Velocity returns the node velocity computed with the integrated momentum
//  Nodes with mass below MINMASS have zero velocity
func (o *Nodes) Velocity(n int) (v tsr.Vec) {
	if o.Mass[n] > MINMASS {
		tsr.AddScaled(&v, 1.0/o.Mass[n], o.MomentNt[n])
	}
	return
}

// VelocityOld returns the node velocity computed with the momentum after P2G
func (o *Nodes) VelocityOld(n int) (v tsr.Vec) {
	if o.Mass[n] > MINMASS {
		tsr.AddScaled(&v, 1.0/o.Mass[n], o.Moment[n])
	}
	return
}

// Integrate performs the explicit integration MomentNt += Force * Δt
func (o *Nodes) Integrate(Δt float64) {
	for n := 0; n < o.Nnodes; n++ {
		if o.Mass[n] > MINMASS {
			tsr.AddScaled(&o.MomentNt[n], Δt, o.Force[n])
		} else {
			o.MomentNt[n] = tsr.Vec{}
		}
	}
}

// Index returns the flat index of the node with integer coordinates I
//  The last axis runs fastest
func (o *Nodes) Index(I []int) (n int) {
	for i := 0; i < o.Ndim; i++ {
		n = n*o.Size[i] + I[i]
	}
	return
}

// Unravel returns the integer coordinates of node n
func (o *Nodes) Unravel(n int) (I [3]int) {
	for i := o.Ndim - 1; i >= 0; i-- {
		I[i] = n % o.Size[i]
		n /= o.Size[i]
	}
	return
}

// Coords returns the position of node n
func (o *Nodes) Coords(n int) (x tsr.Vec) {
	I := o.Unravel(n)
	for i := 0; i < o.Ndim; i++ {
		x[i] = o.Origin[i] + float64(I[i])*o.H
	}
	return
}

// TotalMass returns the sum of node masses
func (o *Nodes) TotalMass() (sum float64) {
	for _, m := range o.Mass {
		sum += m
	}
	return
}
