// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"fmt"

	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/chk"
)

// RigidParticles implements a rigid body made of particles moving with prescribed velocities
//  Nodes touched by the rigid particles and carrying material mass are in contact. The
//  contact normal n = Σ m_p ∇S_np / |Σ m_p ∇S_np| points out of the material. Approaching
//  normal relative velocities (v_rel·n > 0) are removed; separating ones are kept
type RigidParticles struct {
	Ndim  int        // space dimension
	X     []tsr.Vec  // [nr] positions
	V     []tsr.Vec  // [nr] velocities
	Shape *shp.Shape // linear shape functions of the rigid particles

	// auxiliary
	vr     []tsr.Vec // [nnodes] rigid velocity at nodes
	wr     []float64 // [nnodes] sum of rigid weights at nodes
	normal []tsr.Vec // [nnodes] outward normal (not normalised)
}

// add force to factory
func init() {
	forceallocators["rigid"] = func(dat *inp.ForceData, nodes *Nodes) (Forcer, error) {
		if len(dat.V) != nodes.Ndim {
			return nil, chk.Err("rigid: velocity needs %d components. %d were given", nodes.Ndim, len(dat.V))
		}
		X, err := GenLine(dat.Start, dat.End, dat.Spacing)
		if err != nil {
			return nil, err
		}
		V := make([][]float64, len(X))
		for i := range V {
			V[i] = dat.V
		}
		return NewRigidParticles(X, V, nodes)
	}
}

// NewRigidParticles returns a new rigid body
func NewRigidParticles(X, V [][]float64, nodes *Nodes) (o *RigidParticles, err error) {
	if len(X) != len(V) {
		return nil, chk.Err("rigid: %d positions and %d velocities do not match", len(X), len(V))
	}
	o = &RigidParticles{Ndim: nodes.Ndim}
	o.X = make([]tsr.Vec, len(X))
	o.V = make([]tsr.Vec, len(X))
	for i := range X {
		if len(X[i]) != nodes.Ndim || len(V[i]) != nodes.Ndim {
			return nil, fmt.Errorf("rigid particle %d: %w", i, ErrInvalidDimension)
		}
		o.X[i] = tsr.NewVec(X[i])
		o.V[i] = tsr.NewVec(V[i])
	}
	o.Shape, err = shp.New("linear", len(X), nodes.Ndim)
	if err != nil {
		return nil, err
	}
	o.vr = make([]tsr.Vec, nodes.Nnodes)
	o.wr = make([]float64, nodes.Nnodes)
	o.normal = make([]tsr.Vec, nodes.Nnodes)
	return
}

// Apply applies force
func (o *RigidParticles) Apply(nodes *Nodes, parts *Particles, shape *shp.Shape, Δt float64) error {

	// rigid velocities at nodes
	for n := 0; n < nodes.Nnodes; n++ {
		o.vr[n] = tsr.Vec{}
		o.wr[n] = 0
		o.normal[n] = tsr.Vec{}
	}
	o.Shape.Calc(nodes.Origin, nodes.InvH, nodes.Size, o.X)
	for k, n := range o.Shape.Hashes {
		if n < 0 || o.Shape.S[k] <= 0 {
			continue
		}
		r := k / o.Shape.Nstencil
		tsr.AddScaled(&o.vr[n], o.Shape.S[k], o.V[r])
		o.wr[n] += o.Shape.S[k]
	}

	// outward normals
	for k, n := range shape.Hashes {
		if n < 0 {
			continue
		}
		p := k / shape.Nstencil
		tsr.AddScaled(&o.normal[n], parts.M[p], shape.G[k])
	}

	// remove approaching normal velocities
	for n := 0; n < nodes.Nnodes; n++ {
		if o.wr[n] <= 0 || nodes.Mass[n] <= MINMASS {
			continue
		}
		norm := tsr.Norm(o.normal[n])
		if norm <= 0 {
			continue
		}
		var nrm, vrel tsr.Vec
		tsr.AddScaled(&nrm, 1.0/norm, o.normal[n])
		m := nodes.Mass[n]
		for i := 0; i < o.Ndim; i++ {
			vrel[i] = (nodes.MomentNt[n][i]+nodes.Force[n][i]*Δt)/m - o.vr[n][i]/o.wr[n]
		}
		vn := tsr.Dot(vrel, nrm)
		if vn > 0 {
			tsr.AddScaled(&nodes.MomentNt[n], -m*vn, nrm)
		}
	}

	// advance rigid body
	for r := range o.X {
		tsr.AddScaled(&o.X[r], Δt, o.V[r])
	}
	return nil
}

// Field returns the rows of a named field of the rigid particles
func (o *RigidParticles) Field(name string) (res [][]float64, err error) {
	var src []tsr.Vec
	switch name {
	case "position":
		src = o.X
	case "velocity":
		src = o.V
	default:
		return nil, fmt.Errorf("rigid particles field %q: %w", name, ErrUnknownField)
	}
	res = make([][]float64, len(src))
	for r, x := range src {
		res[r] = x.Slice(o.Ndim)
	}
	return
}
