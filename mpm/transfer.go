// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/par"
	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gompm/tsr"
)

// Transfer maps particle data to the grid (P2G) and back (G2P)
//  P2G reduces the contributions of each node in ascending interaction order; thus,
//  results do not depend on the number of workers
type Transfer struct {
	bins binning
}

// P2G transfers mass, momentum and forces from particles to nodes
//  The grid must have been refreshed. MomentNt is initialised with Moment
func (o *Transfer) P2G(nodes *Nodes, parts *Particles, shape *shp.Shape) {
	o.bins.build(shape.Hashes, nodes.Nnodes)
	ndim := nodes.Ndim
	par.For(nodes.Nnodes, func(lo, hi int) {
		var σg tsr.Vec
		for n := lo; n < hi; n++ {
			var mass float64
			var moment, force tsr.Vec
			for _, k := range o.bins.node(n) {
				p := k / shape.Nstencil
				w, g := shape.S[k], shape.G[k]
				mw := parts.M[p] * w
				mass += mw
				tsr.MatVec(&σg, &parts.Sig[p], g)
				for i := 0; i < ndim; i++ {
					moment[i] += mw * parts.V[p][i]
					force[i] += -parts.Vol[p]*σg[i] + w*parts.Fext[p][i]
				}
			}
			nodes.Mass[n] = mass
			nodes.Moment[n] = moment
			nodes.MomentNt[n] = moment
			nodes.Force[n] = force
		}
	})
}

// G2P updates velocities, positions, velocity gradients, deformation gradients and volumes
//  Input:
//   α  -- FLIP/PIC blending; 1 is pure FLIP and 0 is pure PIC
//   Δt -- time step
func (o *Transfer) G2P(nodes *Nodes, parts *Particles, shape *shp.Shape, α, Δt float64) (err error) {
	var errs par.Errors
	par.For(parts.Np, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			if e := g2pParticle(p, nodes, parts, shape, α, Δt); e != nil {
				errs.Set(p, e)
				return
			}
		}
	})
	return errs.Err()
}

// g2pParticle updates particle p
func g2pParticle(p int, nodes *Nodes, parts *Particles, shape *shp.Shape, α, Δt float64) error {

	// gather
	var vpic, Δv tsr.Vec
	var L tsr.Ten
	for s := 0; s < shape.Nstencil; s++ {
		k := p*shape.Nstencil + s
		n := shape.Hashes[k]
		if n < 0 {
			continue
		}
		w, g := shape.S[k], shape.G[k]
		vnew := nodes.Velocity(n)
		vold := nodes.VelocityOld(n)
		for i := 0; i < 3; i++ {
			vpic[i] += w * vnew[i]
			Δv[i] += w * (vnew[i] - vold[i])
		}
		tsr.AddOuter(&L, 1, g, vnew)
	}

	// velocity and position
	for i := 0; i < 3; i++ {
		parts.V[p][i] = α*(parts.V[p][i]+Δv[i]) + (1-α)*vpic[i]
		parts.X[p][i] += Δt * vpic[i]
	}

	// deformation: F_new = (I + Δt L) · F_old
	parts.L[p] = L
	A := tsr.Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			A[i][j] += Δt * L[i][j]
		}
	}
	var Fnew tsr.Ten
	tsr.MatMul(&Fnew, &A, &parts.F[p])
	J := tsr.Det(&Fnew)
	parts.F[p] = Fnew
	if !(J > 0) {
		return &particleError{p, ErrSingularJacobian}
	}
	parts.Vol[p] = parts.Vol0[p] * J
	return nil
}
