// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"errors"
	"testing"

	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// fixture returns two particles at the same position on a single-cell grid [0,1]^ndim
//  masses = [0.1, 0.3], volumes = [0.7, 0.4], velocities = 1, σ0 = ones and σ1 = 0
func fixture(ndim int) (nodes *Nodes, parts *Particles, shape *shp.Shape) {
	x := []float64{0.1, 0.25, 0.3}[:ndim]
	origin, end := make([]float64, ndim), make([]float64, ndim)
	ones := make([]float64, ndim)
	for i := 0; i < ndim; i++ {
		end[i] = 1
		ones[i] = 1
	}
	var err error
	nodes, err = NewNodes(origin, end, 1.0)
	if err != nil {
		chk.Panic("%v", err)
	}
	parts, err = NewParticles([][]float64{x, x})
	if err != nil {
		chk.Panic("%v", err)
	}
	parts.SetVelocity(ones)
	parts.SetMass([]float64{0.1, 0.3})
	parts.SetVolume([]float64{0.7, 0.4})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			parts.Sig[0][i][j] = 1
		}
	}
	shape, err = shp.New("linear", 2, ndim)
	if err != nil {
		chk.Panic("%v", err)
	}
	shape.Calc(nodes.Origin, nodes.InvH, nodes.Size, parts.X)
	return
}

// vecs returns the first ndim components of each vector
func vecs(v []tsr.Vec, ndim int) (res [][]float64) {
	res = make([][]float64, len(v))
	for i := range v {
		res[i] = v[i].Slice(ndim)
	}
	return
}

// requireIs checks that err matches target
func requireIs(tst *testing.T, err, target error) {
	tst.Helper()
	require.Truef(tst, errors.Is(err, target), "expected %q; got %v", target, err)
}
