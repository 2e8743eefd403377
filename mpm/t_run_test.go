// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"testing"

	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01. snapshots")

	nodes, parts, shape := fallingBlock(tst, []float64{0, 0})
	rigid, err := NewRigidParticles([][]float64{{0.5, 0.5}, {1, 0.5}}, [][]float64{{0, 1}, {0, 1}}, nodes)
	require.NoError(tst, err)
	forces := []Forcer{&Gravity{G: tsr.Vec{0, -9.8}}, rigid}
	solver, _ := NewSolver("usl", 0.99, 0.001)

	summary := new(Summary)
	snaps, err := Run(solver, nodes, parts, shape, nil, forces, RunControl{
		Nsteps:  10,
		Every:   3,
		Pfields: []string{"position", "velocity", "mass"},
		Ffields: []string{"position"},
		Verbose: chk.Verbose,
		Summary: summary,
	})
	require.NoError(tst, err)

	chk.Int(tst, "nsnaps", len(snaps), 3)
	chk.Ints(tst, "steps", summary.Steps, []int{3, 6, 9})
	for i, snap := range snaps {
		chk.Int(tst, "step", snap.Step, 3*(i+1))
		chk.Float64(tst, "time", 1e-15, snap.Time, float64(snap.Step)*0.001)
		chk.Int(tst, "np", len(snap.Particles["position"]), parts.Np)
		chk.Int(tst, "ncomp", len(snap.Particles["velocity"][0]), 2)
		chk.Int(tst, "nfields", len(snap.Particles), 3)
		chk.Float64(tst, "mass", 1e-15, summary.Mass[i], summary.Mass[0])
		require.Nil(tst, snap.Forces[0])
		chk.Float64(tst, "rigid y", 1e-14, snap.Forces[1]["position"][0][1], 0.5+snap.Time)
		chk.Float64(tst, "vy", 1e-12, snap.Particles["velocity"][0][1], -9.8*snap.Time)
	}

	// snapshots are copies
	snaps[0].Particles["position"][0][0] = -123
	chk.Float64(tst, "x", 1e-15, parts.X[0][0], 1.5)
	io.Pforan("KE = %v\n", summary.KE)
}

func Test_run02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run02. invalid controls")

	nodes, parts, shape := fallingBlock(tst, []float64{0, 0})
	rigid, _ := NewRigidParticles([][]float64{{0.5, 0.5}}, [][]float64{{0, 1}}, nodes)
	solver, _ := NewSolver("usl", 0.99, 0.001)

	_, err := Run(solver, nodes, parts, shape, nil, nil, RunControl{Nsteps: 5, Every: 1, Pfields: []string{"temperature"}})
	requireIs(tst, err, ErrUnknownField)
	_, err = Run(solver, nodes, parts, shape, nil, []Forcer{rigid}, RunControl{Nsteps: 5, Every: 1, Ffields: []string{"mass"}})
	requireIs(tst, err, ErrUnknownField)
	_, err = Run(solver, nodes, parts, shape, nil, nil, RunControl{Nsteps: 5, Every: 0})
	require.Error(tst, err)
	_, err = Run(solver, nodes, parts, shape, nil, nil, RunControl{Nsteps: -1, Every: 1})
	require.Error(tst, err)

	// nothing happened
	nstep, _ := solver.Clock()
	chk.Int(tst, "nstep", nstep, 0)

	// zero steps
	snaps, err := Run(solver, nodes, parts, shape, nil, nil, RunControl{Nsteps: 0, Every: 1})
	require.NoError(tst, err)
	chk.Int(tst, "nsnaps", len(snaps), 0)

	// unknown particle field
	_, err = parts.Field("temperature")
	requireIs(tst, err, ErrUnknownField)
}

func Test_run03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run03. derived fields")

	_, parts, _ := fixture(2)
	parts.Sig[1] = tsr.Ten{{-3, 0, 0}, {0, -3, 0}, {0, 0, -3}}
	p, err := parts.Field("pressure")
	require.NoError(tst, err)
	chk.Deep2(tst, "p", 1e-15, p, [][]float64{{-1}, {3}})
	q, err := parts.Field("vonmises")
	require.NoError(tst, err)
	chk.Float64(tst, "q1", 1e-15, q[1][0], 0)
	F, err := parts.Field("F")
	require.NoError(tst, err)
	chk.Array(tst, "F", 1e-15, F[0], []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}
