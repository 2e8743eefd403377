// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gompm/ana"
	"github.com/cpmech/gompm/msolid"
	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

// fakeModel returns a fixed stress or error
type fakeModel struct {
	σ   tsr.Ten
	err error
}

func (o fakeModel) Init(ndim int, prms dbf.Params) error      { return nil }
func (o fakeModel) GetPrms() dbf.Params                       { return nil }
func (o fakeModel) GetRho() float64                           { return 1 }
func (o fakeModel) InitIntVars(σ *tsr.Ten) ([]float64, error) { return nil, nil }
func (o fakeModel) Update(σ, L tsr.Ten, α []float64, vol, Δt float64) (tsr.Ten, error) {
	return o.σ, o.err
}

// elastic returns an initialised linear elastic model
func elastic(E, ν, ρ float64, ndim int) msolid.Model {
	mdl, err := msolid.New("lin-elast")
	if err != nil {
		chk.Panic("%v", err)
	}
	err = mdl.Init(ndim, []*dbf.P{
		&dbf.P{N: "E", V: E},
		&dbf.P{N: "nu", V: ν},
		&dbf.P{N: "rho", V: ρ},
	})
	if err != nil {
		chk.Panic("%v", err)
	}
	return mdl
}

// fallingBlock returns a block of particles without material on a grid [0,4]^2
func fallingBlock(tst *testing.T, v0 []float64) (nodes *Nodes, parts *Particles, shape *shp.Shape) {
	nodes, err := NewNodes([]float64{0, 0}, []float64{4, 4}, 0.25)
	require.NoError(tst, err)
	X, err := GenBlock([]float64{1.5, 2}, []float64{1, 1}, 0.125)
	require.NoError(tst, err)
	parts, err = NewParticles(X)
	require.NoError(tst, err)
	parts.SetVelocity(v0)
	rho := make([]float64, parts.Np)
	for p := range rho {
		rho[p] = 1
	}
	require.NoError(tst, Discretize(parts, nodes, rho))
	shape, err = shp.New("linear", parts.Np, 2)
	require.NoError(tst, err)
	return
}

func Test_usl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("usl01. one step")

	nodes, parts, shape := fixture(2)
	solver, err := NewSolver("usl", 0.99, 0.1)
	require.NoError(tst, err)
	require.NoError(tst, solver.Update(nodes, parts, shape, nil, nil))

	nstep, t := solver.Clock()
	chk.Int(tst, "nstep", nstep, 1)
	chk.Float64(tst, "time", 1e-17, t, 0.1)
	J := 1 + 0.1*(-35.0/18.0-14.0/15.0)
	chk.Array(tst, "x0", 1e-14, parts.X[0].Slice(2), []float64{0.2, 0.35})
	chk.Array(tst, "vol", 1e-14, parts.Vol, []float64{0.7 * J, 0.4 * J})
	chk.Float64(tst, "Σm", 1e-15, nodes.TotalMass(), 0.4)
}

func Test_usl02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("usl02. free fall")

	v0 := 0.5
	nodes, parts, shape := fallingBlock(tst, []float64{0, v0})
	y0 := make([]float64, parts.Np)
	for p := 0; p < parts.Np; p++ {
		y0[p] = parts.X[p][1]
	}

	Δt, g, nsteps := 0.001, -9.8, 100
	forces := []Forcer{&Gravity{G: tsr.Vec{0, g}}}
	for _, α := range []float64{0, 0.99} {
		n, p, s := nodes, parts, shape
		if α > 0 {
			n, p, s = fallingBlock(tst, []float64{0, v0})
		}
		solver, err := NewSolver("usl", α, Δt)
		require.NoError(tst, err)
		for i := 0; i < nsteps; i++ {
			require.NoError(tst, solver.Update(n, p, s, nil, forces))
		}
		for k := 0; k < p.Np; k++ {
			sol := ana.FreeFall{X0: y0[k], V0: v0, G: g}
			chk.Float64(tst, io.Sf("y%d", k), 1e-10, p.X[k][1], sol.PositionDiscrete(nsteps, Δt))
			chk.Float64(tst, io.Sf("v%d", k), 1e-10, p.V[k][1], sol.Velocity(float64(nsteps)*Δt))
			chk.Float64(tst, io.Sf("vx%d", k), 1e-12, p.V[k][0], 0)
		}
		io.Pforan("α=%g: y0 = %v  (continuous: %v)\n", α, p.X[0][1], ana.FreeFall{X0: y0[0], V0: v0, G: g}.Position(float64(nsteps)*Δt))
	}
}

func Test_usl03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("usl03. vibrating bar")

	sol := ana.VibratingBar{L: 25, E: 100, Rho: 1, V0: 0.1}
	nodes, err := NewNodes([]float64{0}, []float64{30}, 1)
	require.NoError(tst, err)
	X, err := GenBlock([]float64{0.25}, []float64{25}, 0.5)
	require.NoError(tst, err)
	parts, err := NewParticles(X)
	require.NoError(tst, err)
	chk.Int(tst, "np", parts.Np, 50)
	rho := make([]float64, parts.Np)
	for p := 0; p < parts.Np; p++ {
		rho[p] = sol.Rho
		parts.V[p][0] = sol.Velocity(parts.X[p][0], 0)
		parts.Mat[p] = 0
	}
	require.NoError(tst, Discretize(parts, nodes, rho))
	mats, err := NewMatBatches([]msolid.Model{elastic(sol.E, 0, sol.Rho, 1)}, parts)
	require.NoError(tst, err)
	shape, err := shp.New("linear", parts.Np, 1)
	require.NoError(tst, err)
	forces := []Forcer{&NodeWall{Type: WallStick, Ids: []int{0}}}

	vcm := func() float64 { return TotalMomentum(parts)[0] / TotalMass(parts) }
	chk.Float64(tst, "vcm(0)", 1e-3, vcm(), sol.VelocityCM(0))

	Δt := 0.01
	nsteps := int(math.Round(0.5 * sol.Period() / Δt))
	chk.Int(tst, "nsteps", nsteps, 500)
	solver, err := NewSolver("usl", 1, Δt)
	require.NoError(tst, err)
	for i := 0; i < nsteps; i++ {
		require.NoError(tst, solver.Update(nodes, parts, shape, mats, forces))
	}
	_, t := solver.Clock()
	io.Pforan("t = %v  vcm = %v  (analytical: %v)\n", t, vcm(), sol.VelocityCM(t))
	ref := sol.VelocityCM(t)
	if math.Abs(vcm()-ref) > 0.05*math.Abs(ref) {
		tst.Errorf("centre of mass velocity %v is too far from %v\n", vcm(), ref)
	}
}

func Test_usl04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("usl04. failures")

	// material failure
	nodes, parts, shape := fixture(2)
	parts.Mat[1] = 0
	failure := errors.New("return mapping did not converge")
	mats, _ := NewMatBatches([]msolid.Model{fakeModel{err: failure}}, parts)
	solver, _ := NewSolver("usl", 0.99, 0.1)
	err := solver.Update(nodes, parts, shape, mats, nil)
	requireIs(tst, err, failure)
	var se *StepError
	require.True(tst, errors.As(err, &se))
	chk.Int(tst, "step", se.Step, 1)
	chk.Float64(tst, "time", 1e-17, se.Time, 0)
	chk.Int(tst, "particle", se.Particle, 1)
	msg := err.Error()
	chk.Int(tst, "particle mentions", strings.Count(msg, "particle 1"), 1)
	chk.String(tst, msg, "step 1 (t=0): particle 1: return mapping did not converge")
	nstep, _ := solver.Clock()
	chk.Int(tst, "nstep", nstep, 0)
	io.Pforan("%v\n", err)

	// blow-up
	nodes, parts, shape = fixture(2)
	parts.Mat[0] = 0
	var σ tsr.Ten
	σ[0][1] = math.NaN()
	mats, _ = NewMatBatches([]msolid.Model{fakeModel{σ: σ}}, parts)
	solver, _ = NewSolver("usl", 0.99, 0.1)
	err = solver.Update(nodes, parts, shape, mats, nil)
	requireIs(tst, err, ErrNonFiniteState)
	require.True(tst, errors.As(err, &se))
	chk.Int(tst, "step", se.Step, 1)
	chk.Float64(tst, "time", 1e-17, se.Time, 0)
	chk.Int(tst, "particle", se.Particle, 0)

	// inversion
	nodes, parts, shape = fixture(2)
	solver, _ = NewSolver("usl", 0.99, 1)
	err = solver.Update(nodes, parts, shape, nil, nil)
	requireIs(tst, err, ErrSingularJacobian)
}

func Test_usl05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("usl05. solver allocation")

	for _, c := range []struct {
		typ   string
		α, Δt float64
	}{
		{"usl", -0.1, 0.1},
		{"usl", 1.1, 0.1},
		{"usl", 0.5, 0},
		{"usl", 0.5, math.NaN()},
		{"musl", 0.5, 0.1},
	} {
		_, err := NewSolver(c.typ, c.α, c.Δt)
		io.Pforan("%v\n", err)
		require.Error(tst, err)
	}
}

func Test_usl06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("usl06. internal variables")

	clay, err := msolid.New("ccm")
	require.NoError(tst, err)
	require.NoError(tst, clay.Init(2, clay.GetPrms()))

	// unstressed particle takes the initial pressure of the model
	nodes, parts, shape := fixture(2)
	parts.Mat[1] = 0
	mats, err := NewMatBatches([]msolid.Model{clay}, parts)
	require.NoError(tst, err)
	require.Nil(tst, parts.Alp[0])
	chk.Array(tst, "α", 1e-15, parts.Alp[1], []float64{100, 2})
	chk.Deep2(tst, "σ", 1e-15, parts.Sig[1].Slices(), [][]float64{
		{-100, 0, 0},
		{0, -100, 0},
		{0, 0, -100},
	})

	// rigid motion keeps the state
	solver, _ := NewSolver("usl", 0.99, 0.01)
	err = solver.Update(nodes, parts, shape, mats, nil)
	require.NoError(tst, err)
	chk.Array(tst, "α", 1e-12, parts.Alp[1], []float64{100, 2})

	// tensile particle cannot be initialised
	_, parts, _ = fixture(2)
	parts.Mat[0] = 0
	_, err = NewMatBatches([]msolid.Model{clay}, parts)
	io.Pforan("%v\n", err)
	require.Error(tst, err)
}
