// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// clay returns a normally consolidated clay
func clay(ocr float64) Model {
	return newModel("ccm", dbf.Params{
		{N: "M", V: 1.2},
		{N: "lam", V: 0.2},
		{N: "kap", V: 0.04},
		{N: "nu", V: 0.3},
		{N: "ocr", V: ocr},
		{N: "v0", V: 2},
		{N: "rho", V: 1800},
	})
}

func Test_ccm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ccm01. isotropic compression along the NCL")

	mdl := clay(1)
	var drv Driver
	drv.Init(mdl)
	var σ0, L tsr.Ten
	for i := 0; i < 3; i++ {
		σ0[i][i] = -100
		L[i][i] = -0.001
	}
	err := drv.Run(σ0, L, 1, 100)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	σ, α := drv.Res[100], drv.Alp[100]
	p := tsr.Pressure(&σ)
	io.Pforan("p = %v  pc = %v  v = %v\n", p, α[0], α[1])
	chk.Float64(tst, "q", 1e-10, tsr.VonMises(&σ), 0)
	chk.Float64(tst, "pc", 1e-8*p, α[0], p)
	chk.Float64(tst, "v", 1e-13, α[1], 2*math.Exp(-0.3))
	chk.Float64(tst, "ln(p/p0)", 1e-2, math.Log(p/100), (2-α[1])/0.2)
	for i := 1; i <= 100; i++ {
		if drv.Alp[i][0] <= drv.Alp[i-1][0] {
			tst.Errorf("pc must increase under virgin compression. step %d\n", i)
			return
		}
	}
}

func Test_ccm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ccm02. elastic reloading of overconsolidated clay")

	mdl := clay(2)
	var drv Driver
	drv.Init(mdl)
	var σ0, L tsr.Ten
	for i := 0; i < 3; i++ {
		σ0[i][i] = -100
		L[i][i] = -0.0002
	}
	err := drv.Run(σ0, L, 1, 10)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Float64(tst, "pc0", 1e-12, drv.Alp[0][0], 200)
	chk.Float64(tst, "pc", 1e-12, drv.Alp[10][0], 200)
	σ := drv.Res[10]
	p := tsr.Pressure(&σ)
	if p <= 100 || p >= 200 {
		tst.Errorf("p must increase inside the yield surface. p = %v\n", p)
	}
}

func Test_ccm03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ccm03. drained triaxial compression")

	mdl := clay(1)
	ccm := mdl.(*CamClayMod)
	var drv Driver
	drv.Init(mdl)
	err := drv.Triaxial(100, 0.001, 1, 400, true)
	if err != nil {
		tst.Errorf("Triaxial failed:\n%v", err)
		return
	}
	for i, σ := range drv.Res {
		p, q := tsr.Pressure(&σ), tsr.VonMises(&σ)
		chk.Float64(tst, io.Sf("σr(%d)", i), 1e-7, σ[1][1], -100)
		chk.Float64(tst, io.Sf("σr(%d)", i), 1e-7, σ[2][2], -100)
		chk.Float64(tst, io.Sf("q(%d)", i), 1e-6, q, 3*(p-100))
		if f := ccm.Yield(&σ, drv.Alp[i][0]); f > 1e-8*drv.Alp[i][0]*drv.Alp[i][0] {
			tst.Errorf("stress outside the yield surface at %d: f = %v\n", i, f)
			return
		}
	}
	σ := drv.Res[400]
	η := tsr.VonMises(&σ) / tsr.Pressure(&σ)
	io.Pforan("η = %v\n", η)
	if η < 0.95*ccm.M || η > ccm.M {
		tst.Errorf("stress ratio must approach M from below. η = %v\n", η)
	}
	if εv := tsr.Tr(&drv.Eps[400]); εv >= 0 {
		tst.Errorf("normally consolidated clay must contract. εv = %v\n", εv)
	}
}

func Test_ccm04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ccm04. undrained triaxial compression")

	mdl := clay(1)
	var drv Driver
	drv.Init(mdl)
	err := drv.Triaxial(100, 0.001, 1, 400, false)
	if err != nil {
		tst.Errorf("Triaxial failed:\n%v", err)
		return
	}
	σ, α := drv.Res[400], drv.Alp[400]
	p, q := tsr.Pressure(&σ), tsr.VonMises(&σ)
	io.Pforan("p = %v  q = %v\n", p, q)
	chk.Float64(tst, "εv", 1e-15, tsr.Tr(&drv.Eps[400]), 0)
	chk.Float64(tst, "v", 1e-13, α[1], 2)
	chk.Float64(tst, "η", 1e-6, q/p, 1.2)
	chk.Float64(tst, "pc", 1e-4, α[0], 2*p)

	// critical state: p = p0 (1/2)^Λ with Λ = (λ-κ)/λ
	chk.Float64(tst, "p", 0.1, p, 100*math.Pow(0.5, 0.8))
}

func Test_ccm05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ccm05. parameters and initial state")

	mdl, _ := New("ccm")
	if err := mdl.Init(2, dbf.Params{{N: "M", V: 1}, {N: "lam", V: 0.1}, {N: "kap", V: 0.2}, {N: "nu", V: 0.3}, {N: "rho", V: 1}}); err == nil {
		tst.Errorf("kap > lam must fail\n")
	}
	if err := mdl.Init(2, dbf.Params{{N: "lam", V: 0.2}, {N: "kap", V: 0.04}, {N: "nu", V: 0.3}, {N: "rho", V: 1}}); err == nil {
		tst.Errorf("missing M must fail\n")
	}
	if err := mdl.Init(2, dbf.Params{{N: "M", V: 1}, {N: "kap", V: 0.04}, {N: "nu", V: 0.3}, {N: "rho", V: 1}}); err == nil {
		tst.Errorf("missing lam must fail\n")
	}

	// M from φ
	mdl = newModel("ccm", dbf.Params{{N: "phi", V: 30}, {N: "lam", V: 0.2}, {N: "kap", V: 0.04}, {N: "nu", V: 0.3}, {N: "rho", V: 1}})
	chk.Float64(tst, "M", 1e-15, mdl.(*CamClayMod).M, 1.2)
	chk.Int(tst, "example prms", len(mdl.GetPrms()), 8)

	// unstressed point without p0
	var σ tsr.Ten
	if _, err := mdl.InitIntVars(&σ); err == nil {
		tst.Errorf("zero initial pressure must fail\n")
	}

	// unstressed point with p0
	mdl = newModel("ccm", mdl.GetPrms())
	α, err := mdl.InitIntVars(&σ)
	if err != nil {
		tst.Errorf("InitIntVars failed:\n%v", err)
		return
	}
	chk.Array(tst, "α", 1e-15, α, []float64{100, 2})
	chk.Float64(tst, "p", 1e-15, tsr.Pressure(&σ), 100)

	// anisotropic initial stress
	σ = tsr.Ten{{-120, 0, 0}, {0, -90, 0}, {0, 0, -90}}
	α, _ = mdl.InitIntVars(&σ)
	chk.Float64(tst, "pc", 1e-12, α[0], 100+30*30/(1.44*100))
}
