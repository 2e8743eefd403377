// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/msolid"
	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

type Input struct {
	SimFn   string  `yaml:"simfn"`   // simulation file with materials
	MatName string  `yaml:"matname"` // material name
	Path    string  `yaml:"path"`    // "shear", "uniaxial", "drained" or "undrained"
	Rate    float64 `yaml:"rate"`    // shear or axial strain rate
	Dt      float64 `yaml:"dt"`      // time step
	Nsteps  int     `yaml:"nsteps"`  // number of increments
	P0      float64 `yaml:"p0"`      // initial isotropic pressure
}

func (o *Input) PostProcess() {
	if o.Path == "" {
		o.Path = "shear"
	}
	if o.Dt <= 0 {
		o.Dt = 1e-3
	}
	if o.Nsteps < 1 {
		o.Nsteps = 100
	}
}

func (o Input) String() (l string) {
	l += "\nInput data\n"
	l += "==========\n"
	l += io.Sf("simulation filename   : SimFn   = %v\n", o.SimFn)
	l += io.Sf("material name         : MatName = %v\n", o.MatName)
	l += io.Sf("loading path          : Path    = %v\n", o.Path)
	l += io.Sf("strain rate           : Rate    = %v\n", o.Rate)
	l += io.Sf("time step             : Dt      = %v\n", o.Dt)
	l += io.Sf("number of increments  : Nsteps  = %v\n", o.Nsteps)
	l += io.Sf("initial pressure      : P0      = %v\n", o.P0)
	l += "\n"
	return
}

func main() {

	// input data file
	inpfn := "data/matdrv1.yaml"
	flag.Parse()
	if len(flag.Args()) > 0 {
		inpfn = flag.Arg(0)
	}
	if io.FnExt(inpfn) == "" {
		inpfn += ".yaml"
	}

	// read and parse input data
	var in Input
	b, err := os.ReadFile(inpfn)
	if err != nil {
		io.PfRed("cannot read %s\n", inpfn)
		return
	}
	err = yaml.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", inpfn)
		return
	}
	in.PostProcess()

	// print input data
	io.Pf("%v\n", in)

	// load simulation
	sim, err := inp.ReadSim(in.SimFn, "matdrv", false)
	if err != nil {
		io.PfRed("cannot load simulation:\n%v\n", err)
		return
	}

	// get material data
	mat := sim.GetMat(in.MatName)
	if mat == nil {
		io.PfRed("cannot get material %q\n", in.MatName)
		return
	}

	// get and initialise model
	mdl, err := msolid.New(mat.Model)
	if err != nil {
		io.PfRed("cannot allocate model:\n%v\n", err)
		return
	}
	err = mdl.Init(sim.Ndim, mat.Prms)
	if err != nil {
		io.PfRed("cannot initialise model:\n%v\n", err)
		return
	}

	// driver
	var drv msolid.Driver
	drv.Init(mdl)
	var σ0 tsr.Ten
	for i := 0; i < 3; i++ {
		σ0[i][i] = -in.P0
	}

	// run loading path
	switch in.Path {
	case "shear":
		err = drv.Run(σ0, msolid.SimpleShear(in.Rate), in.Dt, in.Nsteps)
	case "uniaxial":
		err = drv.Run(σ0, msolid.Uniaxial(in.Rate), in.Dt, in.Nsteps)
	case "drained", "undrained":
		err = drv.Triaxial(in.P0, in.Rate, in.Dt, in.Nsteps, in.Path == "drained")
	default:
		io.PfRed("path %q is invalid. options: shear, uniaxial, drained, undrained\n", in.Path)
		return
	}
	if err != nil {
		io.PfRed("driver failed: %v\n", err)
		return
	}

	// results
	io.Pf("%6s%14s%14s%14s%14s\n", "step", "εv", "εd", "p", "q")
	for i := range drv.Res {
		io.Pf("%6d%14.6e%14.6e%14.6e%14.6e\n", i,
			tsr.VolStrain(&drv.Eps[i]), tsr.Gamma(&drv.Eps[i]),
			tsr.Pressure(&drv.Res[i]), tsr.VonMises(&drv.Res[i]))
	}
}
