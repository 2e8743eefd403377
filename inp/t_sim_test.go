// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. cube fall")

	sim, err := ReadSim("data/cubefall.yaml", "", false)
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	io.Pforan("sim = %+v\n", sim.Solver)

	chk.Int(tst, "ndim", sim.Ndim, 2)
	chk.String(tst, sim.Key, "cubefall")
	chk.String(tst, sim.DirOut, "/tmp/gompm/cubefall")
	chk.Array(tst, "origin", 1e-17, sim.Grid.Origin, []float64{0, 0})
	chk.Float64(tst, "h", 1e-17, sim.Grid.H, 0.25)

	chk.String(tst, sim.Solver.Type, "usl")
	chk.String(tst, sim.Solver.Shape, "cubic")
	chk.Float64(tst, "alpha", 1e-17, sim.Solver.Alpha, 0.99)
	chk.Float64(tst, "dt", 1e-17, sim.Solver.Dt, 0.003)
	chk.Int(tst, "nsteps", sim.Solver.Nsteps, 600)
	chk.Int(tst, "every", sim.Solver.Every, 100)
	chk.Strings(tst, "pfields", sim.Solver.Pfields, []string{"position", "stress", "pressure"})

	mat := sim.GetMat("rubber")
	if mat == nil {
		tst.Errorf("cannot find material\n")
		return
	}
	chk.String(tst, mat.Model, "lin-elast")
	chk.Float64(tst, "E", 1e-17, mat.Prms.Find("E").V, 10000)
	chk.Int(tst, "mat index", sim.MatIndex("rubber"), 0)
	chk.Int(tst, "mat index", sim.MatIndex("steel"), -1)

	chk.Int(tst, "nblocks", len(sim.Blocks), 2)
	chk.Float64(tst, "spacing", 1e-17, sim.Blocks[0].Spacing, 0.125)
	chk.Array(tst, "v", 1e-17, sim.Blocks[1].V, []float64{0, -0.5})

	chk.Int(tst, "nforces", len(sim.Forces), 3)
	chk.Array(tst, "g", 1e-17, sim.Forces[0].G, []float64{0, -9.8})
	chk.Strings(tst, "walls[1]", sim.Forces[1].Walls[1], []string{"separable", "free"})
	chk.Int(tst, "layers", sim.Forces[1].Layers, 2)
	chk.Array(tst, "rigid v", 1e-17, sim.Forces[2].V, []float64{0, 0.05})
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. defaults and errors")

	dir := tst.TempDir()
	write := func(name, content string) string {
		fn := filepath.Join(dir, name)
		if err := os.WriteFile(fn, []byte(content), 0644); err != nil {
			tst.Fatalf("cannot write %s: %v", fn, err)
		}
		return fn
	}

	// defaults
	fn := write("mini.yaml", `
grid: {origin: [0], end: [4], h: 1}
solver: {dt: 0.1, nsteps: 3}
materials: [{name: m, model: lin-elast, prms: [{n: E, v: 1}, {n: nu, v: 0}, {n: rho, v: 1}]}]
blocks: [{mat: m, start: [1], size: [2]}]
`)
	sim, err := ReadSim(fn, "run1", false)
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Key, "mini-run1")
	chk.String(tst, sim.Solver.Type, "usl")
	chk.String(tst, sim.Solver.Shape, "linear")
	chk.Float64(tst, "alpha", 1e-17, sim.Solver.Alpha, 0.99)
	chk.Int(tst, "every", sim.Solver.Every, 1)
	chk.Strings(tst, "pfields", sim.Solver.Pfields, []string{"position"})
	chk.Float64(tst, "spacing", 1e-17, sim.Blocks[0].Spacing, 0.5)

	// errors
	for i, content := range []string{
		"grid: {origin: [0, 0, 0, 0], end: [1, 1, 1, 1], h: 1}\nsolver: {dt: 1}\n",
		"grid: {origin: [0], end: [1], h: 1}\nsolver: {dt: 0}\n",
		"grid: {origin: [0], end: [1], h: 1}\nsolver: {dt: 1, alpha: 2}\n",
		"grid: {origin: [0], end: [1], h: 1}\nsolver: {dt: 1}\n",
		"grid: {origin: [0], end: [1], h: 1}\nsolver: {dt: 1}\nblocks: [{mat: x, start: [0], size: [1]}]\n",
		"grid: [",
	} {
		fn = write(io.Sf("bad%d.yaml", i), content)
		if _, err = ReadSim(fn, "", false); err == nil {
			tst.Errorf("case %d must fail\n", i)
		}
		io.Pforan("%v\n", err)
	}
	_, err = ReadSim(filepath.Join(dir, "missing.yaml"), "", false)
	if err == nil {
		tst.Errorf("missing file must fail\n")
		return
	}
	if !strings.Contains(err.Error(), "cannot read simulation file") {
		tst.Errorf("wrong error for missing file: %v\n", err)
	}
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. clay column")

	sim, err := ReadSim("data/claycolumn.yaml", "", false)
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	mat := sim.GetMat("clay")
	if mat == nil {
		tst.Errorf("cannot find material\n")
		return
	}
	chk.String(tst, mat.Model, "ccm")
	chk.Int(tst, "nprms", len(mat.Prms), 8)
	values, found := mat.Prms.GetValues([]string{"lam", "kap", "p0", "zeta"})
	chk.Array(tst, "values", 1e-17, values[:3], []float64{0.2, 0.04, 100})
	if !found[0] || !found[1] || !found[2] || found[3] {
		tst.Errorf("wrong found flags: %v\n", found)
	}
}
