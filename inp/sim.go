// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.yaml) simulation file
package inp

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `yaml:"desc"`   // description of simulation
	DirOut string `yaml:"dirout"` // directory for output; e.g. /tmp/gompm
}

// GridData holds the definition of the background grid
type GridData struct {
	Origin []float64 `yaml:"origin"` // lower corner
	End    []float64 `yaml:"end"`    // upper corner
	H      float64   `yaml:"h"`      // node spacing
}

// SolverData holds the data of the time integration scheme
type SolverData struct {
	Type     string   `yaml:"type"`     // solver type; e.g. "usl"
	Shape    string   `yaml:"shape"`    // shape functions: "linear" or "cubic"
	Alpha    float64  `yaml:"alpha"`    // FLIP/PIC blending
	Dt       float64  `yaml:"dt"`       // time step
	Nsteps   int      `yaml:"nsteps"`   // number of steps
	Every    int      `yaml:"every"`    // output stride
	Nworkers int      `yaml:"nworkers"` // number of goroutines; 0 means use all processors
	Pfields  []string `yaml:"pfields"`  // particle fields to record
	Ffields  []string `yaml:"ffields"`  // force fields to record
}

// MatData holds material data
type MatData struct {
	Name  string     `yaml:"name"`  // name of material; referenced by blocks
	Model string     `yaml:"model"` // model name; e.g. "lin-elast"
	Prms  dbf.Params `yaml:"prms"`  // parameters; each one as {n: name, v: value}
}

// BlockData holds a regular block of particles
type BlockData struct {
	Mat     string    `yaml:"mat"`     // material name
	Start   []float64 `yaml:"start"`   // lower corner
	Size    []float64 `yaml:"size"`    // lengths along each axis
	Spacing float64   `yaml:"spacing"` // distance between particles; 0 means h / ppc
	Ppc     int       `yaml:"ppc"`     // particles per cell along each axis (if spacing is 0)
	V       []float64 `yaml:"v"`       // initial velocity
}

// ForceData holds data of forces and boundary conditions
type ForceData struct {
	Type string `yaml:"type"` // "gravity", "box", "nodewall" or "rigid"

	// gravity
	G []float64 `yaml:"g"` // gravity acceleration

	// box
	Walls  [][]string `yaml:"walls"`  // [ndim][2] lower and upper wall types: free, stick, slip, separable
	Layers int        `yaml:"layers"` // number of node layers per face

	// nodewall
	Wall  string `yaml:"wall"`  // wall type
	Axis  int    `yaml:"axis"`  // normal direction
	Side  int    `yaml:"side"`  // -1: lower side; +1: upper side
	Nodes []int  `yaml:"nodes"` // node ids

	// rigid particles
	Start   []float64 `yaml:"start"`   // first particle
	End     []float64 `yaml:"end"`     // end of line of particles
	Spacing float64   `yaml:"spacing"` // distance between particles
	V       []float64 `yaml:"v"`       // velocity
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data         `yaml:"data"`      // stores global simulation data
	Grid      GridData     `yaml:"grid"`      // background grid
	Solver    SolverData   `yaml:"solver"`    // solver data
	Materials []*MatData   `yaml:"materials"` // materials
	Blocks    []*BlockData `yaml:"blocks"`    // particles
	Forces    []*ForceData `yaml:"forces"`    // forces and boundary conditions

	// derived
	Ndim   int    // space dimension
	Key    string // simulation key; e.g. mysim01.yaml => mysim01 or mysim01-alias
	DirOut string // directory to save results
}

// ReadSim reads all simulation data from a .yaml file
func ReadSim(simfilepath, alias string, erasefiles bool) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values and decode
	o = new(Simulation)
	o.Solver.SetDefault()
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// filename key
	o.Key = io.FnKey(filepath.Base(simfilepath))
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = filepath.Join(os.TempDir(), "gompm", o.Key)
	}

	// check data
	if err = o.PostProcess(); err != nil {
		return nil, chk.Err("ReadSim: %q is invalid:\n%v", simfilepath, err)
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}
	return
}

// PostProcess checks the data and sets derived values
func (o *Simulation) PostProcess() (err error) {
	o.Ndim = len(o.Grid.Origin)
	if o.Ndim < 1 || o.Ndim > 3 || len(o.Grid.End) != o.Ndim {
		return chk.Err("grid origin and end must have the same number (1, 2 or 3) of components")
	}
	if err = o.Solver.PostProcess(); err != nil {
		return
	}
	if len(o.Blocks) == 0 {
		return chk.Err("at least one block of particles is required")
	}
	for i, blk := range o.Blocks {
		if o.GetMat(blk.Mat) == nil {
			return chk.Err("block %d: cannot find material named %q", i, blk.Mat)
		}
		if len(blk.Start) != o.Ndim || len(blk.Size) != o.Ndim {
			return chk.Err("block %d: start and size must have %d components", i, o.Ndim)
		}
		if len(blk.V) != 0 && len(blk.V) != o.Ndim {
			return chk.Err("block %d: velocity must have %d components", i, o.Ndim)
		}
		if blk.Spacing <= 0 {
			if blk.Ppc < 1 {
				blk.Ppc = 2
			}
			blk.Spacing = o.Grid.H / float64(blk.Ppc)
		}
	}
	for i, f := range o.Forces {
		if f.Type == "" {
			return chk.Err("force %d has no type", i)
		}
	}
	return
}

// GetMat returns the material data named name; nil if not found
func (o *Simulation) GetMat(name string) *MatData {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// MatIndex returns the index of material named name; -1 if not found
func (o *Simulation) MatIndex(name string) int {
	for i, m := range o.Materials {
		if m.Name == name {
			return i
		}
	}
	return -1
}

// SetDefault set defaults values
func (o *SolverData) SetDefault() {
	o.Type = "usl"
	o.Shape = "linear"
	o.Alpha = 0.99
	o.Every = 1
	o.Pfields = []string{"position"}
}

// PostProcess checks solver data
func (o *SolverData) PostProcess() (err error) {
	if o.Alpha < 0 || o.Alpha > 1 {
		return chk.Err("alpha=%g must be in [0, 1]", o.Alpha)
	}
	if !(o.Dt > 0) {
		return chk.Err("dt=%g must be positive", o.Dt)
	}
	if o.Nsteps < 0 {
		return chk.Err("nsteps=%d must be non-negative", o.Nsteps)
	}
	if o.Every < 1 {
		o.Every = 1
	}
	return
}
