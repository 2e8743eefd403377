// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/chk"
)

// Gravity adds the weight of the nodal mass to the nodal forces
type Gravity struct {
	G tsr.Vec // gravity acceleration
}

// add force to factory
func init() {
	forceallocators["gravity"] = func(dat *inp.ForceData, nodes *Nodes) (Forcer, error) {
		if len(dat.G) != nodes.Ndim {
			return nil, chk.Err("gravity needs %d components. %d were given", nodes.Ndim, len(dat.G))
		}
		return &Gravity{G: tsr.NewVec(dat.G)}, nil
	}
}

// Apply applies force
func (o *Gravity) Apply(nodes *Nodes, parts *Particles, shape *shp.Shape, Δt float64) error {
	for n := 0; n < nodes.Nnodes; n++ {
		tsr.AddScaled(&nodes.Force[n], nodes.Mass[n], o.G)
	}
	return nil
}
