// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements constitutive models updating the Cauchy stress of material points
/*
 *  Rate form used by all models:
 *
 *    D = sym(L)              rate of deformation
 *    W = skw(L)              spin (ignored; no objective rate)
 *    σ_(n+1) = σ_(n) + Δt * f(σ_(n), D)
 *
 *  Tension is positive. Pressure p = -tr(σ)/3 is positive in compression.
 */
package msolid

import (
	"strings"

	"github.com/cpmech/gompm/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for constitutive models
//  Update must not modify the receiver: it is called concurrently for many particles.
//  The internal variables α belong to one particle and are updated in place
type Model interface {
	Init(ndim int, prms dbf.Params) error                                        // initialises model
	GetPrms() dbf.Params                                                         // gets (an example) of parameters
	GetRho() float64                                                             // returns density
	InitIntVars(σ *tsr.Ten) (α []float64, err error)                             // initialises internal variables (and possibly σ)
	Update(σ, L tsr.Ten, α []float64, vol, Δt float64) (σnew tsr.Ten, err error) // updates stresses for given velocity gradient
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}

// checkNames checks that all parameters are known
func checkNames(prms dbf.Params, caller string, known ...string) error {
	for _, p := range prms {
		found := false
		for _, k := range known {
			if p.N == k {
				found = true
				break
			}
		}
		if !found {
			return chk.Err("%s: parameter named %q is incorrect", caller, p.N)
		}
	}
	return nil
}

// connect sets the variables in vars to the values of the required parameters in names
func connect(prms dbf.Params, caller string, vars []*float64, names ...string) error {
	for i, name := range names {
		if msg := prms.Connect(vars[i], name, caller); msg != "" {
			return chk.Err("%s", strings.TrimSpace(msg))
		}
	}
	return nil
}
