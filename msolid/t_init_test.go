// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newModel allocates and initialises a model; panics on error
func newModel(name string, prms dbf.Params) Model {
	mdl, err := New(name)
	if err != nil {
		chk.Panic("%v", err)
	}
	if err = mdl.Init(2, prms); err != nil {
		chk.Panic("%v", err)
	}
	return mdl
}
