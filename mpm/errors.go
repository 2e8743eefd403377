// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"errors"

	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gosl/io"
)

// errors. All of them are fatal to the current run
var (
	ErrInvalidDimension = shp.ErrInvalidDimension                           // space dimension not in {1,2,3}
	ErrDegenerateGrid   = shp.ErrDegenerateGrid                             // non-positive spacing or zero-extent axis
	ErrSingularJacobian = errors.New("deformation gradient with det(F) <= 0") // material inversion
	ErrNonFiniteState   = errors.New("non-finite state (NaN or Inf)")         // blow-up detected after a step
	ErrUnknownField     = errors.New("unknown output field")
)

// StepError wraps an error with the context of the step that failed
type StepError struct {
	Step     int     // step number (1 for the first step)
	Time     float64 // time at the beginning of the step
	Particle int     // particle index; -1 if unknown
	Err      error   // wrapped error
}

// Error returns the error message
func (e *StepError) Error() string {
	if e.Particle < 0 {
		return io.Sf("step %d (t=%g): %v", e.Step, e.Time, e.Err)
	}
	return io.Sf("step %d (t=%g): particle %d: %v", e.Step, e.Time, e.Particle, e.Err)
}

// Unwrap returns the wrapped error
func (e *StepError) Unwrap() error { return e.Err }

// particleError holds the index of the particle that caused err
type particleError struct {
	p   int
	err error
}

func (e *particleError) Error() string { return io.Sf("particle %d: %v", e.p, e.err) }
func (e *particleError) Unwrap() error { return e.err }

// particleOf returns the particle index carried by err, or -1, and err
// without the particle context when the index was found
func particleOf(err error) (p int, cause error) {
	var pe *particleError
	if errors.As(err, &pe) {
		return pe.p, pe.err
	}
	return -1, err
}
