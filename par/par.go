// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package par implements data-parallel loops over index ranges
package par

import (
	"runtime"
	"sync"
)

// Threshold is the minimum number of items to go parallel; below it the loop runs serially
const Threshold = 256

// Nworkers is the number of goroutines used by For. It defaults to GOMAXPROCS
var Nworkers = runtime.GOMAXPROCS(0)

// For calls fn(lo, hi) over disjoint chunks covering [0, n). Chunks run concurrently and
// For returns when all chunks are finished. fn must only write to data owned by its chunk
func For(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	nw := Nworkers
	if nw < 2 || n < Threshold {
		fn(0, n)
		return
	}
	if nw > n {
		nw = n
	}
	size := (n + nw - 1) / nw
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// Errors collects at most one error per chunk and returns the one from the lowest index
type Errors struct {
	mu  sync.Mutex
	idx int
	err error
}

// Set records err found at index idx
func (o *Errors) Set(idx int, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err == nil || idx < o.idx {
		o.idx, o.err = idx, err
	}
}

// Err returns the recorded error, if any
func (o *Errors) Err() error {
	return o.err
}
