// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

// binning groups interaction ids by node so that each node reduces its own contributions
//  Interactions of node n are ids[start[n]:start[n+1]] in ascending order
type binning struct {
	start []int // [nnodes+1] offsets
	ids   []int // [ninteractions] interaction ids sorted by node (stable)
}

// build runs a counting sort of the interaction ids by node hash. Negative hashes are skipped
func (o *binning) build(hashes []int, nnodes int) {
	if len(o.start) != nnodes+1 {
		o.start = make([]int, nnodes+1)
	} else {
		for i := range o.start {
			o.start[i] = 0
		}
	}
	for _, h := range hashes {
		if h >= 0 {
			o.start[h+1]++
		}
	}
	for n := 0; n < nnodes; n++ {
		o.start[n+1] += o.start[n]
	}
	if cap(o.ids) < o.start[nnodes] {
		o.ids = make([]int, o.start[nnodes])
	}
	o.ids = o.ids[:o.start[nnodes]]
	next := make([]int, nnodes)
	copy(next, o.start[:nnodes])
	for k, h := range hashes {
		if h >= 0 {
			o.ids[next[h]] = k
			next[h]++
		}
	}
}

// node returns the interaction ids of node n
func (o *binning) node(n int) []int {
	return o.ids[o.start[n]:o.start[n+1]]
}
