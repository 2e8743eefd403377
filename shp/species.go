// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// node species along one axis
const (
	MIDDLE = iota // interior node
	START         // second node from the lower boundary (boundary padding, start)
	END           // second node from the upper boundary (boundary padding, end)
	EDGE          // node on the boundary
)

// Species classifies node i of an axis with n nodes
//  Nodes outside [0, n) are classified as MIDDLE; their interactions are discarded anyway
func Species(i, n int) int {
	switch {
	case i < 0 || i >= n:
		return MIDDLE
	case i == 0 || i == n-1:
		return EDGE
	case i == 1:
		return START
	case i == n-2:
		return END
	}
	return MIDDLE
}
