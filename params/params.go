// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package params declares fixed-point parameters shared by callers.
package params

import "fmt"

// Stroop is the number of smallest indivisible units in a single whole unit,
// i.e. the scale of a 7-decimal fixed-point amount. An amount `a` scaled by a
// rate `r`, both denominated in stroops, is `a*r/Stroop`.
const Stroop = 1_0000000

// A Width is a number of bits in an integer type.
type Width uint

// Supported widths.
const (
	W64  Width = 64
	W128 Width = 128
	W256 Width = 256
)

// Next returns the width to which a computation at `w` escalates, and false if
// `w` is the widest.
func (w Width) Next() (Width, bool) {
	switch w {
	case W64:
		return W128, true
	case W128:
		return W256, true
	default:
		return 0, false
	}
}

func (w Width) String() string {
	return fmt.Sprintf("%d-bit", uint(w))
}

// Chain returns the escalation chain starting at `w`, including `w` itself.
func Chain(w Width) []Width {
	chain := []Width{w}
	for next, ok := w.Next(); ok; next, ok = next.Next() {
		chain = append(chain, next)
	}
	return chain
}
