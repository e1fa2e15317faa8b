// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package cmputils

import (
	"math/big"

	"github.com/google/go-cmp/cmp"
	"github.com/holiman/uint256"
)

// ComparerWithNilCheck returns a [cmp.Comparer] for pointers, treating two nil
// pointers as equal and a nil pointer as unequal to any non-nil one. `fn` is
// only called when both pointers are non-nil.
func ComparerWithNilCheck[T any](fn func(a, b *T) bool) cmp.Option {
	return cmp.Comparer(func(a, b *T) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		return fn(a, b)
	})
}

// BigInts returns a [cmp.Comparer] for [big.Int] pointers. A nil pointer is not
// equal to zero.
func BigInts() cmp.Option {
	return ComparerWithNilCheck(func(a, b *big.Int) bool {
		return a.Cmp(b) == 0
	})
}

// Uint256s returns a [cmp.Comparer] for [uint256.Int] pointers. A nil pointer
// is not equal to zero.
func Uint256s() cmp.Option {
	return ComparerWithNilCheck(func(a, b *uint256.Int) bool {
		return a.Eq(b)
	})
}
