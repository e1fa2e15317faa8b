// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intmath provides special-case integer arithmetic.
package intmath

import (
	"errors"
	"math"
	"math/bits"

	safemath "github.com/ava-labs/avalanchego/utils/math"
	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned if a return value would have overflowed its type.
var ErrOverflow = errors.New("overflow")

// MulDiv returns the quotient and remainder of `(a*b)/den` without overflow in
// the event that `a*b>=2^64`. However, if the quotient were to overflow then
// [ErrOverflow] is returned. MulDiv panics if `den` is zero.
func MulDiv[T ~uint64](a, b, den T) (quo, rem T, err error) {
	if den == 0 {
		panic("integer divide by zero")
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if uint64(den) <= hi {
		return 0, 0, ErrOverflow
	}
	q, r := bits.Div64(hi, lo, uint64(den))
	return T(q), T(r), nil
}

// MulDivCeil is equivalent to [MulDiv] but returns `ceil((a*b)/den)` alongside
// the amount that was added to `a*b` to make it a multiple of `den`, i.e. zero
// if and only if the remainder of [MulDiv] is zero.
func MulDivCeil[T ~uint64](a, b, den T) (quo, extra T, err error) {
	quo, rem, err := MulDiv(a, b, den)
	if err != nil || rem == 0 {
		return quo, 0, err
	}
	if quo == math.MaxUint64 {
		return 0, 0, ErrOverflow
	}
	return quo + 1, den - rem, nil
}

// An Integer is any 64-bit integer type.
type Integer interface {
	constraints.Integer
	~int64 | ~uint64
}

// MulOverflow returns `a*b` and whether it overflowed. On overflow the returned
// product is undefined.
func MulOverflow[T Integer](a, b T) (T, bool) {
	if isUnsigned(a) {
		p, err := safemath.Mul(uint64(a), uint64(b))
		return T(p), err != nil
	}
	if a == 0 || b == 0 {
		return 0, false
	}
	p := int64(a) * int64(b)
	if minusOne := ^T(0); (a == minusOne && int64(b) == math.MinInt64) || (b == minusOne && int64(a) == math.MinInt64) {
		return 0, true
	}
	return T(p), p/int64(b) != int64(a)
}

// QuoRem returns the truncated quotient and remainder of `a/b`, as with Go's
// `/` and `%` operators, reporting overflow of the quotient instead of silently
// wrapping when `a` is the minimum signed value and `b` is -1. QuoRem panics if
// `b` is zero.
func QuoRem[T Integer](a, b T) (quo, rem T, overflow bool) {
	if !isUnsigned(a) && int64(a) == math.MinInt64 && b == ^T(0) {
		return 0, 0, true
	}
	return a / b, a % b, false
}

// AddOverflow returns `a+b` and whether it overflowed.
func AddOverflow[T Integer](a, b T) (T, bool) {
	s := a + b
	if isUnsigned(a) {
		return s, s < a
	}
	return s, (b > 0 && s < a) || (b < 0 && s > a)
}

// SubOverflow returns `a-b` and whether it overflowed.
func SubOverflow[T Integer](a, b T) (T, bool) {
	d := a - b
	if isUnsigned(a) {
		return d, d > a
	}
	return d, (b > 0 && d > a) || (b < 0 && d < a)
}

// Sign returns -1, 0, or +1 depending on the sign of `v`.
func Sign[T Integer](v T) int {
	switch {
	case v > 0:
		return 1
	case v == 0:
		return 0
	default:
		return -1
	}
}

// isUnsigned reports whether T is unsigned; the argument is only used for its
// type.
func isUnsigned[T Integer](T) bool {
	var zero T
	return zero-1 > zero
}
