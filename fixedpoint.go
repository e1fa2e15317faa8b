// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fixedpoint computes `floor(x*y/z)` and `ceil(x*y/z)` exactly, for
// signed and unsigned integers of 64, 128, and 256 bits, without losing
// precision to intermediate overflow and without silently wrapping.
//
// Two contracts are offered, differing only in how they fail. A [Recoverable]
// returns an error wrapping [ErrDivisionByZero], [ErrIntermediateOverflow], or
// [ErrResultOverflow]. A [Host] panics with such an error, mirroring execution
// environments in which arithmetic faults are not resumable, but first retries
// an overflowing intermediate product at the next wider width:
//
//	int64  → wide.Int128  → wide.Int256
//	uint64 → wide.Uint128 → wide.Uint256
//
// The 64-bit types escalate under both contracts. The 128-bit types escalate
// only under [Host]; [Recoverable] callers are expected to bound their inputs.
// The 256-bit types have nowhere to escalate to.
//
// All functions are pure and safe for concurrent use.
package fixedpoint

import (
	"fmt"

	"github.com/ava-labs/fixedpoint/wide"
)

// Integer is the set of supported operand types.
type Integer interface {
	int64 | uint64 | wide.Int128 | wide.Uint128 | wide.Int256 | wide.Uint256
}

// A Recoverable computes rounded fixed-point products and quotients, returning
// an error on failure. The returned value MUST NOT be used if the error is
// non-nil.
type Recoverable[T Integer] interface {
	// MulFloor returns floor(x * y / denominator).
	MulFloor(x, y, denominator T) (T, error)
	// MulCeil returns ceil(x * y / denominator).
	MulCeil(x, y, denominator T) (T, error)
	// DivFloor returns floor(x * denominator / y).
	DivFloor(x, y, denominator T) (T, error)
	// DivCeil returns ceil(x * denominator / y).
	DivCeil(x, y, denominator T) (T, error)
}

// A Host computes rounded fixed-point products and quotients, panicking if the
// divisor is zero, if the intermediate product overflows even after
// escalation, or if the result does not fit in T. The panic value is an error
// that can be inspected with [errors.Is].
type Host[T Integer] interface {
	// MulFloor returns floor(x * y / denominator).
	MulFloor(x, y, denominator T) T
	// MulCeil returns ceil(x * y / denominator).
	MulCeil(x, y, denominator T) T
	// DivFloor returns floor(x * denominator / y).
	DivFloor(x, y, denominator T) T
	// DivCeil returns ceil(x * denominator / y).
	DivCeil(x, y, denominator T) T
}

// NewRecoverable returns the [Recoverable] contract for T.
func NewRecoverable[T Integer]() Recoverable[T] {
	return recoverable[T]{engineFor[T]()}
}

// NewHost returns the [Host] contract for T.
func NewHost[T Integer]() Host[T] {
	return host[T]{engineFor[T]()}
}

type recoverable[T Integer] struct {
	e *engine[T]
}

var _ Recoverable[int64] = recoverable[int64]{}

func (c recoverable[T]) MulFloor(x, y, den T) (T, error) { return c.e.compute(x, y, den, Floor, false) }
func (c recoverable[T]) MulCeil(x, y, den T) (T, error)  { return c.e.compute(x, y, den, Ceil, false) }
func (c recoverable[T]) DivFloor(x, y, den T) (T, error) { return c.e.compute(x, den, y, Floor, false) }
func (c recoverable[T]) DivCeil(x, y, den T) (T, error)  { return c.e.compute(x, den, y, Ceil, false) }

type host[T Integer] struct {
	e *engine[T]
}

var _ Host[int64] = host[int64]{}

func (c host[T]) MulFloor(x, y, den T) T { return c.must("MulFloor", x, y, den, Floor, false) }
func (c host[T]) MulCeil(x, y, den T) T  { return c.must("MulCeil", x, y, den, Ceil, false) }
func (c host[T]) DivFloor(x, y, den T) T { return c.must("DivFloor", x, y, den, Floor, true) }
func (c host[T]) DivCeil(x, y, den T) T  { return c.must("DivCeil", x, y, den, Ceil, true) }

// must computes the operation, swapping the roles of `y` and `den` if `div` is
// true, and panics on error.
func (c host[T]) must(op string, x, y, den T, r Rounding, div bool) T {
	mul, by := y, den
	if div {
		mul, by = den, y
	}
	q, err := c.e.compute(x, mul, by, r, true)
	if err != nil {
		panic(fmt.Errorf("fixedpoint: %s[%T](%v, %v, %v): %w", op, x, x, y, den, err))
	}
	return q
}

// MulDiv returns `x*y/z` rounded as specified, under the [Recoverable]
// contract.
func MulDiv[T Integer](x, y, z T, r Rounding) (T, error) {
	return engineFor[T]().compute(x, y, z, r, false)
}

// MustMulDiv returns `x*y/z` rounded as specified, under the [Host] contract.
func MustMulDiv[T Integer](x, y, z T, r Rounding) T {
	return host[T]{engineFor[T]()}.must("MulDiv", x, y, z, r, false)
}

// MulFloor is equivalent to [Recoverable.MulFloor].
func MulFloor[T Integer](x, y, denominator T) (T, error) {
	return NewRecoverable[T]().MulFloor(x, y, denominator)
}

// MulCeil is equivalent to [Recoverable.MulCeil].
func MulCeil[T Integer](x, y, denominator T) (T, error) {
	return NewRecoverable[T]().MulCeil(x, y, denominator)
}

// DivFloor is equivalent to [Recoverable.DivFloor].
func DivFloor[T Integer](x, y, denominator T) (T, error) {
	return NewRecoverable[T]().DivFloor(x, y, denominator)
}

// DivCeil is equivalent to [Recoverable.DivCeil].
func DivCeil[T Integer](x, y, denominator T) (T, error) {
	return NewRecoverable[T]().DivCeil(x, y, denominator)
}

// MustMulFloor is equivalent to [Host.MulFloor].
func MustMulFloor[T Integer](x, y, denominator T) T {
	return NewHost[T]().MulFloor(x, y, denominator)
}

// MustMulCeil is equivalent to [Host.MulCeil].
func MustMulCeil[T Integer](x, y, denominator T) T {
	return NewHost[T]().MulCeil(x, y, denominator)
}

// MustDivFloor is equivalent to [Host.DivFloor].
func MustDivFloor[T Integer](x, y, denominator T) T {
	return NewHost[T]().DivFloor(x, y, denominator)
}

// MustDivCeil is equivalent to [Host.DivCeil].
func MustDivCeil[T Integer](x, y, denominator T) T {
	return NewHost[T]().DivCeil(x, y, denominator)
}
