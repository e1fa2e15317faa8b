// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixedpoint

import "fmt"

// A Rounding mode determines the direction in which an inexact quotient is
// rounded.
type Rounding uint8

const (
	// Floor rounds towards negative infinity.
	Floor Rounding = iota
	// Ceil rounds towards positive infinity.
	Ceil
)

func (r Rounding) String() string {
	switch r {
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	default:
		return fmt.Sprintf("Rounding(%d)", uint8(r))
	}
}

// arith is the set of primitive operations, at a single fixed width, from which
// rounded mul-div is built. Every operation reports overflow instead of
// wrapping.
type arith[T any] struct {
	sign        func(T) int
	mulOverflow func(x, y T) (T, bool)
	// quoRem truncates towards zero; its divisor is never zero.
	quoRem func(x, y T) (q, r T, overflow bool)
	succ   func(T) (T, bool)
	pred   func(T) (T, bool)
}

// mulDiv returns `x*y/z`, rounded as specified, without any escalation to a
// wider width.
func (a *arith[T]) mulDiv(x, y, z T, r Rounding) (T, error) {
	var zero T
	if a.sign(z) == 0 {
		return zero, ErrDivisionByZero
	}
	p, overflow := a.mulOverflow(x, y)
	if overflow {
		return zero, ErrIntermediateOverflow
	}
	return a.divRound(p, z, r)
}

// divRound returns `p/z`, rounded as specified. Truncating division already
// floors a non-negative quotient and ceils a negative one, so only the
// opposite direction needs a ±1 correction, and only if the division is
// inexact.
func (a *arith[T]) divRound(p, z T, r Rounding) (T, error) {
	var zero T
	q, rem, overflow := a.quoRem(p, z)
	if overflow {
		return zero, ErrResultOverflow
	}
	if a.sign(rem) == 0 {
		return q, nil
	}

	// A non-zero remainder implies a non-zero product, so the quotient's sign
	// is determined solely by whether the product and divisor signs differ.
	// A negative product over a negative divisor is therefore positive.
	negative := (a.sign(p) < 0) != (a.sign(z) < 0)
	switch {
	case r == Floor && negative:
		q, overflow = a.pred(q)
	case r == Ceil && !negative:
		q, overflow = a.succ(q)
	}
	if overflow {
		return zero, ErrResultOverflow
	}
	return q, nil
}
