// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixedpoint

import (
	"errors"

	"github.com/ava-labs/fixedpoint/intmath"
	"github.com/ava-labs/fixedpoint/params"
	"github.com/ava-labs/fixedpoint/wide"
)

// engine computes rounded mul-div for a single type, falling back to the next
// wider type if the intermediate product overflows.
type engine[T Integer] struct {
	arith[T]
	// escalate recomputes at the next wider width and narrows the result back
	// to T. It is nil for the widest types.
	escalate func(x, y, z T, r Rounding) (T, error)
	// escalateRecoverable allows the [Recoverable] contract to escalate. The
	// [Host] contract always escalates if possible.
	escalateRecoverable bool
}

func (e *engine[T]) compute(x, y, z T, r Rounding, host bool) (T, error) {
	q, err := e.mulDiv(x, y, z, r)
	if !errors.Is(err, ErrIntermediateOverflow) || e.escalate == nil || !(host || e.escalateRecoverable) {
		return q, err
	}
	return e.escalate(x, y, z, r)
}

// Widths returns the widths at which a computation on T may be performed, in
// the order in which they are attempted, under either the [Host] or the
// [Recoverable] contract.
func Widths[T Integer](host bool) []params.Width {
	w, _ := WidthOf[T]()
	e := engineFor[T]()
	if e.escalate == nil || !(host || e.escalateRecoverable) {
		return []params.Width{w}
	}
	next, _ := w.Next()
	return []params.Width{w, next}
}

// escalation returns an [engine.escalate] function that losslessly widens all
// operands from N to W, computes at W without further escalation, and then
// narrows the result.
func escalation[N, W Integer](to *engine[W], widen func(N) W, narrow func(W) (N, bool)) func(x, y, z N, r Rounding) (N, error) {
	return func(x, y, z N, r Rounding) (N, error) {
		var zero N
		q, err := to.mulDiv(widen(x), widen(y), widen(z), r)
		if err != nil {
			return zero, err
		}
		n, ok := narrow(q)
		if !ok {
			return zero, ErrResultOverflow
		}
		return n, nil
	}
}

// mulDivUint64Wide is the uint64 escalation, computing the product at 128 bits
// with [intmath.MulDiv]. The divisor MUST be non-zero.
func mulDivUint64Wide(x, y, z uint64, r Rounding) (uint64, error) {
	var (
		q   uint64
		err error
	)
	switch r {
	case Floor:
		q, _, err = intmath.MulDiv(x, y, z)
	default:
		q, _, err = intmath.MulDivCeil(x, y, z)
	}
	if errors.Is(err, intmath.ErrOverflow) {
		return 0, ErrResultOverflow
	}
	return q, err
}

func nativeArith[T intmath.Integer]() arith[T] {
	return arith[T]{
		sign:        intmath.Sign[T],
		mulOverflow: intmath.MulOverflow[T],
		quoRem:      intmath.QuoRem[T],
		succ:        func(v T) (T, bool) { return intmath.AddOverflow(v, 1) },
		pred:        func(v T) (T, bool) { return intmath.SubOverflow(v, 1) },
	}
}

// wideInt is the method set shared by all [wide] types.
type wideInt[T any] interface {
	Sign() int
	MulOverflow(T) (T, bool)
	QuoRem(T) (T, T, bool)
	AddOverflow(T) (T, bool)
	SubOverflow(T) (T, bool)
}

func wideArith[T wideInt[T]](one T) arith[T] {
	return arith[T]{
		sign:        func(v T) int { return v.Sign() },
		mulOverflow: func(x, y T) (T, bool) { return x.MulOverflow(y) },
		quoRem:      func(x, y T) (T, T, bool) { return x.QuoRem(y) },
		succ:        func(v T) (T, bool) { return v.AddOverflow(one) },
		pred:        func(v T) (T, bool) { return v.SubOverflow(one) },
	}
}

var (
	int64Engine = &engine[int64]{
		arith:               nativeArith[int64](),
		escalate:            escalation(int128Engine, wide.Int128From64, wide.Int128.Int64),
		escalateRecoverable: true,
	}
	int128Engine = &engine[wide.Int128]{
		arith:    wideArith(wide.Int128From64(1)),
		escalate: escalation(int256Engine, wide.Int128.Int256, wide.Int256.Int128),
	}
	int256Engine = &engine[wide.Int256]{
		arith: wideArith(wide.Int256From64(1)),
	}

	uint64Engine = &engine[uint64]{
		arith:               nativeArith[uint64](),
		escalate:            mulDivUint64Wide,
		escalateRecoverable: true,
	}
	uint128Engine = &engine[wide.Uint128]{
		arith:    wideArith(wide.Uint128From64(1)),
		escalate: escalation(uint256Engine, wide.Uint128.Uint256, wide.Uint256.Uint128),
	}
	uint256Engine = &engine[wide.Uint256]{
		arith: wideArith(wide.Uint256From64(1)),
	}
)

func engineFor[T Integer]() *engine[T] {
	var e any
	switch any(*new(T)).(type) {
	case int64:
		e = int64Engine
	case wide.Int128:
		e = int128Engine
	case wide.Int256:
		e = int256Engine
	case uint64:
		e = uint64Engine
	case wide.Uint128:
		e = uint128Engine
	case wide.Uint256:
		e = uint256Engine
	}
	return e.(*engine[T])
}
