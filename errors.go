// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixedpoint

import "errors"

// Errors returned by the [Recoverable] contract, and wrapped by the values
// with which the [Host] contract panics. Callers SHOULD use [errors.Is].
var (
	// ErrDivisionByZero is returned when the divisor, i.e. the denominator of a
	// Mul* operation or `y` of a Div* operation, is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrIntermediateOverflow is returned when the product of the two
	// non-divisor operands does not fit in the width at which it is computed.
	ErrIntermediateOverflow = errors.New("intermediate product overflow")
	// ErrResultOverflow is returned when the rounded quotient does not fit in
	// the operands' width, typically after being computed at a wider one.
	ErrResultOverflow = errors.New("result overflow")
)
