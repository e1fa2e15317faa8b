// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wide

import (
	"math/big"

	"github.com/holiman/uint256"
)

// A Uint128 is an unsigned 128-bit integer. The zero value is 0.
type Uint128 struct {
	// invariant: < 2^128
	v uint256.Int
}

// Uint128From64 returns `v` as a [Uint128].
func Uint128From64(v uint64) Uint128 {
	var u Uint128
	u.v.SetUint64(v)
	return u
}

// Uint128FromBig returns `b` as a [Uint128] and true, or the zero value and
// false if `b` is negative or too large.
func Uint128FromBig(b *big.Int) (Uint128, bool) {
	v, ok := fromBigUnsigned(b, bits128)
	return Uint128{v}, ok
}

// MaxUint128 returns 2^128-1.
func MaxUint128() Uint128 { return Uint128{unsignedMax(bits128)} }

// Big returns `x` as a new [big.Int].
func (x Uint128) Big() *big.Int { return x.v.ToBig() }

// String returns the base-10 representation of `x`.
func (x Uint128) String() string { return x.Big().String() }

// Sign returns 0 if `x` is zero, otherwise +1.
func (x Uint128) Sign() int { return x.v.Sign() }

// IsZero reports whether `x` is zero.
func (x Uint128) IsZero() bool { return x.v.IsZero() }

// Equal reports whether `x == y`.
func (x Uint128) Equal(y Uint128) bool { return x.v.Eq(&y.v) }

// Cmp returns -1, 0, or +1 depending on whether `x` is less than, equal to,
// or greater than `y`.
func (x Uint128) Cmp(y Uint128) int { return x.v.Cmp(&y.v) }

// Uint64 returns `x` as a uint64 and true, or zero and false if `x` doesn't
// fit.
func (x Uint128) Uint64() (uint64, bool) {
	if !x.v.IsUint64() {
		return 0, false
	}
	return x.v.Uint64(), true
}

// Uint256 losslessly widens `x`.
func (x Uint128) Uint256() Uint256 { return Uint256(x) }

// MulOverflow returns `x*y` and whether it overflowed 128 bits. The product is
// undefined on overflow.
func (x Uint128) MulOverflow(y Uint128) (Uint128, bool) {
	p, overflow := mulUnsigned(&x.v, &y.v, bits128)
	return Uint128{p}, overflow
}

// QuoRem returns the quotient and remainder of `x/y`. Unsigned division can't
// overflow so the last return value is always false; it exists for symmetry
// with [Int128.QuoRem]. QuoRem panics if `y` is zero.
func (x Uint128) QuoRem(y Uint128) (quo, rem Uint128, overflow bool) {
	if y.IsZero() {
		panic("wide: Uint128 division by zero")
	}
	q, r := quoRemUnsigned(&x.v, &y.v)
	return Uint128{q}, Uint128{r}, false
}

// AddOverflow returns `x+y` and whether it overflowed.
func (x Uint128) AddOverflow(y Uint128) (Uint128, bool) {
	s, overflow := addUnsigned(&x.v, &y.v, bits128)
	return Uint128{s}, overflow
}

// SubOverflow returns `x-y` and whether it underflowed.
func (x Uint128) SubOverflow(y Uint128) (Uint128, bool) {
	d, underflow := subUnsigned(&x.v, &y.v)
	return Uint128{d}, underflow
}
