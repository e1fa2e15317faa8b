// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wide

import (
	"math/big"

	"github.com/holiman/uint256"
)

// A Uint256 is an unsigned 256-bit integer. The zero value is 0.
//
// Unlike a raw [uint256.Int], which wraps modulo 2^256, every Uint256
// operation reports overflow.
type Uint256 struct {
	v uint256.Int
}

// Uint256From64 returns `v` as a [Uint256].
func Uint256From64(v uint64) Uint256 {
	var u Uint256
	u.v.SetUint64(v)
	return u
}

// Uint256FromBig returns `b` as a [Uint256] and true, or the zero value and
// false if `b` is negative or too large.
func Uint256FromBig(b *big.Int) (Uint256, bool) {
	v, ok := fromBigUnsigned(b, bits256)
	return Uint256{v}, ok
}

// Uint256FromInt copies `u`.
func Uint256FromInt(u *uint256.Int) Uint256 {
	return Uint256{*u}
}

// MaxUint256 returns 2^256-1.
func MaxUint256() Uint256 { return Uint256{unsignedMax(bits256)} }

// Int returns `x` as a new [uint256.Int], for compatibility with code already
// using the raw type.
func (x Uint256) Int() *uint256.Int { return x.v.Clone() }

// Big returns `x` as a new [big.Int].
func (x Uint256) Big() *big.Int { return x.v.ToBig() }

// String returns the base-10 representation of `x`.
func (x Uint256) String() string { return x.Big().String() }

// Sign returns 0 if `x` is zero, otherwise +1.
func (x Uint256) Sign() int {
	if x.v.IsZero() {
		return 0
	}
	return 1
}

// IsZero reports whether `x` is zero.
func (x Uint256) IsZero() bool { return x.v.IsZero() }

// Equal reports whether `x == y`.
func (x Uint256) Equal(y Uint256) bool { return x.v.Eq(&y.v) }

// Cmp returns -1, 0, or +1 depending on whether `x` is less than, equal to,
// or greater than `y`.
func (x Uint256) Cmp(y Uint256) int { return x.v.Cmp(&y.v) }

// Uint128 narrows `x`, returning false if it doesn't fit.
func (x Uint256) Uint128() (Uint128, bool) {
	if !fitsUnsigned(&x.v, bits128) {
		return Uint128{}, false
	}
	return Uint128(x), true
}

// Uint64 returns `x` as a uint64 and true, or zero and false if `x` doesn't
// fit.
func (x Uint256) Uint64() (uint64, bool) {
	if !x.v.IsUint64() {
		return 0, false
	}
	return x.v.Uint64(), true
}

// MulOverflow returns `x*y` and whether it overflowed 256 bits. The product is
// undefined on overflow.
func (x Uint256) MulOverflow(y Uint256) (Uint256, bool) {
	p, overflow := mulUnsigned(&x.v, &y.v, bits256)
	return Uint256{p}, overflow
}

// QuoRem returns the quotient and remainder of `x/y`. The last return value is
// always false. QuoRem panics if `y` is zero.
func (x Uint256) QuoRem(y Uint256) (quo, rem Uint256, overflow bool) {
	if y.IsZero() {
		panic("wide: Uint256 division by zero")
	}
	q, r := quoRemUnsigned(&x.v, &y.v)
	return Uint256{q}, Uint256{r}, false
}

// AddOverflow returns `x+y` and whether it overflowed.
func (x Uint256) AddOverflow(y Uint256) (Uint256, bool) {
	s, overflow := addUnsigned(&x.v, &y.v, bits256)
	return Uint256{s}, overflow
}

// SubOverflow returns `x-y` and whether it underflowed.
func (x Uint256) SubOverflow(y Uint256) (Uint256, bool) {
	d, underflow := subUnsigned(&x.v, &y.v)
	return Uint256{d}, underflow
}
