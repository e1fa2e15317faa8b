// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wide

import (
	"math/big"

	"github.com/holiman/uint256"
)

// An Int256 is a signed 256-bit integer. The zero value is 0.
//
// It is the widest signed type, so overflow of [Int256.MulOverflow] cannot be
// recovered by widening.
type Int256 struct {
	v uint256.Int
}

// Int256From64 returns `v` as an [Int256].
func Int256From64(v int64) Int256 {
	return Int256{fromInt64(v)}
}

// Int256FromBig returns `b` as an [Int256] and true, or the zero value and
// false if `b` is out of range.
func Int256FromBig(b *big.Int) (Int256, bool) {
	v, ok := fromBigSigned(b, bits256)
	return Int256{v}, ok
}

// MaxInt256 returns 2^255-1.
func MaxInt256() Int256 { return Int256{signedMax(bits256)} }

// MinInt256 returns -2^255.
func MinInt256() Int256 { return Int256{signedMin(bits256)} }

// Big returns `x` as a new [big.Int].
func (x Int256) Big() *big.Int { return toBigSigned(&x.v) }

// String returns the base-10 representation of `x`.
func (x Int256) String() string { return x.Big().String() }

// Sign returns -1, 0, or +1 depending on the sign of `x`.
func (x Int256) Sign() int { return x.v.Sign() }

// IsZero reports whether `x` is zero.
func (x Int256) IsZero() bool { return x.v.IsZero() }

// Equal reports whether `x == y`.
func (x Int256) Equal(y Int256) bool { return x.v.Eq(&y.v) }

// Cmp returns -1, 0, or +1 depending on whether `x` is less than, equal to,
// or greater than `y`.
func (x Int256) Cmp(y Int256) int { return cmpSigned(&x.v, &y.v) }

// Int128 narrows `x`, returning false if it doesn't fit.
func (x Int256) Int128() (Int128, bool) {
	if !fitsSigned(&x.v, bits128) {
		return Int128{}, false
	}
	return Int128(x), true
}

// Int64 returns `x` as an int64 and true, or zero and false if `x` doesn't fit.
func (x Int256) Int64() (int64, bool) { return toInt64(&x.v) }

// MulOverflow returns `x*y` and whether it overflowed 256 bits. The product is
// undefined on overflow.
func (x Int256) MulOverflow(y Int256) (Int256, bool) {
	p, overflow := mulSigned(&x.v, &y.v, bits256)
	return Int256{p}, overflow
}

// QuoRem returns the quotient and remainder of `x/y`, truncated towards zero.
// The only possible overflow is [MinInt256] divided by -1. QuoRem panics if `y`
// is zero.
func (x Int256) QuoRem(y Int256) (quo, rem Int256, overflow bool) {
	if y.IsZero() {
		panic("wide: Int256 division by zero")
	}
	q, r, overflow := quoRemSigned(&x.v, &y.v, bits256)
	return Int256{q}, Int256{r}, overflow
}

// AddOverflow returns `x+y` and whether it overflowed.
func (x Int256) AddOverflow(y Int256) (Int256, bool) {
	s, overflow := addSigned(&x.v, &y.v, bits256)
	return Int256{s}, overflow
}

// SubOverflow returns `x-y` and whether it overflowed.
func (x Int256) SubOverflow(y Int256) (Int256, bool) {
	d, overflow := subSigned(&x.v, &y.v, bits256)
	return Int256{d}, overflow
}
