// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wide

import (
	"math/big"

	"github.com/holiman/uint256"
)

// An Int128 is a signed 128-bit integer. The zero value is 0.
type Int128 struct {
	// invariant: sign-extended to 256 bits and within [-2^127, 2^127)
	v uint256.Int
}

// Int128From64 returns `v` as an [Int128].
func Int128From64(v int64) Int128 {
	return Int128{fromInt64(v)}
}

// Int128FromBig returns `b` as an [Int128] and true, or the zero value and
// false if `b` is out of range.
func Int128FromBig(b *big.Int) (Int128, bool) {
	v, ok := fromBigSigned(b, bits128)
	return Int128{v}, ok
}

// MaxInt128 returns 2^127-1.
func MaxInt128() Int128 { return Int128{signedMax(bits128)} }

// MinInt128 returns -2^127.
func MinInt128() Int128 { return Int128{signedMin(bits128)} }

// Big returns `x` as a new [big.Int].
func (x Int128) Big() *big.Int { return toBigSigned(&x.v) }

// String returns the base-10 representation of `x`.
func (x Int128) String() string { return x.Big().String() }

// Sign returns -1, 0, or +1 depending on the sign of `x`.
func (x Int128) Sign() int { return x.v.Sign() }

// IsZero reports whether `x` is zero.
func (x Int128) IsZero() bool { return x.v.IsZero() }

// Equal reports whether `x == y`.
func (x Int128) Equal(y Int128) bool { return x.v.Eq(&y.v) }

// Cmp returns -1, 0, or +1 depending on whether `x` is less than, equal to,
// or greater than `y`.
func (x Int128) Cmp(y Int128) int { return cmpSigned(&x.v, &y.v) }

// Int64 returns `x` as an int64 and true, or zero and false if `x` doesn't fit.
func (x Int128) Int64() (int64, bool) { return toInt64(&x.v) }

// Int256 losslessly widens `x`.
func (x Int128) Int256() Int256 { return Int256(x) }

// MulOverflow returns `x*y` and whether it overflowed 128 bits. The product is
// undefined on overflow.
func (x Int128) MulOverflow(y Int128) (Int128, bool) {
	p, overflow := mulSigned(&x.v, &y.v, bits128)
	return Int128{p}, overflow
}

// QuoRem returns the quotient and remainder of `x/y`, truncated towards zero.
// The only possible overflow is [MinInt128] divided by -1. QuoRem panics if `y`
// is zero.
func (x Int128) QuoRem(y Int128) (quo, rem Int128, overflow bool) {
	if y.IsZero() {
		panic("wide: Int128 division by zero")
	}
	q, r, overflow := quoRemSigned(&x.v, &y.v, bits128)
	return Int128{q}, Int128{r}, overflow
}

// AddOverflow returns `x+y` and whether it overflowed.
func (x Int128) AddOverflow(y Int128) (Int128, bool) {
	s, overflow := addSigned(&x.v, &y.v, bits128)
	return Int128{s}, overflow
}

// SubOverflow returns `x-y` and whether it overflowed.
func (x Int128) SubOverflow(y Int128) (Int128, bool) {
	d, overflow := subSigned(&x.v, &y.v, bits128)
	return Int128{d}, overflow
}
