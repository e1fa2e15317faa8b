// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wide provides 128- and 256-bit signed and unsigned integers as
// immutable value types, backed by [uint256.Int].
//
// All four types share a 256-bit two's-complement representation, with signed
// 128-bit values stored sign-extended. Arithmetic is performed at 256 bits and
// then checked against the type's width, so every operation either returns an
// exact result or reports overflow; nothing silently wraps.
package wide

import (
	"math/big"

	"github.com/holiman/uint256"
)

const (
	bits128 = 128
	bits256 = 256
)

// signedLimit returns 2^(bits-1), the magnitude of the minimum signed value.
func signedLimit(bits uint) *uint256.Int {
	return new(uint256.Int).Lsh(uint256.NewInt(1), bits-1)
}

// signedMin returns -2^(bits-1) in two's complement.
func signedMin(bits uint) uint256.Int {
	var m uint256.Int
	m.Neg(signedLimit(bits))
	return m
}

// signedMax returns 2^(bits-1)-1.
func signedMax(bits uint) uint256.Int {
	var m uint256.Int
	m.SubUint64(signedLimit(bits), 1)
	return m
}

// unsignedMax returns 2^bits-1.
func unsignedMax(bits uint) uint256.Int {
	var m uint256.Int
	m.SetAllOne()
	m.Rsh(&m, bits256-bits)
	return m
}

func fitsSigned(v *uint256.Int, bits uint) bool {
	if v.Sign() >= 0 {
		return v.BitLen() < int(bits)
	}
	var abs uint256.Int
	abs.Abs(v)
	return abs.BitLen() < int(bits) || abs.Eq(signedLimit(bits))
}

func fitsUnsigned(v *uint256.Int, bits uint) bool {
	return v.BitLen() <= int(bits)
}

func fromInt64(v int64) uint256.Int {
	var u uint256.Int
	if v >= 0 {
		u.SetUint64(uint64(v))
		return u
	}
	u.SetUint64(uint64(-v)) // -MinInt64 wraps to itself, which is the correct magnitude
	u.Neg(&u)
	return u
}

func toInt64(v *uint256.Int) (int64, bool) {
	if !fitsSigned(v, 64) {
		return 0, false
	}
	return int64(v.Uint64()), true //nolint:gosec // Range checked above; two's complement truncation
}

func fromBigSigned(b *big.Int, bits uint) (uint256.Int, bool) {
	var u uint256.Int
	abs := new(big.Int).Abs(b)
	lim := int(bits) - 1
	switch n := abs.BitLen(); {
	case n <= lim:
	case b.Sign() < 0 && n == lim+1 && abs.TrailingZeroBits() == uint(lim):
	default:
		return u, false
	}
	u.SetFromBig(abs)
	if b.Sign() < 0 {
		u.Neg(&u)
	}
	return u, true
}

func fromBigUnsigned(b *big.Int, bits uint) (uint256.Int, bool) {
	var u uint256.Int
	if b.Sign() < 0 || b.BitLen() > int(bits) {
		return u, false
	}
	u.SetFromBig(b)
	return u, true
}

func toBigSigned(v *uint256.Int) *big.Int {
	if v.Sign() >= 0 {
		return v.ToBig()
	}
	var abs uint256.Int
	abs.Abs(v)
	return new(big.Int).Neg(abs.ToBig())
}

func cmpSigned(x, y *uint256.Int) int {
	switch {
	case x.Slt(y):
		return -1
	case x.Sgt(y):
		return 1
	default:
		return 0
	}
}

// mulSigned multiplies magnitudes so that overflow beyond `bits` is detected
// without relying on wrapped two's-complement products.
func mulSigned(x, y *uint256.Int, bits uint) (uint256.Int, bool) {
	var ax, ay, p uint256.Int
	ax.Abs(x)
	ay.Abs(y)
	if _, overflow := p.MulOverflow(&ax, &ay); overflow {
		return p, true
	}
	lim := signedLimit(bits)
	if x.Sign()*y.Sign() < 0 {
		if p.Gt(lim) {
			return p, true
		}
		p.Neg(&p)
		return p, false
	}
	return p, !p.Lt(lim)
}

func mulUnsigned(x, y *uint256.Int, bits uint) (uint256.Int, bool) {
	var p uint256.Int
	if _, overflow := p.MulOverflow(x, y); overflow {
		return p, true
	}
	return p, !fitsUnsigned(&p, bits)
}

// quoRemSigned truncates towards zero. The divisor MUST be non-zero.
func quoRemSigned(x, y *uint256.Int, bits uint) (q, r uint256.Int, overflow bool) {
	if m := signedMin(bits); x.Eq(&m) && y.Eq(new(uint256.Int).SetAllOne()) {
		return q, r, true
	}
	q.SDiv(x, y)
	r.SMod(x, y)
	return q, r, false
}

// quoRemUnsigned truncates towards zero. The divisor MUST be non-zero.
func quoRemUnsigned(x, y *uint256.Int) (q, r uint256.Int) {
	q.Div(x, y)
	r.Mod(x, y)
	return q, r
}

func addSigned(x, y *uint256.Int, bits uint) (uint256.Int, bool) {
	var s uint256.Int
	s.Add(x, y)
	xNeg, yNeg, sNeg := x.Sign() < 0, y.Sign() < 0, s.Sign() < 0
	if xNeg == yNeg && sNeg != xNeg {
		return s, true
	}
	return s, !fitsSigned(&s, bits)
}

func subSigned(x, y *uint256.Int, bits uint) (uint256.Int, bool) {
	var d uint256.Int
	d.Sub(x, y)
	xNeg, yNeg, dNeg := x.Sign() < 0, y.Sign() < 0, d.Sign() < 0
	if xNeg != yNeg && dNeg != xNeg {
		return d, true
	}
	return d, !fitsSigned(&d, bits)
}

func addUnsigned(x, y *uint256.Int, bits uint) (uint256.Int, bool) {
	var s uint256.Int
	if _, overflow := s.AddOverflow(x, y); overflow {
		return s, true
	}
	return s, !fitsUnsigned(&s, bits)
}

func subUnsigned(x, y *uint256.Int) (uint256.Int, bool) {
	var d uint256.Int
	_, underflow := d.SubOverflow(x, y)
	return d, underflow
}
