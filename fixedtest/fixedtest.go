// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fixedtest provides testing helpers for fixed-point arithmetic,
// including an exact [big.Int] oracle against which rounding can be checked.
package fixedtest

import (
	"math/big"
	mrand "math/rand"
	"math/rand/v2"
	"testing"

	"go.uber.org/goleak"
)

// NoLeak calls [goleak.VerifyTestMain] with [goleak.IgnoreCurrent]. It is
// intended for packages that exercise concurrent callers.
func NoLeak(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}

// MulDivFloor returns `floor(x*y/z)`, computed exactly. It panics if `z` is
// zero.
func MulDivFloor(x, y, z *big.Int) *big.Int {
	num := new(big.Int).Mul(x, y)
	den := new(big.Int).Set(z)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	// Euclidean division with a positive divisor is flooring division.
	return num.Div(num, den)
}

// MulDivCeil returns `ceil(x*y/z)`, computed exactly. It panics if `z` is zero.
func MulDivCeil(x, y, z *big.Int) *big.Int {
	negX := new(big.Int).Neg(x)
	f := MulDivFloor(negX, y, z)
	return f.Neg(f)
}

// Pow10 returns 10^n.
func Pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}

// MustBig parses a base-10 integer, panicking on failure.
func MustBig(s string) *big.Int {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid base-10 integer: " + s)
	}
	return b
}

// A Rand generates operands with magnitudes spread evenly across bit lengths,
// so that small values, values near type limits, and everything in between are
// equally likely. It is not safe for concurrent use.
type Rand struct {
	rng *rand.Rand
	big *mrand.Rand
}

// NewRand returns a deterministic [Rand].
func NewRand(seed uint64) *Rand {
	rng := rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // Reproducibility is valuable for tests
	return &Rand{
		rng: rng,
		big: mrand.New(source{rng}), //nolint:gosec // As above
	}
}

// source adapts a [rand.Rand] to the legacy interface required by
// [big.Int.Rand].
type source struct{ *rand.Rand }

func (s source) Int63() int64 { return s.Rand.Int64() }
func (source) Seed(int64)      {}

// Signed returns a value in [-2^(bits-1), 2^(bits-1)). The minimum, which has
// no positive counterpart, is returned with probability 1/64.
func (r *Rand) Signed(bits uint) *big.Int {
	if r.rng.IntN(64) == 0 {
		lim := new(big.Int).Lsh(big.NewInt(1), bits-1)
		return lim.Neg(lim)
	}
	b := r.magnitude(bits - 1)
	if r.rng.IntN(2) == 0 {
		b.Neg(b)
	}
	return b
}

// Unsigned returns a value in [0, 2^bits).
func (r *Rand) Unsigned(bits uint) *big.Int {
	return r.magnitude(bits)
}

// NonZero repeatedly calls `fn` until it returns a non-zero value.
func (r *Rand) NonZero(fn func(uint) *big.Int, bits uint) *big.Int {
	for {
		if b := fn(bits); b.Sign() != 0 {
			return b
		}
	}
}

// Uint64 returns a uniformly random uint64.
func (r *Rand) Uint64() uint64 {
	return r.rng.Uint64()
}

// magnitude returns a value in [0, 2^maxBits) with a uniformly random bit
// length.
func (r *Rand) magnitude(maxBits uint) *big.Int {
	n := r.rng.UintN(maxBits + 1)
	lim := new(big.Int).Lsh(big.NewInt(1), n)
	return new(big.Int).Rand(r.big, lim)
}
