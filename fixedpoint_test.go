// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixedpoint

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/fixedpoint/fixedtest"
	"github.com/ava-labs/fixedpoint/wide"
)

type op uint8

const (
	mulFloor op = iota
	mulCeil
	divFloor
	divCeil
)

func (o op) String() string {
	return [...]string{"MulFloor", "MulCeil", "DivFloor", "DivCeil"}[o]
}

type outcome struct {
	want string
	err  error
}

func value(want string) *outcome { return &outcome{want: want} }
func failure(err error) *outcome { return &outcome{err: err} }

type vector struct {
	name      string
	op        op
	x, y, den string
	want      *outcome
	// hostWant, if non-nil, overrides `want` for the [Host] contract.
	hostWant *outcome
}

func apply[T Integer](o op, c Recoverable[T], x, y, den T) (T, error) {
	switch o {
	case mulFloor:
		return c.MulFloor(x, y, den)
	case mulCeil:
		return c.MulCeil(x, y, den)
	case divFloor:
		return c.DivFloor(x, y, den)
	default:
		return c.DivCeil(x, y, den)
	}
}

func applyHost[T Integer](o op, c Host[T], x, y, den T) (got T, _ error) {
	err := catch(func() {
		switch o {
		case mulFloor:
			got = c.MulFloor(x, y, den)
		case mulCeil:
			got = c.MulCeil(x, y, den)
		case divFloor:
			got = c.DivFloor(x, y, den)
		default:
			got = c.DivCeil(x, y, den)
		}
	})
	return got, err
}

func runVectors[T Integer](t *testing.T, vectors []vector) {
	t.Helper()
	rec, host := NewRecoverable[T](), NewHost[T]()

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			x, y, den := parse[T](t, v.x), parse[T](t, v.y), parse[T](t, v.den)

			check := func(contract string, got T, err error, w *outcome) {
				t.Helper()
				var want *big.Int
				if w.err == nil {
					want = fixedtest.MustBig(w.want)
				}
				if err := compare(got, err, want, w.err); err != nil {
					t.Errorf("%s[%T].%v(%v, %v, %v) %v", contract, x, v.op, x, y, den, err)
				}
			}

			got, err := apply(v.op, rec, x, y, den)
			check("Recoverable", got, err, v.want)

			hw := v.hostWant
			if hw == nil {
				hw = v.want
			}
			got, err = applyHost(v.op, host, x, y, den)
			check("Host", got, err, hw)
		})
	}
}

const (
	maxInt64  = "9223372036854775807"
	minInt64  = "-9223372036854775808"
	maxUint64 = "18446744073709551615"

	maxInt128  = "170141183460469231731687303715884105727"
	minInt128  = "-170141183460469231731687303715884105728"
	maxUint128 = "340282366920938463463374607431768211455"

	maxInt256  = "57896044618658097711785492504343953926634992332820282019728792003956564819967"
	minInt256  = "-57896044618658097711785492504343953926634992332820282019728792003956564819968"
	maxUint256 = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

	e18 = "1000000000000000000"
	e27 = "1000000000000000000000000000"
	e39 = "1000000000000000000000000000000000000000"
)

// signedBasics are valid for every signed width.
var signedBasics = []vector{
	{name: "exact", op: mulFloor, x: "6", y: "7", den: "3", want: value("14")},
	{name: "exact ceil", op: mulCeil, x: "6", y: "7", den: "3", want: value("14")},
	{name: "positive floor", op: mulFloor, x: "7", y: "3", den: "2", want: value("10")},
	{name: "positive ceil", op: mulCeil, x: "7", y: "3", den: "2", want: value("11")},
	{name: "negative x floor", op: mulFloor, x: "-7", y: "3", den: "2", want: value("-11")},
	{name: "negative x ceil", op: mulCeil, x: "-7", y: "3", den: "2", want: value("-10")},
	{name: "negative denominator floor", op: mulFloor, x: "7", y: "3", den: "-2", want: value("-11")},
	{name: "negative denominator ceil", op: mulCeil, x: "7", y: "3", den: "-2", want: value("-10")},
	{name: "negative product and denominator floor", op: mulFloor, x: "-7", y: "3", den: "-2", want: value("10")},
	{name: "negative product and denominator ceil", op: mulCeil, x: "-7", y: "3", den: "-2", want: value("11")},
	{name: "zero product", op: mulCeil, x: "0", y: "-5", den: "3", want: value("0")},
	{name: "stroop floor", op: mulFloor, x: "15391283", y: "3141592653", den: "10000001", want: value("4835313675")},
	{name: "stroop ceil", op: mulCeil, x: "15391283", y: "3141592653", den: "10000001", want: value("4835313676")},
	{name: "negative stroop floor", op: mulFloor, x: "-15391283", y: "3141592653", den: "10000001", want: value("-4835313676")},
	{name: "negative stroop ceil", op: mulCeil, x: "-15391283", y: "3141592653", den: "10000001", want: value("-4835313675")},
	{name: "div floor", op: divFloor, x: "3141592653", y: "15391280", den: "10000000", want: value("2041150997")},
	{name: "div ceil", op: divCeil, x: "3141592653", y: "15391280", den: "10000000", want: value("2041150998")},
	{name: "negative divisor div floor", op: divFloor, x: "3141592653", y: "-15391280", den: "10000000", want: value("-2041150998")},
	{name: "negative divisor div ceil", op: divCeil, x: "3141592653", y: "-15391280", den: "10000000", want: value("-2041150997")},
	{name: "zero denominator", op: mulFloor, x: "1", y: "2", den: "0", want: failure(ErrDivisionByZero)},
	{name: "zero divisor", op: divCeil, x: "1", y: "0", den: "2", want: failure(ErrDivisionByZero)},
	{name: "zero everything", op: mulCeil, x: "0", y: "0", den: "0", want: failure(ErrDivisionByZero)},
}

// unsignedBasics are valid for every unsigned width.
var unsignedBasics = []vector{
	{name: "exact", op: mulFloor, x: "6", y: "7", den: "3", want: value("14")},
	{name: "floor", op: mulFloor, x: "7", y: "3", den: "2", want: value("10")},
	{name: "ceil", op: mulCeil, x: "7", y: "3", den: "2", want: value("11")},
	{name: "zero product", op: mulCeil, x: "0", y: "5", den: "3", want: value("0")},
	{name: "stroop floor", op: mulFloor, x: "15391283", y: "3141592653", den: "10000001", want: value("4835313675")},
	{name: "stroop ceil", op: mulCeil, x: "15391283", y: "3141592653", den: "10000001", want: value("4835313676")},
	{name: "div floor", op: divFloor, x: "3141592653", y: "15391280", den: "10000000", want: value("2041150997")},
	{name: "div ceil", op: divCeil, x: "3141592653", y: "15391280", den: "10000000", want: value("2041150998")},
	{name: "zero denominator", op: mulCeil, x: "1", y: "2", den: "0", want: failure(ErrDivisionByZero)},
	{name: "zero divisor", op: divFloor, x: "1", y: "0", den: "2", want: failure(ErrDivisionByZero)},
}

func TestInt64(t *testing.T) {
	runVectors[int64](t, append([]vector{
		{name: "escalated", op: mulFloor, x: "9223372036", y: "2000000000", den: "1000000000", want: value("18446744072")},
		{name: "escalated negative ceil", op: mulCeil, x: "-9223372036854775807", y: "3", den: "7", want: value("-3952873730080618203")},
		{name: "escalated result overflow", op: mulFloor, x: "9223372036000000000", y: "2000000000", den: "1000000000", want: failure(ErrResultOverflow)},
		{name: "escalated ceil overflow", op: mulCeil, x: maxInt64, y: "3", den: "2", want: failure(ErrResultOverflow)},
		{name: "min times one", op: mulFloor, x: minInt64, y: "1", den: "1", want: value(minInt64)},
		{name: "min over minus one", op: mulFloor, x: minInt64, y: "1", den: "-1", want: failure(ErrResultOverflow)},
		{name: "max over minus one", op: mulCeil, x: maxInt64, y: "1", den: "-1", want: value("-" + maxInt64)},
		{name: "min times min", op: mulFloor, x: minInt64, y: minInt64, den: minInt64, want: value(minInt64)},
	}, signedBasics...))
}

func TestUint64(t *testing.T) {
	runVectors[uint64](t, append([]vector{
		{name: "escalated exact", op: mulFloor, x: maxUint64, y: maxUint64, den: maxUint64, want: value(maxUint64)},
		{name: "escalated floor at max", op: mulFloor, x: "31", y: "1190112520884487201", den: "2", want: value(maxUint64)},
		{name: "escalated ceil past max", op: mulCeil, x: "31", y: "1190112520884487201", den: "2", want: failure(ErrResultOverflow)},
		{name: "escalated result overflow", op: mulFloor, x: maxUint64, y: "2", den: "1", want: failure(ErrResultOverflow)},
		{name: "max", op: mulCeil, x: maxUint64, y: "1", den: "1", want: value(maxUint64)},
	}, unsignedBasics...))
}

func TestInt128(t *testing.T) {
	const nearMax = "170141183460469231731"
	runVectors[wide.Int128](t, append([]vector{
		{name: "near max unchanged", op: mulFloor, x: nearMax, y: e18, den: e18, want: value(nearMax)},
		{
			name: "near max intermediate overflow", op: mulFloor, x: nearMax, y: "1000000000000000001", den: e18,
			want:     failure(ErrIntermediateOverflow),
			hostWant: value("170141183460469231901"),
		},
		{
			name: "near max intermediate overflow ceil", op: mulCeil, x: nearMax, y: "1000000000000000001", den: e18,
			want:     failure(ErrIntermediateOverflow),
			hostWant: value("170141183460469231902"),
		},
		{
			name: "escalated", op: mulFloor, x: nearMax, y: e27, den: e18,
			want:     failure(ErrIntermediateOverflow),
			hostWant: value(nearMax + "000000000"),
		},
		{
			name: "escalated result overflow", op: mulFloor, x: maxInt128, y: "2", den: "1",
			want:     failure(ErrIntermediateOverflow),
			hostWant: failure(ErrResultOverflow),
		},
		{name: "min over minus one", op: mulCeil, x: minInt128, y: "1", den: "-1", want: failure(ErrResultOverflow)},
		{name: "min times one", op: mulFloor, x: minInt128, y: "1", den: "1", want: value(minInt128)},
	}, signedBasics...))
}

func TestUint128(t *testing.T) {
	const nearMax = "340282366920938463463"
	runVectors[wide.Uint128](t, append([]vector{
		{name: "near max unchanged", op: mulFloor, x: nearMax, y: e18, den: e18, want: value(nearMax)},
		{
			name: "escalated", op: mulFloor, x: nearMax, y: e27, den: e18,
			want:     failure(ErrIntermediateOverflow),
			hostWant: value(nearMax + "000000000"),
		},
		{
			name: "escalated exact", op: mulCeil, x: maxUint128, y: maxUint128, den: maxUint128,
			want:     failure(ErrIntermediateOverflow),
			hostWant: value(maxUint128),
		},
		{
			name: "escalated result overflow", op: mulCeil, x: maxUint128, y: "3", den: "2",
			want:     failure(ErrIntermediateOverflow),
			hostWant: failure(ErrResultOverflow),
		},
		{name: "max", op: mulCeil, x: maxUint128, y: "1", den: "1", want: value(maxUint128)},
	}, unsignedBasics...))
}

func TestInt256(t *testing.T) {
	runVectors[wide.Int256](t, append([]vector{
		{name: "large intermediate", op: mulFloor, x: maxInt128, y: e27, den: e39, want: value("170141183460469231731687303")},
		{name: "large intermediate ceil", op: mulCeil, x: maxInt128, y: e27, den: e39, want: value("170141183460469231731687304")},
		{name: "terminal overflow", op: mulFloor, x: maxInt256, y: "2", den: "2", want: failure(ErrIntermediateOverflow)},
		{name: "terminal overflow negative", op: mulCeil, x: minInt256, y: "-1", den: "1", want: failure(ErrIntermediateOverflow)},
		{name: "min over minus one", op: mulFloor, x: minInt256, y: "1", den: "-1", want: failure(ErrResultOverflow)},
		{name: "min times one", op: mulFloor, x: minInt256, y: "1", den: "1", want: value(minInt256)},
	}, signedBasics...))
}

func TestUint256(t *testing.T) {
	runVectors[wide.Uint256](t, append([]vector{
		{name: "max", op: mulFloor, x: maxUint256, y: "1", den: "1", want: value(maxUint256)},
		{name: "half max floor", op: mulFloor, x: maxUint256, y: "1", den: "2", want: value("57896044618658097711785492504343953926634992332820282019728792003956564819967")},
		{name: "half max ceil", op: mulCeil, x: maxUint256, y: "1", den: "2", want: value("57896044618658097711785492504343953926634992332820282019728792003956564819968")},
		{name: "terminal overflow", op: mulFloor, x: maxUint256, y: maxUint256, den: maxUint256, want: failure(ErrIntermediateOverflow)},
	}, unsignedBasics...))
}

// expect returns the outcome of `x*y/z` at the specified width, given whether
// the computation escalates on intermediate overflow.
func expect(x, y, z *big.Int, r Rounding, bits uint, signed, escalates bool) (*big.Int, error) {
	if z.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	if !escalates && !fits(new(big.Int).Mul(x, y), bits, signed) {
		return nil, ErrIntermediateOverflow
	}
	want := fixedtest.MulDivFloor(x, y, z)
	if r == Ceil {
		want = fixedtest.MulDivCeil(x, y, z)
	}
	if !fits(want, bits, signed) {
		return nil, ErrResultOverflow
	}
	return want, nil
}

// checkAgainstOracle compares both contracts, for all four operations, against
// [expect] for `n` random operand triples.
func checkAgainstOracle[T Integer](seed uint64, n int) error {
	bits, signed := widthOf[T]()
	rng := fixedtest.NewRand(seed)
	gen := rng.Unsigned
	if signed {
		gen = rng.Signed
	}
	rec, host := NewRecoverable[T](), NewHost[T]()

	for range n {
		xb, yb, zb := gen(bits), gen(bits), gen(bits)
		x, _ := FromBig[T](xb)
		y, _ := FromBig[T](yb)
		z, _ := FromBig[T](zb)

		for _, o := range []op{mulFloor, mulCeil, divFloor, divCeil} {
			r := Floor
			if o == mulCeil || o == divCeil {
				r = Ceil
			}
			mul, den := yb, zb
			if o == divFloor || o == divCeil {
				mul, den = zb, yb
			}

			want, wantErr := expect(xb, mul, den, r, bits, signed, bits == 64)
			got, err := apply(o, rec, x, y, z)
			if err := compare(got, err, want, wantErr); err != nil {
				return fmt.Errorf("Recoverable[%T].%v(%v, %v, %v) %v", x, o, x, y, z, err)
			}

			want, wantErr = expect(xb, mul, den, r, bits, signed, bits < 256)
			got, err = applyHost(o, host, x, y, z)
			if err := compare(got, err, want, wantErr); err != nil {
				return fmt.Errorf("Host[%T].%v(%v, %v, %v) %v", x, o, x, y, z, err)
			}
		}
	}
	return nil
}

func TestAgainstOracle(t *testing.T) {
	const n = 2000
	tests := []struct {
		name string
		fn   func(uint64, int) error
	}{
		{"int64", checkAgainstOracle[int64]},
		{"uint64", checkAgainstOracle[uint64]},
		{"Int128", checkAgainstOracle[wide.Int128]},
		{"Uint128", checkAgainstOracle[wide.Uint128]},
		{"Int256", checkAgainstOracle[wide.Int256]},
		{"Uint256", checkAgainstOracle[wide.Uint256]},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.fn(uint64(i), n))
		})
	}
}

func TestConcurrentCallers(t *testing.T) {
	var g errgroup.Group
	for i := range uint64(8) {
		g.Go(func() error { return checkAgainstOracle[int64](i, 250) })
		g.Go(func() error { return checkAgainstOracle[wide.Uint128](i, 250) })
		g.Go(func() error { return checkAgainstOracle[wide.Int256](i, 250) })
	}
	require.NoError(t, g.Wait())
}

func testRoundingProperties[T Integer](t *testing.T) {
	t.Helper()
	bits, signed := widthOf[T]()
	rng := fixedtest.NewRand(42)
	gen := rng.Unsigned
	if signed {
		gen = rng.Signed
	}

	for range 1000 {
		xb, yb := gen(bits), gen(bits)
		zb := rng.NonZero(gen, bits)
		x, y, z := mustFromBig[T](t, xb), mustFromBig[T](t, yb), mustFromBig[T](t, zb)

		lo, errLo := MulFloor(x, y, z)
		hi, errHi := MulCeil(x, y, z)
		if errLo != nil || errHi != nil {
			continue
		}

		diff := new(big.Int).Sub(ToBig(hi), ToBig(lo))
		exact := new(big.Int).Rem(new(big.Int).Mul(xb, yb), zb).Sign() == 0
		if exact {
			assert.Zerof(t, diff.Sign(), "MulCeil(%v, %v, %v) - MulFloor(...) with exact division", x, y, z)
		} else {
			assert.Equalf(t, int64(1), diff.Int64(), "MulCeil(%v, %v, %v) - MulFloor(...) with inexact division", x, y, z)
		}

		// Div* with the divisor and denominator swapped is the same
		// computation.
		got, err := DivFloor(x, z, y)
		require.NoError(t, err)
		assert.Equalf(t, 0, ToBig(got).Cmp(ToBig(lo)), "DivFloor(%v, %v, %v) vs MulFloor(%[1]v, %[3]v, %[2]v)", x, z, y)

		if !signed {
			continue
		}
		negX, ok := FromBig[T](new(big.Int).Neg(xb))
		if !ok {
			continue
		}
		// floor(-v) == -ceil(v)
		got, err = MulFloor(negX, y, z)
		if err != nil {
			continue
		}
		assert.Equalf(t, 0, new(big.Int).Neg(ToBig(got)).Cmp(ToBig(hi)), "-MulFloor(-%v, %v, %v) vs MulCeil(%[1]v, %[2]v, %[3]v)", x, y, z)
	}
}

func TestRoundingProperties(t *testing.T) {
	t.Run("int64", testRoundingProperties[int64])
	t.Run("uint64", testRoundingProperties[uint64])
	t.Run("Int128", testRoundingProperties[wide.Int128])
	t.Run("Uint128", testRoundingProperties[wide.Uint128])
	t.Run("Int256", testRoundingProperties[wide.Int256])
	t.Run("Uint256", testRoundingProperties[wide.Uint256])
}

func TestEscalationIsTransparent(t *testing.T) {
	// Wherever a narrow computation succeeds, performing the same computation
	// at the wider width MUST produce the same result.
	rng := fixedtest.NewRand(7)
	for range 1000 {
		xb, yb := rng.Signed(128), rng.Signed(128)
		zb := rng.NonZero(rng.Signed, 128)
		x, y, z := mustFromBig[wide.Int128](t, xb), mustFromBig[wide.Int128](t, yb), mustFromBig[wide.Int128](t, zb)

		for _, r := range []Rounding{Floor, Ceil} {
			narrow, err := MulDiv(x, y, z, r)
			if err != nil {
				continue
			}
			wider, err := MulDiv(x.Int256(), y.Int256(), z.Int256(), r)
			require.NoErrorf(t, err, "MulDiv[wide.Int256](%v, %v, %v, %v)", x, y, z, r)
			got, ok := wider.Int128()
			require.Truef(t, ok, "%T.Int128()", wider)
			assert.Truef(t, narrow.Equal(got), "MulDiv(%v, %v, %v, %v) at 128 bits = %v; at 256 bits = %v", x, y, z, r, narrow, wider)
		}
	}
}

func TestHostPanicValue(t *testing.T) {
	tests := []struct {
		name    string
		fn      func()
		wantErr error
		wantMsg string
	}{
		{
			name:    "division by zero",
			fn:      func() { MustMulFloor[int64](1, 2, 0) },
			wantErr: ErrDivisionByZero,
			wantMsg: "fixedpoint: MulFloor[int64](1, 2, 0): division by zero",
		},
		{
			name:    "result overflow",
			fn:      func() { MustDivCeil[uint64](1<<63, 1, 2) },
			wantErr: ErrResultOverflow,
			wantMsg: "fixedpoint: DivCeil[uint64](9223372036854775808, 1, 2): result overflow",
		},
		{
			name: "terminal intermediate overflow",
			fn: func() {
				MustMulCeil(wide.MaxInt256(), wide.MaxInt256(), wide.Int256From64(1))
			},
			wantErr: ErrIntermediateOverflow,
			wantMsg: fmt.Sprintf("fixedpoint: MulCeil[wide.Int256](%s, %[1]s, 1): intermediate product overflow", maxInt256),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catch(tt.fn)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestRecoverableErrorsAreSentinels(t *testing.T) {
	_, err := MulFloor[wide.Uint128](wide.MaxUint128(), wide.MaxUint128(), wide.Uint128From64(1))
	require.Equal(t, ErrIntermediateOverflow, err, "error MUST be unwrapped sentinel")

	for _, e := range []error{ErrDivisionByZero, ErrIntermediateOverflow, ErrResultOverflow} {
		for _, other := range []error{ErrDivisionByZero, ErrIntermediateOverflow, ErrResultOverflow} {
			assert.Equalf(t, e == other, errors.Is(e, other), "errors.Is(%v, %v)", e, other)
		}
	}
}

func TestRoundingString(t *testing.T) {
	assert.Equal(t, "floor", Floor.String())
	assert.Equal(t, "ceil", Ceil.String())
	assert.Equal(t, "Rounding(7)", Rounding(7).String())
}
