// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/ava-labs/fixedpoint"
	"github.com/ava-labs/fixedpoint/params"
	"github.com/ava-labs/fixedpoint/wide"
)

var (
	errUnknownType = errors.New("unknown integer type")
	errOutOfRange  = errors.New("operand out of range")
	errNotInteger  = errors.New("operand not a base-10 integer")
)

// An operation is one of the four rounded fixed-point operations.
type operation struct {
	name     string
	rounding fixedpoint.Rounding
	// div swaps the roles of the second and third operands.
	div bool
}

var operations = []operation{
	{"mul-floor", fixedpoint.Floor, false},
	{"mul-ceil", fixedpoint.Ceil, false},
	{"div-floor", fixedpoint.Floor, true},
	{"div-ceil", fixedpoint.Ceil, true},
}

// A calculator performs an [operation] at a specific integer type.
type calculator struct {
	compute func(op operation, host bool, x, y, den *big.Int) (*big.Int, error)
	widths  func(host bool) []params.Width
	width   params.Width
}

func newCalculator[T fixedpoint.Integer]() calculator {
	w, _ := fixedpoint.WidthOf[T]()
	return calculator{
		compute: compute[T],
		widths:  fixedpoint.Widths[T],
		width:   w,
	}
}

var calculators = map[string]calculator{
	"i64":  newCalculator[int64](),
	"u64":  newCalculator[uint64](),
	"i128": newCalculator[wide.Int128](),
	"u128": newCalculator[wide.Uint128](),
	"i256": newCalculator[wide.Int256](),
	"u256": newCalculator[wide.Uint256](),
}

func typeNames() []string {
	names := make([]string, 0, len(calculators))
	for n := range calculators {
		names = append(names, n)
	}
	slices.SortFunc(names, func(a, b string) int {
		ca, cb := calculators[a], calculators[b]
		if ca.width != cb.width {
			return int(ca.width) - int(cb.width)
		}
		return strings.Compare(a, b)
	})
	return names
}

// compute converts the operands to T and performs the operation. Under the
// host contract, a panic is recovered and returned as an error.
func compute[T fixedpoint.Integer](op operation, host bool, x, y, den *big.Int) (_ *big.Int, retErr error) {
	var ops [3]T
	for i, b := range []*big.Int{x, y, den} {
		v, ok := fixedpoint.FromBig[T](b)
		if !ok {
			return nil, fmt.Errorf("%w: %v as %T", errOutOfRange, b, v)
		}
		ops[i] = v
	}
	a, b, c := ops[0], ops[1], ops[2]
	if op.div {
		b, c = c, b
	}

	if !host {
		q, err := fixedpoint.MulDiv(a, b, c, op.rounding)
		if err != nil {
			return nil, err
		}
		return fixedpoint.ToBig(q), nil
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, ok := r.(error)
		if !ok {
			panic(r)
		}
		retErr = fmt.Errorf("host fault: %w", err)
	}()
	return fixedpoint.ToBig(fixedpoint.MustMulDiv(a, b, c, op.rounding)), nil
}

func parseOperand(s string) (*big.Int, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errNotInteger, s)
	}
	return b, nil
}
