// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixedpoint

import (
	"fmt"
	"math/big"

	"github.com/ava-labs/fixedpoint/params"
	"github.com/ava-labs/fixedpoint/wide"
)

// WidthOf returns the width of T and whether it is signed.
func WidthOf[T Integer]() (w params.Width, signed bool) {
	switch any(*new(T)).(type) {
	case int64:
		return params.W64, true
	case uint64:
		return params.W64, false
	case wide.Int128:
		return params.W128, true
	case wide.Uint128:
		return params.W128, false
	case wide.Int256:
		return params.W256, true
	case wide.Uint256:
		return params.W256, false
	}
	panic(fmt.Sprintf("unsupported type %T", *new(T)))
}

// ToBig returns `v` as a [big.Int].
func ToBig[T Integer](v T) *big.Int {
	switch v := any(v).(type) {
	case int64:
		return big.NewInt(v)
	case uint64:
		return new(big.Int).SetUint64(v)
	case wide.Int128:
		return v.Big()
	case wide.Uint128:
		return v.Big()
	case wide.Int256:
		return v.Big()
	case wide.Uint256:
		return v.Big()
	}
	panic(fmt.Sprintf("unsupported type %T", v))
}

// FromBig converts `b` to T, returning false if it is out of range.
func FromBig[T Integer](b *big.Int) (T, bool) {
	var (
		out any
		ok  bool
	)
	switch any(*new(T)).(type) {
	case int64:
		out, ok = b.Int64(), b.IsInt64()
	case uint64:
		out, ok = b.Uint64(), b.IsUint64()
	case wide.Int128:
		out, ok = wide.Int128FromBig(b)
	case wide.Uint128:
		out, ok = wide.Uint128FromBig(b)
	case wide.Int256:
		out, ok = wide.Int256FromBig(b)
	case wide.Uint256:
		out, ok = wide.Uint256FromBig(b)
	}
	if !ok {
		var zero T
		return zero, false
	}
	return out.(T), true
}
