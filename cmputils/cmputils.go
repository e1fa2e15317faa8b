// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

// Package cmputils provides [cmp] options for comparing arbitrary-precision
// and fixed-width integers, and utilities for scoping them.
package cmputils

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// IfIn returns a filtered equivalent of `opt` that is only evaluated if the
// [cmp.Path] passes through at least one `T`, typically a struct field.
func IfIn[T any](opt cmp.Option) cmp.Option {
	return cmp.FilterPath(pathIncludes[T], opt)
}

func pathIncludes[T any](p cmp.Path) bool {
	want := reflect.TypeFor[T]()
	for _, step := range p {
		if step.Type() == want {
			return true
		}
	}
	return false
}
