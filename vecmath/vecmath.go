// Copyright (c) 2026, The Texcomp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vecmath provides generic fixed-arity vectors of 2, 3 and 4
// components used as the basic texel and endpoint value type by the
// texture compression codecs.
//
// Each vector type is a plain struct whose memory layout is exactly
// N consecutive elements of T, so that a vector, a [N]T array and the
// corresponding run of a flat []T buffer can be reinterpreted as one
// another without copying. The color names (R, G, B, A) are accessors
// over the same fields as (X, Y, Z, W), and the leading views
// [Vector3.RG] and [Vector4.RGB] point into the parent vector.
//
// Arithmetic follows Go's native rules for the element type: integer
// operations wrap around and integer division by zero panics, while
// floating point operations produce Inf or NaN.
package vecmath

import (
	"errors"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a vector can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Integer is the set of element types that support bit shifts.
type Integer interface {
	constraints.Integer
}

// Signed is the set of element types that support negation.
type Signed interface {
	constraints.Signed | constraints.Float
}

var (
	// ErrShortBuffer is returned when a buffer holds fewer elements
	// than the arity of the requested vector view.
	ErrShortBuffer = errors.New("vecmath: buffer shorter than vector arity")

	// ErrArity is returned when a buffer length is not a multiple of
	// the arity of the requested vector slice.
	ErrArity = errors.New("vecmath: buffer length not a multiple of vector arity")
)

// Dims is a list of vector dimension (component) names.
type Dims int32

// The vector dimensions.
const (
	X Dims = iota
	Y
	Z
	W

	// DimsN is the number of dimensions.
	DimsN
)

// String returns the lower case name of the dimension.
func (d Dims) String() string {
	switch d {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	case W:
		return "w"
	}
	return "Dims(" + strconv.Itoa(int(d)) + ")"
}
