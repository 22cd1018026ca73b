// Copyright (c) 2026, The Texcomp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// Vector2 is a 2D vector with X and Y components of element type T.
// Its memory layout is identical to [2]T.
type Vector2[T Number] struct {
	X T
	Y T
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2[T Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar[T Number](s T) Vector2[T] {
	return Vector2[T]{X: s, Y: s}
}

// Vector2FromArray returns a new [Vector2] from the given array.
func Vector2FromArray[T Number](a [2]T) Vector2[T] {
	return Vector2[T]{X: a[0], Y: a[1]}
}

// Vector2View returns a vector that aliases the first two elements of buf.
// Writes through the returned vector are visible in buf and vice versa.
func Vector2View[T Number](buf []T) (*Vector2[T], error) {
	if len(buf) < 2 {
		return nil, fmt.Errorf("%w: need 2, have %d", ErrShortBuffer, len(buf))
	}
	return (*Vector2[T])(unsafe.Pointer(&buf[0])), nil
}

// Vector2Views reinterprets buf as a slice of vectors sharing its storage.
// The length of buf must be a multiple of 2.
func Vector2Views[T Number](buf []T) ([]Vector2[T], error) {
	if len(buf)%2 != 0 {
		return nil, fmt.Errorf("%w: length %d for arity 2", ErrArity, len(buf))
	}
	if len(buf) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*Vector2[T])(unsafe.Pointer(&buf[0])), len(buf)/2), nil
}

// Vector2sSlice reinterprets a slice of vectors as the flat buffer
// of their components, sharing storage.
func Vector2sSlice[T Number](vs []Vector2[T]) []T {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice(&vs[0].X, 2*len(vs))
}

// Set sets this vector X and Y components.
func (v *Vector2[T]) Set(x, y T) {
	v.X = x
	v.Y = y
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2[T]) SetScalar(s T) {
	v.X = s
	v.Y = s
}

// SetZero sets all of the vector's components to zero.
func (v *Vector2[T]) SetZero() {
	v.SetScalar(0)
}

// SetDim sets this vector component value by dimension index.
func (v *Vector2[T]) SetDim(dim Dims, value T) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	default:
		panic("dim is out of range")
	}
}

// Dim returns this vector component by dimension index.
func (v Vector2[T]) Dim(dim Dims) T {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		panic("dim is out of range")
	}
}

// Array returns a pointer to the components of this vector as an array,
// aliasing the vector storage.
func (v *Vector2[T]) Array() *[2]T {
	return (*[2]T)(unsafe.Pointer(v))
}

// Slice returns the components of this vector as a slice of length 2,
// aliasing the vector storage.
func (v *Vector2[T]) Slice() []T {
	return v.Array()[:]
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector2[T]) FromSlice(array []T, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector2[T]) ToSlice(array []T, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// LogValue implements [slog.LogValuer].
func (v Vector2[T]) LogValue() slog.Value {
	return slog.GroupValue(slog.Any("x", v.X), slog.Any("y", v.Y))
}

// IsEqual returns whether every component of this vector equals
// the corresponding component of other.
func (v Vector2[T]) IsEqual(other Vector2[T]) bool {
	return v.X == other.X && v.Y == other.Y
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector2[T]) AddScalar(s T) Vector2[T] {
	return Vector2[T]{v.X + s, v.Y + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector2[T]) SetAdd(other Vector2[T]) *Vector2[T] {
	v.X += other.X
	v.Y += other.Y
	return v
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector2[T]) SetAddScalar(s T) *Vector2[T] {
	v.X += s
	v.Y += s
	return v
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - other.X, v.Y - other.Y}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector2[T]) SubScalar(s T) Vector2[T] {
	return Vector2[T]{v.X - s, v.Y - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector2[T]) SetSub(other Vector2[T]) *Vector2[T] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector2[T]) SetSubScalar(s T) *Vector2[T] {
	v.X -= s
	v.Y -= s
	return v
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2[T]) Mul(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2[T]) MulScalar(s T) Vector2[T] {
	return Vector2[T]{v.X * s, v.Y * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector2[T]) SetMul(other Vector2[T]) *Vector2[T] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector2[T]) SetMulScalar(s T) *Vector2[T] {
	v.X *= s
	v.Y *= s
	return v
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector2[T]) Div(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X / other.X, v.Y / other.Y}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
func (v Vector2[T]) DivScalar(s T) Vector2[T] {
	return Vector2[T]{v.X / s, v.Y / s}
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v *Vector2[T]) SetDiv(other Vector2[T]) *Vector2[T] {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// SetDivScalar sets this to division by scalar.
func (v *Vector2[T]) SetDivScalar(s T) *Vector2[T] {
	v.X /= s
	v.Y /= s
	return v
}
