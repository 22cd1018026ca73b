// Copyright (c) 2026, The Texcomp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// Vector3 is a 3D vector with X, Y and Z components of element type T,
// which are also accessible as the R, G and B color channels.
// Its memory layout is identical to [3]T.
type Vector3[T Number] struct {
	X T
	Y T
	Z T
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar[T Number](s T) Vector3[T] {
	return Vector3[T]{X: s, Y: s, Z: s}
}

// Vector3FromArray returns a new [Vector3] from the given array.
func Vector3FromArray[T Number](a [3]T) Vector3[T] {
	return Vector3[T]{X: a[0], Y: a[1], Z: a[2]}
}

// Vector3FromVector2 returns a new [Vector3] from the given [Vector2] and z component.
func Vector3FromVector2[T Number](v Vector2[T], z T) Vector3[T] {
	return Vector3[T]{X: v.X, Y: v.Y, Z: z}
}

// Vector3View returns a vector that aliases the first three elements of buf.
// Writes through the returned vector are visible in buf and vice versa.
func Vector3View[T Number](buf []T) (*Vector3[T], error) {
	if len(buf) < 3 {
		return nil, fmt.Errorf("%w: need 3, have %d", ErrShortBuffer, len(buf))
	}
	return (*Vector3[T])(unsafe.Pointer(&buf[0])), nil
}

// Vector3Views reinterprets buf as a slice of vectors sharing its storage.
// The length of buf must be a multiple of 3.
func Vector3Views[T Number](buf []T) ([]Vector3[T], error) {
	if len(buf)%3 != 0 {
		return nil, fmt.Errorf("%w: length %d for arity 3", ErrArity, len(buf))
	}
	if len(buf) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*Vector3[T])(unsafe.Pointer(&buf[0])), len(buf)/3), nil
}

// Vector3sSlice reinterprets a slice of vectors as the flat buffer
// of their components, sharing storage.
func Vector3sSlice[T Number](vs []Vector3[T]) []T {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice(&vs[0].X, 3*len(vs))
}

// Set sets this vector X, Y and Z components.
func (v *Vector3[T]) Set(x, y, z T) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector3[T]) SetScalar(s T) {
	v.X = s
	v.Y = s
	v.Z = s
}

// SetFromVector2 sets this vector from a [Vector2] and z.
func (v *Vector3[T]) SetFromVector2(other Vector2[T], z T) {
	v.X = other.X
	v.Y = other.Y
	v.Z = z
}

// SetZero sets all of the vector's components to zero.
func (v *Vector3[T]) SetZero() {
	v.SetScalar(0)
}

// SetDim sets this vector component value by dimension index.
func (v *Vector3[T]) SetDim(dim Dims, value T) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	default:
		panic("dim is out of range")
	}
}

// Dim returns this vector component by dimension index.
func (v Vector3[T]) Dim(dim Dims) T {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	default:
		panic("dim is out of range")
	}
}

// R returns the red channel, which is the X component.
func (v Vector3[T]) R() T { return v.X }

// G returns the green channel, which is the Y component.
func (v Vector3[T]) G() T { return v.Y }

// B returns the blue channel, which is the Z component.
func (v Vector3[T]) B() T { return v.Z }

// SetR sets the red channel, which is the X component.
func (v *Vector3[T]) SetR(r T) { v.X = r }

// SetG sets the green channel, which is the Y component.
func (v *Vector3[T]) SetG(g T) { v.Y = g }

// SetB sets the blue channel, which is the Z component.
func (v *Vector3[T]) SetB(b T) { v.Z = b }

// RG returns the X and Y components as a [Vector2] that shares
// storage with this vector. Z is not reachable through it.
func (v *Vector3[T]) RG() *Vector2[T] {
	return (*Vector2[T])(unsafe.Pointer(v))
}

// Array returns a pointer to the components of this vector as an array,
// aliasing the vector storage.
func (v *Vector3[T]) Array() *[3]T {
	return (*[3]T)(unsafe.Pointer(v))
}

// Slice returns the components of this vector as a slice of length 3,
// aliasing the vector storage.
func (v *Vector3[T]) Slice() []T {
	return v.Array()[:]
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector3[T]) FromSlice(array []T, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector3[T]) ToSlice(array []T, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// LogValue implements [slog.LogValuer].
func (v Vector3[T]) LogValue() slog.Value {
	return slog.GroupValue(slog.Any("x", v.X), slog.Any("y", v.Y), slog.Any("z", v.Z))
}

// IsEqual returns whether every component of this vector equals
// the corresponding component of other.
func (v Vector3[T]) IsEqual(other Vector3[T]) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{v.X + s, v.Y + s, v.Z + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector3[T]) SetAdd(other Vector3[T]) *Vector3[T] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector3[T]) SetAddScalar(s T) *Vector3[T] {
	v.X += s
	v.Y += s
	v.Z += s
	return v
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector3[T]) SubScalar(s T) Vector3[T] {
	return Vector3[T]{v.X - s, v.Y - s, v.Z - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector3[T]) SetSub(other Vector3[T]) *Vector3[T] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector3[T]) SetSubScalar(s T) *Vector3[T] {
	v.X -= s
	v.Y -= s
	v.Z -= s
	return v
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector3[T]) SetMul(other Vector3[T]) *Vector3[T] {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector3[T]) SetMulScalar(s T) *Vector3[T] {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector3[T]) Div(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	return Vector3[T]{v.X / s, v.Y / s, v.Z / s}
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v *Vector3[T]) SetDiv(other Vector3[T]) *Vector3[T] {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	return v
}

// SetDivScalar sets this to division by scalar.
func (v *Vector3[T]) SetDivScalar(s T) *Vector3[T] {
	v.X /= s
	v.Y /= s
	v.Z /= s
	return v
}
