// Copyright (c) 2026, The Texcomp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// Vector4 is a 4D vector with X, Y, Z and W components of element type T,
// which are also accessible as the R, G, B and A color channels.
// Its memory layout is identical to [4]T.
type Vector4[T Number] struct {
	X T
	Y T
	Z T
	W T
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4[T Number](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

// Vector4Scalar returns a new [Vector4] with all components set to the given scalar value.
func Vector4Scalar[T Number](s T) Vector4[T] {
	return Vector4[T]{X: s, Y: s, Z: s, W: s}
}

// Vector4FromArray returns a new [Vector4] from the given array.
func Vector4FromArray[T Number](a [4]T) Vector4[T] {
	return Vector4[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3] and w component.
func Vector4FromVector3[T Number](v Vector3[T], w T) Vector4[T] {
	nv := Vector4[T]{}
	nv.SetFromVector3(v, w)
	return nv
}

// Vector4View returns a vector that aliases the first four elements of buf.
// Writes through the returned vector are visible in buf and vice versa.
func Vector4View[T Number](buf []T) (*Vector4[T], error) {
	if len(buf) < 4 {
		return nil, fmt.Errorf("%w: need 4, have %d", ErrShortBuffer, len(buf))
	}
	return (*Vector4[T])(unsafe.Pointer(&buf[0])), nil
}

// Vector4Views reinterprets buf as a slice of vectors sharing its storage.
// The length of buf must be a multiple of 4. An RGBA pixel row is
// viewed this way as a row of [Vector4uc].
func Vector4Views[T Number](buf []T) ([]Vector4[T], error) {
	if len(buf)%4 != 0 {
		return nil, fmt.Errorf("%w: length %d for arity 4", ErrArity, len(buf))
	}
	if len(buf) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*Vector4[T])(unsafe.Pointer(&buf[0])), len(buf)/4), nil
}

// Vector4sSlice reinterprets a slice of vectors as the flat buffer
// of their components, sharing storage.
func Vector4sSlice[T Number](vs []Vector4[T]) []T {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice(&vs[0].X, 4*len(vs))
}

// Set sets this vector X, Y, Z and W components.
func (v *Vector4[T]) Set(x, y, z, w T) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector4[T]) SetScalar(s T) {
	v.X = s
	v.Y = s
	v.Z = s
	v.W = s
}

// SetFromVector3 sets this vector from a [Vector3] and w.
func (v *Vector4[T]) SetFromVector3(other Vector3[T], w T) {
	v.X = other.X
	v.Y = other.Y
	v.Z = other.Z
	v.W = w
}

// SetZero sets all of the vector's components to zero.
func (v *Vector4[T]) SetZero() {
	v.SetScalar(0)
}

// SetDim sets this vector component value by dimension index.
func (v *Vector4[T]) SetDim(dim Dims, value T) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	case W:
		v.W = value
	default:
		panic("dim is out of range")
	}
}

// Dim returns this vector component by dimension index.
func (v Vector4[T]) Dim(dim Dims) T {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	case W:
		return v.W
	default:
		panic("dim is out of range")
	}
}

// R returns the red channel, which is the X component.
func (v Vector4[T]) R() T { return v.X }

// G returns the green channel, which is the Y component.
func (v Vector4[T]) G() T { return v.Y }

// B returns the blue channel, which is the Z component.
func (v Vector4[T]) B() T { return v.Z }

// A returns the alpha channel, which is the W component.
func (v Vector4[T]) A() T { return v.W }

// SetR sets the red channel, which is the X component.
func (v *Vector4[T]) SetR(r T) { v.X = r }

// SetG sets the green channel, which is the Y component.
func (v *Vector4[T]) SetG(g T) { v.Y = g }

// SetB sets the blue channel, which is the Z component.
func (v *Vector4[T]) SetB(b T) { v.Z = b }

// SetA sets the alpha channel, which is the W component.
func (v *Vector4[T]) SetA(a T) { v.W = a }

// RGB returns the X, Y and Z components as a [Vector3] that shares
// storage with this vector. The W component is outside the view and
// is never changed by operations performed through it.
func (v *Vector4[T]) RGB() *Vector3[T] {
	return (*Vector3[T])(unsafe.Pointer(v))
}

// Array returns a pointer to the components of this vector as an array,
// aliasing the vector storage.
func (v *Vector4[T]) Array() *[4]T {
	return (*[4]T)(unsafe.Pointer(v))
}

// Slice returns the components of this vector as a slice of length 4,
// aliasing the vector storage.
func (v *Vector4[T]) Slice() []T {
	return v.Array()[:]
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector4[T]) FromSlice(array []T, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
	v.W = array[offset+3]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector4[T]) ToSlice(array []T, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
	array[offset+3] = v.W
}

func (v Vector4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// LogValue implements [slog.LogValuer].
func (v Vector4[T]) LogValue() slog.Value {
	return slog.GroupValue(slog.Any("x", v.X), slog.Any("y", v.Y), slog.Any("z", v.Z), slog.Any("w", v.W))
}

// IsEqual returns whether every component of this vector equals
// the corresponding component of other.
func (v Vector4[T]) IsEqual(other Vector4[T]) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z && v.W == other.W
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector4[T]) AddScalar(s T) Vector4[T] {
	return Vector4[T]{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector4[T]) SetAdd(other Vector4[T]) *Vector4[T] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
	return v
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector4[T]) SetAddScalar(s T) *Vector4[T] {
	v.X += s
	v.Y += s
	v.Z += s
	v.W += s
	return v
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector4[T]) SubScalar(s T) Vector4[T] {
	return Vector4[T]{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector4[T]) SetSub(other Vector4[T]) *Vector4[T] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	v.W -= other.W
	return v
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector4[T]) SetSubScalar(s T) *Vector4[T] {
	v.X -= s
	v.Y -= s
	v.Z -= s
	v.W -= s
	return v
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector4[T]) Mul(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector4[T]) MulScalar(s T) Vector4[T] {
	return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector4[T]) SetMul(other Vector4[T]) *Vector4[T] {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	v.W *= other.W
	return v
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector4[T]) SetMulScalar(s T) *Vector4[T] {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
	return v
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector4[T]) Div(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// Unlike a zero-guarded division, s == 0 follows the element type:
// Inf or NaN for floats, a runtime panic for integers.
func (v Vector4[T]) DivScalar(s T) Vector4[T] {
	return Vector4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v *Vector4[T]) SetDiv(other Vector4[T]) *Vector4[T] {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	v.W /= other.W
	return v
}

// SetDivScalar sets this to division by scalar.
func (v *Vector4[T]) SetDivScalar(s T) *Vector4[T] {
	v.X /= s
	v.Y /= s
	v.Z /= s
	v.W /= s
	return v
}
