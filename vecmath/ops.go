// Copyright (c) 2026, The Texcomp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

// Operations that are only defined for a subset of the element types.
// Go methods cannot further constrain the type parameter of their
// receiver, so these are functions: instantiating them with an element
// type outside the constraint fails to compile.

// Negate2 returns the vector with each component negated.
func Negate2[T Signed](v Vector2[T]) Vector2[T] {
	return Vector2[T]{-v.X, -v.Y}
}

// Negate3 returns the vector with each component negated.
func Negate3[T Signed](v Vector3[T]) Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// Negate4 returns the vector with each component negated.
func Negate4[T Signed](v Vector4[T]) Vector4[T] {
	return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Shl2 returns the vector with each component shifted left by n bits.
func Shl2[T Integer](v Vector2[T], n uint) Vector2[T] {
	return Vector2[T]{v.X << n, v.Y << n}
}

// Shr2 returns the vector with each component shifted right by n bits.
// The shift is arithmetic for signed element types.
func Shr2[T Integer](v Vector2[T], n uint) Vector2[T] {
	return Vector2[T]{v.X >> n, v.Y >> n}
}

// Shl3 returns the vector with each component shifted left by n bits.
func Shl3[T Integer](v Vector3[T], n uint) Vector3[T] {
	return Vector3[T]{v.X << n, v.Y << n, v.Z << n}
}

// Shr3 returns the vector with each component shifted right by n bits.
// The shift is arithmetic for signed element types.
func Shr3[T Integer](v Vector3[T], n uint) Vector3[T] {
	return Vector3[T]{v.X >> n, v.Y >> n, v.Z >> n}
}

// Shl4 returns the vector with each component shifted left by n bits.
func Shl4[T Integer](v Vector4[T], n uint) Vector4[T] {
	return Vector4[T]{v.X << n, v.Y << n, v.Z << n, v.W << n}
}

// Shr4 returns the vector with each component shifted right by n bits.
// The shift is arithmetic for signed element types.
func Shr4[T Integer](v Vector4[T], n uint) Vector4[T] {
	return Vector4[T]{v.X >> n, v.Y >> n, v.Z >> n, v.W >> n}
}
