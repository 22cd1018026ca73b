// Copyright (c) 2026, The Texcomp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"image"
	"image/color"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

// Commonly used instantiations.
type (
	Vector2f  = Vector2[float32]
	Vector2d  = Vector2[float64]
	Vector2i  = Vector2[int32]
	Vector2ui = Vector2[uint32]

	Vector3f  = Vector3[float32]
	Vector3d  = Vector3[float64]
	Vector3i  = Vector3[int32]
	Vector3ui = Vector3[uint32]
	Vector3uc = Vector3[uint8]

	Vector4f  = Vector4[float32]
	Vector4d  = Vector4[float64]
	Vector4i  = Vector4[int32]
	Vector4ui = Vector4[uint32]
	Vector4uc = Vector4[uint8]
)

// ConvertVector2 converts each component of v to the element type D
// using Go conversion rules: integers are truncated or wrapped and
// floats are truncated toward zero.
func ConvertVector2[D, S Number](v Vector2[S]) Vector2[D] {
	return Vector2[D]{D(v.X), D(v.Y)}
}

// ConvertVector3 converts each component of v to the element type D.
// See [ConvertVector2].
func ConvertVector3[D, S Number](v Vector3[S]) Vector3[D] {
	return Vector3[D]{D(v.X), D(v.Y), D(v.Z)}
}

// ConvertVector4 converts each component of v to the element type D.
// See [ConvertVector2].
func ConvertVector4[D, S Number](v Vector4[S]) Vector4[D] {
	return Vector4[D]{D(v.X), D(v.Y), D(v.Z), D(v.W)}
}

// F32Vec2 returns v as an [f32.Vec2].
func F32Vec2(v Vector2f) f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// F32Vec3 returns v as an [f32.Vec3].
func F32Vec3(v Vector3f) f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// F32Vec4 returns v as an [f32.Vec4].
func F32Vec4(v Vector4f) f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

// FromF32Vec2 returns a [Vector2f] from an [f32.Vec2].
func FromF32Vec2(a f32.Vec2) Vector2f {
	return Vector2FromArray([2]float32(a))
}

// FromF32Vec3 returns a [Vector3f] from an [f32.Vec3].
func FromF32Vec3(a f32.Vec3) Vector3f {
	return Vector3FromArray([3]float32(a))
}

// FromF32Vec4 returns a [Vector4f] from an [f32.Vec4].
func FromF32Vec4(a f32.Vec4) Vector4f {
	return Vector4FromArray([4]float32(a))
}

// FromFixed converts a 26.6 fixed point value to a float32.
func FromFixed(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

// Vector2FromFixed returns a [Vector2f] from a fixed point position.
func Vector2FromFixed(pt fixed.Point26_6) Vector2f {
	return Vec2(FromFixed(pt.X), FromFixed(pt.Y))
}

// Vector2FromPoint returns a [Vector2i] from an [image.Point].
func Vector2FromPoint(pt image.Point) Vector2i {
	return Vec2(int32(pt.X), int32(pt.Y))
}

// PointFromVector2 returns v as an [image.Point].
func PointFromVector2(v Vector2i) image.Point {
	return image.Pt(int(v.X), int(v.Y))
}

// Vector4FromRGBA returns the channels of c as a [Vector4uc].
func Vector4FromRGBA(c color.RGBA) Vector4uc {
	return Vec4(c.R, c.G, c.B, c.A)
}

// Vector4FromColor returns any color as a [Vector4uc] of
// alpha-premultiplied 8 bit channels.
func Vector4FromColor(c color.Color) Vector4uc {
	return Vector4FromRGBA(color.RGBAModel.Convert(c).(color.RGBA))
}

// RGBAFromVector4 returns v as a [color.RGBA].
func RGBAFromVector4(v Vector4uc) color.RGBA {
	return color.RGBA{R: v.X, G: v.Y, B: v.Z, A: v.W}
}
