// Copyright (c) 2026, The Texcomp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceAliases(t *testing.T) {
	v2 := Vec2[int32](1, 2)
	s2 := v2.Slice()
	assert.Len(t, s2, 2)
	s2[1] = 20
	assert.Equal(t, int32(20), v2.Y)
	v2.X = 10
	assert.Equal(t, []int32{10, 20}, s2)

	v3 := Vec3[float32](1, 2, 3)
	v3.Array()[2] = 30
	assert.Equal(t, float32(30), v3.B())
	assert.Equal(t, []float32{1, 2, 30}, v3.Slice())

	v4 := Vec4[uint8](1, 2, 3, 4)
	s4 := v4.Slice()
	assert.Len(t, s4, 4)
	assert.Equal(t, 4, cap(s4))
	s4[3] = 40
	assert.Equal(t, uint8(40), v4.A())
	v4.SetR(11)
	assert.Equal(t, []uint8{11, 2, 3, 40}, s4)

	assert.Panics(t, func() {
		i := 4
		_ = v4.Slice()[i]
	})
}

func TestSliceNoCopy(t *testing.T) {
	v := Vec4[float64](1, 2, 3, 4)
	allocs := testing.AllocsPerRun(100, func() {
		s := v.Slice()
		s[0]++
		v.RGB().RG().SetAddScalar(1)
	})
	assert.Zero(t, allocs)
}

func TestView(t *testing.T) {
	buf := []uint16{1, 2, 3, 4, 5}

	v2, err := Vector2View(buf[3:])
	require.NoError(t, err)
	assert.Equal(t, Vec2[uint16](4, 5), *v2)
	v2.SetAddScalar(10)
	assert.Equal(t, []uint16{1, 2, 3, 14, 15}, buf)

	v3, err := Vector3View(buf)
	require.NoError(t, err)
	assert.Equal(t, Vec3[uint16](1, 2, 3), *v3)
	buf[0] = 100
	assert.Equal(t, uint16(100), v3.R())

	v4, err := Vector4View(buf[1:])
	require.NoError(t, err)
	v4.SetMulScalar(2)
	assert.Equal(t, []uint16{100, 4, 6, 28, 30}, buf)
	assert.Equal(t, Vec3[uint16](4, 6, 28), *v4.RGB())

	_, err = Vector2View(buf[:1])
	assert.ErrorIs(t, err, ErrShortBuffer)
	_, err = Vector3View(buf[:2])
	assert.ErrorIs(t, err, ErrShortBuffer)
	_, err = Vector4View(buf[:3])
	assert.ErrorIs(t, err, ErrShortBuffer)
	_, err = Vector4View[uint16](nil)
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestViews(t *testing.T) {
	pix := []uint8{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	}
	texels, err := Vector4Views(pix)
	require.NoError(t, err)
	require.Len(t, texels, 3)
	assert.Equal(t, Vec4[uint8](5, 6, 7, 8), texels[1])

	texels[2].SetA(255)
	assert.Equal(t, uint8(255), pix[11])
	pix[0] = 0
	assert.Equal(t, uint8(0), texels[0].R())

	rgbs, err := Vector3Views(pix)
	require.NoError(t, err)
	require.Len(t, rgbs, 4)
	assert.Equal(t, Vec3[uint8](4, 5, 6), rgbs[1])

	pairs, err := Vector2Views(pix)
	require.NoError(t, err)
	require.Len(t, pairs, 6)
	assert.Equal(t, Vec2[uint8](11, 255), pairs[5])

	_, err = Vector4Views(pix[:10])
	assert.ErrorIs(t, err, ErrArity)
	_, err = Vector3Views(pix[:10])
	assert.ErrorIs(t, err, ErrArity)
	_, err = Vector2Views(pix[:9])
	assert.ErrorIs(t, err, ErrArity)

	empty, err := Vector4Views[uint8](nil)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFlatten(t *testing.T) {
	vs := []Vector4[int32]{Vec4[int32](1, 2, 3, 4), Vec4[int32](5, 6, 7, 8)}
	flat := Vector4sSlice(vs)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7, 8}, flat)
	flat[6] = 70
	assert.Equal(t, int32(70), vs[1].B())

	v3s := []Vector3[float32]{Vec3[float32](1, 2, 3), Vec3[float32](4, 5, 6)}
	f3 := Vector3sSlice(v3s)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, f3)
	v3s[0].SetG(20)
	assert.Equal(t, float32(20), f3[1])

	v2s := []Vector2[uint8]{Vec2[uint8](1, 2), Vec2[uint8](3, 4), Vec2[uint8](5, 6)}
	f2 := Vector2sSlice(v2s)
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6}, f2)

	back, err := Vector2Views(f2)
	require.NoError(t, err)
	assert.Same(t, &v2s[2], &back[2])

	assert.Nil(t, Vector4sSlice[int32](nil))
	assert.Nil(t, Vector3sSlice([]Vector3[int8]{}))
}

func TestBulkCopy(t *testing.T) {
	src := []uint8{10, 20, 30, 40, 50, 60, 70, 80}
	dst := make([]Vector4[uint8], 2)
	n := copy(Vector4sSlice(dst), src)
	assert.Equal(t, 8, n)
	assert.Equal(t, []Vector4[uint8]{Vec4[uint8](10, 20, 30, 40), Vec4[uint8](50, 60, 70, 80)}, dst)

	out := make([]uint8, 8)
	views, err := Vector4Views(out)
	require.NoError(t, err)
	copy(views, dst)
	assert.Equal(t, src, out)
}
