// Copyright (c) 2026, The Texcomp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texel

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texcomp/core/vecmath"
)

// gradient returns an image where each texel encodes its own position.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), uint8(x + y), 255})
		}
	}
	return img
}

func TestLoadBlock(t *testing.T) {
	img := gradient(8, 8)
	blk, err := LoadBlock(img, 4, 0)
	require.NoError(t, err)
	for y := 0; y < BlockSize; y++ {
		for x := 0; x < BlockSize; x++ {
			assert.Equal(t, vecmath.Vec4[uint8](uint8(4+x), uint8(y), uint8(4+x+y), 255), *blk.At(x, y))
		}
	}
}

func TestLoadEdgeBlock(t *testing.T) {
	img := gradient(6, 5)
	blk, err := LoadBlock(img, 4, 4)
	require.NoError(t, err)
	want := vecmath.Vec4[uint8](4, 4, 8, 255)
	assert.Equal(t, want, *blk.At(0, 0))
	assert.Equal(t, vecmath.Vec4[uint8](5, 4, 9, 255), *blk.At(1, 0))
	assert.Equal(t, vecmath.Vec4[uint8](5, 4, 9, 255), *blk.At(3, 0), "last column repeats")
	assert.Equal(t, want, *blk.At(0, 3), "last row repeats")
}

func TestStoreBlock(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	var blk Block
	for i := range blk {
		blk[i] = vecmath.Vec4[uint8](uint8(i), 0, 0, 255)
	}
	require.NoError(t, StoreBlock(img, 4, 4, &blk))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(4, 4))
	assert.Equal(t, color.RGBA{1, 0, 0, 255}, img.RGBAAt(5, 4))
	assert.Equal(t, color.RGBA{4, 0, 0, 255}, img.RGBAAt(4, 5))
	assert.Equal(t, color.RGBA{5, 0, 0, 255}, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(3, 3))

	err := StoreBlock(img, 6, 0, &blk)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = LoadBlock(img, -1, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestSubImage(t *testing.T) {
	img := gradient(12, 12)
	sub := img.SubImage(image.Rect(4, 4, 12, 12)).(*image.RGBA)
	blk, err := LoadBlock(sub, 8, 4)
	require.NoError(t, err)
	assert.Equal(t, vecmath.Vec4[uint8](8, 4, 12, 255), *blk.At(0, 0))

	blk.At(0, 0).SetScalar(7)
	require.NoError(t, StoreBlock(sub, 8, 4, &blk))
	assert.Equal(t, color.RGBA{7, 7, 7, 7}, img.RGBAAt(8, 4))
	assert.Equal(t, color.RGBA{9, 4, 13, 255}, img.RGBAAt(9, 4))
}

func TestBlockSlice(t *testing.T) {
	var blk Block
	s := blk.Slice()
	assert.Len(t, s, 64)
	s[4*5+3] = 200
	assert.Equal(t, uint8(200), blk.At(1, 1).A())
}

func TestForEachBlock(t *testing.T) {
	img := gradient(7, 9)
	n := 0
	err := ForEachBlock(img, func(x, y int, blk *Block) error {
		n++
		for i := range blk {
			blk[i].RGB().SetScalar(0)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	for y := 0; y < 9; y++ {
		for x := 0; x < 7; x++ {
			assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(x, y))
		}
	}

	stop := errors.New("stop")
	err = ForEachBlock(img, func(x, y int, blk *Block) error {
		if x == 4 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
}

func TestAsRGBA(t *testing.T) {
	assert.Nil(t, AsRGBA(nil))

	rgba := gradient(2, 2)
	assert.Same(t, rgba, AsRGBA(rgba))

	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	nrgba.SetNRGBA(1, 1, color.NRGBA{255, 0, 0, 128})
	got := AsRGBA(nrgba)
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, got.RGBAAt(1, 1))
}
