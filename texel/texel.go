// Copyright (c) 2026, The Texcomp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texel moves 4x4 texel blocks between RGBA images and
// [vecmath.Vector4uc] arrays, the unit of work of the block codecs.
package texel

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	"github.com/texcomp/core/vecmath"
)

// BlockSize is the width and height of a block, in texels.
const BlockSize = 4

// ErrOutOfBounds is returned when a block origin lies outside the image.
var ErrOutOfBounds = errors.New("texel: block origin outside image bounds")

// Block is a 4x4 block of RGBA texels in row-major order.
type Block [BlockSize * BlockSize]vecmath.Vector4uc

// At returns the texel at column x and row y of the block.
func (b *Block) At(x, y int) *vecmath.Vector4uc {
	return &b[y*BlockSize+x]
}

// Slice returns the 64 channel bytes of the block, sharing its storage.
func (b *Block) Slice() []uint8 {
	return vecmath.Vector4sSlice(b[:])
}

// AsRGBA returns the image as an RGBA: if it already is one, then
// it returns that image directly. Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	bounds := src.Bounds()
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, src, bounds.Min, draw.Src)
	return img
}

// row returns the texels of image row y as vectors sharing the image storage.
func row(img *image.RGBA, y int) []vecmath.Vector4uc {
	b := img.Bounds()
	start := img.PixOffset(b.Min.X, y)
	texels, err := vecmath.Vector4Views(img.Pix[start : start+4*b.Dx()])
	if err != nil {
		panic(err) // 4 bytes per texel
	}
	return texels
}

func checkOrigin(img *image.RGBA, x, y int) error {
	if !image.Pt(x, y).In(img.Bounds()) {
		return fmt.Errorf("%w: (%d, %d) not in %v", ErrOutOfBounds, x, y, img.Bounds())
	}
	return nil
}

// LoadBlock copies the block whose top-left texel is at (x, y) out of img.
// Texels past the right or bottom edge of the image repeat the last
// column or row, so partial edge blocks are fully defined.
func LoadBlock(img *image.RGBA, x, y int) (Block, error) {
	var blk Block
	if err := checkOrigin(img, x, y); err != nil {
		return blk, err
	}
	b := img.Bounds()
	if x+BlockSize > b.Max.X || y+BlockSize > b.Max.Y {
		slog.Debug("texel: replicating edge texels", "x", x, "y", y, "bounds", b)
	}
	for by := 0; by < BlockSize; by++ {
		texels := row(img, min(y+by, b.Max.Y-1))
		for bx := 0; bx < BlockSize; bx++ {
			blk[by*BlockSize+bx] = texels[min(x+bx, b.Max.X-1)-b.Min.X]
		}
	}
	return blk, nil
}

// StoreBlock copies blk into img with its top-left texel at (x, y).
// Texels that fall outside the image are dropped.
func StoreBlock(img *image.RGBA, x, y int, blk *Block) error {
	if err := checkOrigin(img, x, y); err != nil {
		return err
	}
	b := img.Bounds()
	w := min(BlockSize, b.Max.X-x)
	h := min(BlockSize, b.Max.Y-y)
	for by := 0; by < h; by++ {
		texels := row(img, y+by)
		copy(texels[x-b.Min.X:x-b.Min.X+w], blk[by*BlockSize:by*BlockSize+w])
	}
	return nil
}

// ForEachBlock calls fn for every block of img in row-major order,
// passing the block origin and its texels. The block is written back
// to img after fn returns, so fn may modify it in place. Iteration
// stops at the first error returned by fn.
func ForEachBlock(img *image.RGBA, fn func(x, y int, blk *Block) error) error {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += BlockSize {
		for x := b.Min.X; x < b.Max.X; x += BlockSize {
			blk, err := LoadBlock(img, x, y)
			if err != nil {
				return err
			}
			if err := fn(x, y, &blk); err != nil {
				return err
			}
			if err := StoreBlock(img, x, y, &blk); err != nil {
				return err
			}
		}
	}
	return nil
}
