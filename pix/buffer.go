// Package pix implements the pixel transforms that turn an arbitrary
// RGBA image into something a two-color e-paper badge can show: ordered
// dithering, plain thresholding and tonal inversion.
//
// All transforms are pure: they validate their input, never mutate it,
// and return a freshly allocated buffer of the same dimensions. Calling
// the same transform twice on the same buffer yields byte-identical
// results, which the live preview relies on.
package pix

import (
	"errors"
	"image"
	"image/draw"
)

// ErrInvalidShape is returned when a buffer's pixel slice doesn't match
// its declared dimensions. This is always a caller bug, never a runtime
// condition to retry.
var ErrInvalidShape = errors.New("pix: buffer length doesn't match width*height*4")

// A Buffer is a W×H grid of interleaved 8-bit RGBA pixels.
type Buffer struct {
	W, H int
	Pix  []uint8 // Interleaved RGBA, len = W*H*4
}

// NewBuffer allocates a zeroed (transparent black) buffer.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{W: w, H: h, Pix: make([]uint8, w*h*4)}
}

// Validate checks the buffer's shape invariant.
func (b *Buffer) Validate() error {
	if b == nil || b.W <= 0 || b.H <= 0 || len(b.Pix) != b.W*b.H*4 {
		return ErrInvalidShape
	}
	return nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{W: b.W, H: b.H, Pix: make([]uint8, len(b.Pix))}
	copy(out.Pix, b.Pix)
	return out
}

// At returns the RGBA channels of the pixel at (x, y).
func (b *Buffer) At(x, y int) (r, g, bl, a uint8) {
	i := (y*b.W + x) * 4
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// Set writes the RGBA channels of the pixel at (x, y).
func (b *Buffer) Set(x, y int, r, g, bl, a uint8) {
	i := (y*b.W + x) * 4
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
	b.Pix[i+3] = a
}

// FromImage copies an image into a new buffer. The buffer's origin is
// the image's top-left corner regardless of its bounds offset.
func FromImage(src image.Image) *Buffer {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Stride != w*4 || !bounds.Min.Eq(image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)
	}

	b := &Buffer{W: w, H: h, Pix: make([]uint8, w*h*4)}
	copy(b.Pix, rgba.Pix)
	return b
}

// Image copies the buffer into a stdlib RGBA image.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	copy(img.Pix, b.Pix)
	return img
}
