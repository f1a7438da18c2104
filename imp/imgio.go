// Package imp prepares source images for the badge pipeline: decoding,
// scaling to the panel dimensions and pre-dither contrast adjustment.
package imp

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Read decodes an image from a reader.
func Read(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

// ReadFile decodes an image from a file.
func ReadFile(filename string) (image.Image, error) {
	return imaging.Open(filename)
}

// Save writes an image to a file; the format is picked from the
// extension (.png, .jpg, .gif, ...).
func Save(filename string, img image.Image) error {
	return imaging.Save(img, filename)
}
