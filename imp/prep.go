package imp

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/max-dev001/ZeBadge/pix"
)

// Fit scales oversized sources down to fit within w×h (preserving
// aspect ratio, Lanczos) and centers the result on a white canvas of
// exactly w×h. The badge panel has fixed dimensions, so letterboxing
// beats distortion; sources that already fit are centered as-is.
func Fit(src image.Image, w, h int) *image.NRGBA {
	canvas := imaging.New(w, h, color.White)
	fitted := imaging.Fit(src, w, h, imaging.Lanczos)
	return imaging.PasteCenter(canvas, fitted)
}

// Gray converts src to grayscale.
func Gray(src image.Image) *image.NRGBA {
	return imaging.Grayscale(src)
}

// Normalize converts src to grayscale and stretches its tonal range to
// the full 0..255 scale, so dithering has the whole threshold range to
// work with. A flat image comes back unchanged (there is no range to
// stretch).
func Normalize(src image.Image) *image.NRGBA {
	gray := Gray(src)

	min, max := uint8(255), uint8(0)
	for i := 0; i < len(gray.Pix); i += 4 {
		v := gray.Pix[i]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == 0 && max == 255 || min == max {
		return gray
	}

	span := int(max) - int(min)
	for i := 0; i < len(gray.Pix); i += 4 {
		v := (int(gray.Pix[i]) - int(min)) * 255 / span
		gray.Pix[i] = uint8(v)
		gray.Pix[i+1] = uint8(v)
		gray.Pix[i+2] = uint8(v)
	}
	return gray
}

// Prepare runs the whole prep pipeline: fit to w×h on white, optional
// contrast normalization, then conversion to a pixel buffer ready for
// pix.Dither.
func Prepare(src image.Image, w, h int, normalize bool) *pix.Buffer {
	fitted := Fit(src, w, h)
	if normalize {
		return pix.FromImage(Normalize(fitted))
	}
	return pix.FromImage(fitted)
}
