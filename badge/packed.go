// Package badge speaks the badge firmware's data formats: the 1-bpp
// packed bitmap, the zlib+base64 payload wrapped around it, and the
// serial command framing used to push pages to the device.
package badge

import (
	"bytes"
	"fmt"

	"github.com/32bitkid/bitreader"

	"github.com/max-dev001/ZeBadge/pix"
)

// Panel dimensions of the badge display.
const (
	Width  = 296
	Height = 128
)

// Pack flattens a buffer into the firmware's 1-bpp bitmap: row-major,
// MSB first, each row padded to a whole byte. A pixel packs to 1
// (white) when its luminance is at least mid-gray, so the expected
// input is a dithered buffer but any buffer packs cleanly.
func Pack(b *pix.Buffer) ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	stride := (b.W + 7) / 8
	out := make([]byte, stride*b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			i := (y*b.W + x) * 4
			if pix.Luminance(b.Pix[i], b.Pix[i+1], b.Pix[i+2]) >= 128 {
				out[y*stride+x/8] |= 1 << uint(7-x%8)
			}
		}
	}
	return out, nil
}

// Unpack expands a packed 1-bpp bitmap back into an opaque
// black-and-white buffer.
func Unpack(data []byte, w, h int) (*pix.Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("badge: invalid bitmap dimensions %dx%d", w, h)
	}
	stride := (w + 7) / 8
	if len(data) < stride*h {
		return nil, fmt.Errorf("badge: packed bitmap is %d bytes, need %d for %dx%d", len(data), stride*h, w, h)
	}

	br := bitreader.NewReader(bytes.NewReader(data))
	out := pix.NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			white, err := br.Read1()
			if err != nil {
				return nil, err
			}
			if white {
				out.Set(x, y, 255, 255, 255, 255)
			} else {
				out.Set(x, y, 0, 0, 0, 255)
			}
		}
		if pad := uint(stride*8 - w); pad > 0 {
			if err := br.Skip(pad); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
