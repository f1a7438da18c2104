package pix

import "fmt"

// Mode selects how Dither picks the black/white cutoff for each pixel.
type Mode int

const (
	// Ordered tiles a 4x4 Bayer matrix over the image, trading flat
	// regions for a pattern that preserves perceived gray levels.
	Ordered Mode = iota
	// Threshold cuts every pixel at mid-gray (128). Cheaper and
	// predictable, but gradients collapse into flat regions.
	Threshold

	modeCount // sentinel for validation
)

var modeNames = [modeCount]string{"Ordered", "Threshold"}

// String returns the name of the dither mode.
func (m Mode) String() string {
	if m.valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

func (m Mode) valid() bool {
	return m >= 0 && m < modeCount
}

// ParseMode maps a mode name ("ordered", "threshold") to its Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "ordered":
		return Ordered, nil
	case "threshold":
		return Threshold, nil
	}
	return 0, fmt.Errorf("pix: unknown dither mode %q", name)
}

// midGray is the cutoff used by Threshold mode.
const midGray = 128

// The classic 4x4 Bayer index matrix. A cell value v becomes the
// threshold v*16 + 8, spreading cutoffs evenly over 8..248 so that
// solid black never crosses the lowest cell and solid white always
// clears the highest.
var bayer = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Dither reduces a buffer to pure black and white. Each pixel's
// luminance is compared against a threshold: the tiled Bayer cell in
// Ordered mode, a constant 128 in Threshold mode. Luminance equal to
// the threshold counts as white. Alpha is copied through unchanged.
//
// The result depends only on the input buffer and mode; the matrix
// lookup wraps via modulo, so any dimensions down to 1x1 work.
func Dither(b *Buffer, m Mode) (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if !m.valid() {
		return nil, fmt.Errorf("pix: unknown dither mode %d", m)
	}

	out := NewBuffer(b.W, b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			i := (y*b.W + x) * 4

			var cut uint8 = midGray
			if m == Ordered {
				cut = bayer[y%4][x%4]*16 + 8
			}

			var v uint8
			if Luminance(b.Pix[i], b.Pix[i+1], b.Pix[i+2]) >= cut {
				v = 255
			}
			out.Pix[i] = v
			out.Pix[i+1] = v
			out.Pix[i+2] = v
			out.Pix[i+3] = b.Pix[i+3]
		}
	}
	return out, nil
}
