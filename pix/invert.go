package pix

// Invert complements the red, green and blue channels of every pixel,
// leaving alpha untouched. Inverting twice restores the original
// buffer.
func Invert(b *Buffer) (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	out := NewBuffer(b.W, b.H)
	for i := 0; i < len(b.Pix); i += 4 {
		out.Pix[i] = 255 - b.Pix[i]
		out.Pix[i+1] = 255 - b.Pix[i+1]
		out.Pix[i+2] = 255 - b.Pix[i+2]
		out.Pix[i+3] = b.Pix[i+3]
	}
	return out, nil
}
