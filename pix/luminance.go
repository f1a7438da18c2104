package pix

// Luminance approximates the perceived brightness of a pixel using the
// BT.601 weights (0.299 R, 0.587 G, 0.114 B) in integer arithmetic.
// Alpha takes no part; callers composite beforehand if transparency
// matters.
func Luminance(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}
