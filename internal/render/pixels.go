package render

import "sandfall/internal/sand"

// FillRGBA converts the universe into RGBA pixels in buf, one pixel per cell
// in row-major order. It reports false when buf is not exactly 4*w*h bytes.
func FillRGBA(buf []byte, u *sand.Universe) bool {
	cells := u.Cells()
	if len(buf) != 4*len(cells) {
		return false
	}
	for i, c := range cells {
		col := sand.DisplayColor(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
	return true
}

// PixelBuffer allocates a buffer sized for FillRGBA.
func PixelBuffer(u *sand.Universe) []byte {
	return make([]byte, 4*u.Width()*u.Height())
}
