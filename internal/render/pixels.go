package render

import "image/color"

var (
	// AliveColor fills live cells.
	AliveColor = color.RGBA{R: 0xc4, G: 0xd1, B: 0xee, A: 0xff}
	// DeadColor fills dead cells.
	DeadColor = color.RGBA{R: 0x28, G: 0x2c, B: 0x34, A: 0xff}
	// BorderColor outlines cells when grid lines are shown.
	BorderColor = color.RGBA{R: 0x40, G: 0x46, B: 0x53, A: 0xff}
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a pixel position on the board to cell coordinates. Row i grows
// downwards and column k to the right.
func CellAt(x, y, scale, rows, cols int) (i, k int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	i, k = y/scale, x/scale
	if i >= rows || k >= cols {
		return 0, 0, false
	}
	return i, k, true
}
