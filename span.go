package sixel

// fillSpan writes n consecutive pixels of color starting at column x in
// every row of the canvas's current band selected by mask's low six bits.
// x+n is always within c.capWidth and the band's rows are always within
// c.capHeight — the caller (canvas.writeRun) grows the buffer first.
func fillSpan(c *canvas, mask byte, x, n int, color uint32) {
	if mask == 0 || n <= 0 {
		return
	}
	stride := c.capWidth * 4
	base := c.band * 6
	for bit := 0; bit < 6; bit++ {
		if mask&(1<<uint(bit)) == 0 {
			continue
		}
		rowStart := (base + bit) * stride
		dst := c.pix[rowStart+x*4 : rowStart+(x+n)*4]
		fillRow(dst, color)
	}
}
