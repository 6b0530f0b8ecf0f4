package sixel

import "fmt"

// MaxDimension is the largest width or height (in pixels) the canvas will
// ever grow to. A raster attribute or a cumulative sequence of writes that
// would exceed it fails with ErrDimensionTooLarge rather than allocating an
// unbounded buffer.
const MaxDimension = 16384

// canvas is a dynamically growing, row-major RGBA buffer with a current
// (x, band) write cursor. A band is a six-pixel-tall horizontal stripe;
// the six rows of band b are rows b*6 through b*6+5.
//
// width/height are the logical extent discovered so far; capWidth/capHeight
// are the allocated extent and are always >= the logical extent. pix is
// always sized capWidth*capHeight*4 and indexed by the capWidth stride —
// trim() re-strides down to the logical size on the way out.
type canvas struct {
	pix                  []byte
	width, height        int
	capWidth, capHeight  int
	x, band              int
}

func newCanvas() *canvas {
	return &canvas{}
}

// growTo ensures the backing buffer can hold at least wantW x wantH pixels,
// reallocating and re-striding row by row if necessary. It never shrinks.
func (c *canvas) growTo(wantW, wantH int) error {
	if wantW > MaxDimension || wantH > MaxDimension {
		return fmt.Errorf("requested %dx%d exceeds %dx%d: %w", wantW, wantH, MaxDimension, MaxDimension, ErrDimensionTooLarge)
	}
	if wantW <= c.capWidth && wantH <= c.capHeight {
		return nil
	}

	newCapWidth := c.capWidth
	if wantW > newCapWidth {
		newCapWidth = wantW
		if grown := c.capWidth * 3 / 2; grown > newCapWidth {
			newCapWidth = grown
		}
		if newCapWidth > MaxDimension {
			newCapWidth = MaxDimension
		}
	}

	newCapHeight := c.capHeight
	if wantH > newCapHeight {
		newCapHeight = wantH
		if grown := c.capHeight * 3 / 2; grown > newCapHeight {
			newCapHeight = grown
		}
		if newCapHeight > MaxDimension {
			newCapHeight = MaxDimension
		}
	}

	newPix, err := safeMake(newCapWidth * newCapHeight * 4)
	if err != nil {
		return err
	}

	if c.pix != nil && c.capWidth > 0 && c.capHeight > 0 {
		oldStride := c.capWidth * 4
		newStride := newCapWidth * 4
		for y := 0; y < c.capHeight; y++ {
			copy(newPix[y*newStride:y*newStride+oldStride], c.pix[y*oldStride:(y+1)*oldStride])
		}
	}

	c.pix = newPix
	c.capWidth = newCapWidth
	c.capHeight = newCapHeight
	return nil
}

// safeMake allocates n zero-filled bytes, converting a runtime
// out-of-memory panic into ErrAllocationFailed instead of crashing the
// process — Go has no fallible-allocation API to call directly.
func safeMake(n int) (buf []byte, err error) {
	if n < 0 {
		return nil, fmt.Errorf("negative allocation size %d: %w", n, ErrAllocationFailed)
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%v: %w", r, ErrAllocationFailed)
		}
	}()
	return make([]byte, n), nil
}

// writeRun writes n consecutive columns at the current (x, band) using the
// six-bit mask and packed color, growing the canvas first if necessary, and
// advances x by n. This is §4.6 of the spec.
func (c *canvas) writeRun(mask byte, n int, color uint32) error {
	if n <= 0 {
		return nil
	}
	newWidth := c.width
	if c.x+n > newWidth {
		newWidth = c.x + n
	}
	requiredHeight := (c.band + 1) * 6

	if err := c.growTo(newWidth, requiredHeight); err != nil {
		return err
	}

	if newWidth > c.width {
		c.width = newWidth
	}
	if requiredHeight > c.height {
		c.height = requiredHeight
	}

	fillSpan(c, mask, c.x, n, color)
	c.x += n
	return nil
}

// carriageReturn implements '$': return to the start of the current band
// without changing which band is active.
func (c *canvas) carriageReturn() {
	c.x = 0
}

// lineFeed implements '-': move to the next band and pre-grow the
// allocated capacity for it. It deliberately does not touch the logical
// height — height only advances when a write actually lands in the new
// band (§8: a trailing '-' with no further writes must not inflate the
// reported height).
func (c *canvas) lineFeed() error {
	c.x = 0
	c.band++
	return c.growTo(c.width, (c.band+1)*6)
}

// presize applies raster-attribute pre-sizing hints: it grows capacity
// (never logical width/height) to at least w x h.
func (c *canvas) presize(w, h int) error {
	if w <= 0 && h <= 0 {
		return nil
	}
	return c.growTo(max(w, c.capWidth), max(h, c.capHeight))
}

// trim returns a tightly packed copy of the logical width x height region,
// row-major with no padding, ready to hand to the caller.
func (c *canvas) trim() []byte {
	if c.width == 0 || c.height == 0 {
		return nil
	}
	out := make([]byte, c.width*c.height*4)
	stride := c.capWidth * 4
	rowBytes := c.width * 4
	for y := 0; y < c.height; y++ {
		copy(out[y*rowBytes:(y+1)*rowBytes], c.pix[y*stride:y*stride+rowBytes])
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
