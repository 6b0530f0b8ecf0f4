package sixel

import "fmt"

// maxRepeat is the cap on the "!N" repeat count (§4.4).
const maxRepeat = 32767

// parseBody runs the sixel body state machine over data, driving palette
// and canvas updates. data must not contain the DCS introducer or string
// terminator — just the body grammar of §6.
func parseBody(data []byte, pal *palette, cv *canvas) error {
	c := newByteCursor(data)

	for {
		b, ok := c.peek()
		if !ok {
			return nil
		}

		switch {
		case b >= 0x3F && b <= 0x7E:
			c.advance()
			mask := b - 0x3F
			if err := cv.writeRun(mask, 1, pal.currentColor); err != nil {
				return err
			}

		case b == '!':
			c.advance()
			n, consumed := c.parseUint(maxRepeat)
			if !consumed {
				n = 1
			}
			nb, ok := c.peek()
			if !ok || nb < 0x3F || nb > 0x7E {
				continue // repeat dropped: next byte is not a sixel data byte
			}
			c.advance()
			mask := nb - 0x3F
			if err := cv.writeRun(mask, int(n), pal.currentColor); err != nil {
				return err
			}

		case b == '#':
			if err := parseColorCommand(c, pal); err != nil {
				return err
			}

		case b == '"':
			c.advance()
			params := parseParamList(c)
			ph, pv := int(paramAt(params, 2)), int(paramAt(params, 3))
			if ph > 0 || pv > 0 {
				if err := cv.presize(ph, pv); err != nil {
					return err
				}
			}

		case b == '$':
			c.advance()
			cv.carriageReturn()

		case b == '-':
			c.advance()
			if err := cv.lineFeed(); err != nil {
				return err
			}

		case b == ' ' || b == '\r' || b == '\n':
			c.advance()

		default:
			c.advance()
		}
	}
}

// parseColorCommand handles '#Pc' (select) and '#Pc;Pu;Px;Py;Pz' (define).
// The cursor is positioned at '#' on entry.
func parseColorCommand(c *byteCursor, pal *palette) error {
	c.advance()

	pc, consumed := c.parseUint(maxParamValue)
	if !consumed {
		b, ok := c.peek()
		if ok && b != ';' {
			return fmt.Errorf("'#' not followed by a digit or ';': %w", ErrMalformedParameter)
		}
		pc = 0
	}

	pu, hadPu := parseOptionalSemiUint(c, maxParamValue)
	if !hadPu {
		pal.selectIndex(pc)
		return nil
	}
	px, _ := parseOptionalSemiUint(c, maxParamValue)
	py, _ := parseOptionalSemiUint(c, maxParamValue)
	pz, _ := parseOptionalSemiUint(c, maxParamValue)

	pal.define(pc, pu, px, py, pz)
	return nil
}
