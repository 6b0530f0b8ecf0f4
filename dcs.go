package sixel

import "fmt"

const (
	byteESC = 0x1B
	byteDCS = 0x90 // single-byte C1 Device Control String introducer
	byteP   = 'P'
	byteQ   = 'q'
	byteBEL = 0x07
	byteST  = 0x9C // single-byte C1 String Terminator
)

// parseDCSEnvelope locates a SIXEL payload inside `ESC P ... q <body> ST`
// (or the single-byte C1 equivalents) framing. It returns the header
// parameters (validated for shape only — P1;P2;P3 are never interpreted)
// and the body slice up to, but not including, the string terminator.
//
// Leading ASCII whitespace before the introducer is skipped. Anything else
// before a recognized introducer is ErrMissingDCS. A missing 'q' final byte
// is ErrBadDCSFinal. A missing string terminator is tolerated: the body runs
// to the end of input.
func parseDCSEnvelope(data []byte) (params []uint32, body []byte, err error) {
	c := newByteCursor(data)

	for {
		b, ok := c.peek()
		if !ok || !isDCSWhitespace(b) {
			break
		}
		c.advance()
	}

	b, ok := c.peek()
	if !ok {
		return nil, nil, fmt.Errorf("empty input: %w", ErrMissingDCS)
	}
	switch {
	case b == byteESC:
		c.advance()
		b2, ok2 := c.peek()
		if !ok2 || b2 != byteP {
			return nil, nil, fmt.Errorf("ESC not followed by 'P': %w", ErrMissingDCS)
		}
		c.advance()
	case b == byteDCS:
		c.advance()
	default:
		return nil, nil, fmt.Errorf("byte 0x%02X is not a DCS introducer: %w", b, ErrMissingDCS)
	}

	params = parseParamList(c)

	final, ok := c.peek()
	if !ok || final != byteQ {
		return nil, nil, fmt.Errorf("DCS final byte: %w", ErrBadDCSFinal)
	}
	c.advance()

	bodyStart := c.pos
	bodyEnd := findTerminator(data, c.pos)

	return params, data[bodyStart:bodyEnd], nil
}

// findTerminator scans data starting at pos for a SIXEL string terminator —
// ESC \, the bare C1 ST (0x9C), or BEL — and returns its offset. If none is
// found, it returns len(data): a missing terminator is tolerated, not an
// error.
func findTerminator(data []byte, pos int) int {
	for i := pos; i < len(data); i++ {
		switch data[i] {
		case byteBEL, byteST:
			return i
		case byteESC:
			if i+1 < len(data) && data[i+1] == '\\' {
				return i
			}
		}
	}
	return len(data)
}

func isDCSWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
