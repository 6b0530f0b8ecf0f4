package sixel

import "fmt"

// Decode parses a complete DCS-framed SIXEL sequence — introducer,
// parameters, body, and terminator — and returns the decoded image as
// row-major RGBA bytes with no padding, along with its width and height.
//
// An empty or whitespace-only body, or a body whose writes leave width or
// height at zero, is not an error: Decode returns (nil, 0, 0, nil).
func Decode(data []byte) ([]byte, int, int, error) {
	_, body, err := parseDCSEnvelope(data)
	if err != nil {
		return nil, 0, 0, err
	}
	return decodeBody(body)
}

// DecodeFromDCS decodes a SIXEL body whose DCS envelope the caller has
// already stripped. params are the envelope's P1;P2;P3 parameters; the
// core decoder does not currently give them semantic meaning, but callers
// that already parsed them can pass them through for forward
// compatibility. payload must not contain the final string terminator.
func DecodeFromDCS(params []uint32, payload []byte) ([]byte, int, int, error) {
	return decodeBody(payload)
}

func decodeBody(body []byte) ([]byte, int, int, error) {
	pal := newPalette()
	cv := newCanvas()

	if err := parseBody(body, pal, cv); err != nil {
		return nil, 0, 0, fmt.Errorf("sixel: %w", err)
	}

	if cv.width == 0 || cv.height == 0 {
		return nil, 0, 0, nil
	}

	return cv.trim(), cv.width, cv.height, nil
}
