package sixel

// maxParams is the cap on how many semicolon-separated values a parameter
// list parser keeps; anything past it is still consumed from the cursor
// (so parsing stays in sync) but discarded with no error.
const maxParams = 8

// maxParamValue is the saturation ceiling for any single decimal parameter.
const maxParamValue = 65535

// parseParamList reads a ';'-separated list of decimal integers, e.g. the
// "P1;P2;P3" of a DCS header or the "Pan;Pad;Ph;Pv" of a raster-attribute
// command. Empty slots (consecutive ';' or a trailing ';') become 0. The
// returned slice never has more than maxParams elements; extra values are
// parsed (to keep the cursor positioned correctly) and then dropped.
func parseParamList(c *byteCursor) []uint32 {
	var params []uint32
	for {
		v, _ := c.parseUint(maxParamValue)
		if len(params) < maxParams {
			params = append(params, v)
		}
		if !c.skipByte(';') {
			break
		}
	}
	return params
}

// paramAt returns params[i] if present, else 0 — the "missing sub-parameters
// saturate to 0" rule applied uniformly.
func paramAt(params []uint32, i int) uint32 {
	if i < len(params) {
		return params[i]
	}
	return 0
}

// parseOptionalSemiUint consumes a leading ';' and the decimal integer that
// follows it, if any. If the current byte is not ';', it reports hadSemi =
// false and leaves the cursor untouched — the spec's "missing sub-parameter
// saturates to 0" rule, expressed at the call site by callers defaulting
// value to 0 when hadSemi is false.
func parseOptionalSemiUint(c *byteCursor, max uint32) (value uint32, hadSemi bool) {
	if !c.skipByte(';') {
		return 0, false
	}
	value, _ = c.parseUint(max)
	return value, true
}
