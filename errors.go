package sixel

import "errors"

// Sentinel errors returned by Decode and DecodeFromDCS. Each is wrapped with
// call-site context via fmt.Errorf's %w verb, so callers can still compare
// against these with errors.Is.
var (
	// ErrMissingDCS means the input did not begin with a recognized DCS
	// introducer (ESC P or the single-byte C1 form 0x90).
	ErrMissingDCS = errors.New("sixel: missing DCS introducer")

	// ErrBadDCSFinal means a DCS introducer was found but the byte
	// immediately preceding the sixel body was not 'q'.
	ErrBadDCSFinal = errors.New("sixel: DCS final byte is not 'q'")

	// ErrDimensionTooLarge means a raster attribute or a cumulative write
	// requested a canvas dimension past MaxDimension.
	ErrDimensionTooLarge = errors.New("sixel: dimension exceeds maximum")

	// ErrAllocationFailed means the canvas could not grow to the
	// requested size.
	ErrAllocationFailed = errors.New("sixel: canvas allocation failed")

	// ErrMalformedParameter means a numeric parameter that the grammar
	// requires was absent — for example '#' with no following digit and
	// no following terminator.
	ErrMalformedParameter = errors.New("sixel: malformed parameter")
)
