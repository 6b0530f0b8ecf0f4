// Package sixel decodes DEC SIXEL graphics sequences into 32-bit RGBA
// raster images.
//
// SIXEL is a terminal graphics format in which each printable byte encodes
// a vertical column of six pixels sharing a single color. Images are built
// up band by band, left to right, against an indexed palette that is
// established as the stream is parsed; width, height, and palette are all
// discovered during decoding rather than announced up front.
//
// # Quick start
//
//	rgba, width, height, err := sixel.Decode(dcsFramedBytes)
//	if err != nil {
//	    // malformed envelope: see the Err* sentinels below
//	}
//
// [Decode] expects a full DCS envelope (`ESC P ... q <sixel body> ST`). If
// the caller has already stripped the envelope — for example because an
// upstream ANSI/VT dispatcher consumed it — use [DecodeFromDCS] instead,
// passing the already-parsed header parameters and the raw body.
//
// # Errors
//
// Decoding never returns a partial image: on error the returned slice is
// always nil. Five error kinds are possible, each a package-level sentinel
// suitable for errors.Is: [ErrMissingDCS], [ErrBadDCSFinal],
// [ErrDimensionTooLarge], [ErrAllocationFailed], [ErrMalformedParameter].
// Everything else a real-world SIXEL producer emits — unknown command
// bytes, missing optional sub-parameters, a stream that ends before its
// string terminator — is tolerated rather than treated as an error.
//
// # Concurrency
//
// Decode and DecodeFromDCS hold no package-level state; each call owns its
// own palette and canvas. Two concurrent calls never interact.
package sixel
