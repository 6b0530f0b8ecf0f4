//go:build !amd64 && !arm64

package sixel

import "encoding/binary"

// fillRow writes color (packed little-endian RGBA) across dst, one pixel
// per 4 bytes, with a plain scalar loop. Portable fallback for
// architectures where the doubling-copy trick in span_filler_wide.go
// isn't known to pay off.
func fillRow(dst []byte, color uint32) {
	for i := 0; i+4 <= len(dst); i += 4 {
		binary.LittleEndian.PutUint32(dst[i:i+4], color)
	}
}
