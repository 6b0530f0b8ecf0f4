//go:build amd64 || arm64

package sixel

import "encoding/binary"

// fillRow writes color (packed little-endian RGBA) across dst, one pixel
// per 4 bytes. On these architectures a doubling copy lets the runtime's
// wide-register memmove do the repetitive store instead of a scalar
// per-pixel loop, which matters on the wide solid-fill runs a real SIXEL
// stream spends most of its bytes on.
func fillRow(dst []byte, color uint32) {
	dst = dst[:len(dst)&^3]
	if len(dst) == 0 {
		return
	}
	binary.LittleEndian.PutUint32(dst[0:4], color)
	filled := 4
	for filled < len(dst) {
		n := filled
		if n > len(dst)-filled {
			n = len(dst) - filled
		}
		copy(dst[filled:filled+n], dst[:n])
		filled += n
	}
}
