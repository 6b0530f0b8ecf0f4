package sixel

import "testing"

func TestNewPaletteDefaults(t *testing.T) {
	p := newPalette()
	if p.currentIndex != 0 {
		t.Fatalf("currentIndex = %d, want 0", p.currentIndex)
	}
	if p.currentColor != p.entries[0].pack() {
		t.Fatal("cache out of sync with entries[0]")
	}
	want0 := rgba{0, 0, 0, 0xFF}
	if p.entries[0] != want0 {
		t.Fatalf("entries[0] = %+v, want %+v", p.entries[0], want0)
	}
	want1 := rgba{0, 0, 204, 0xFF}
	if p.entries[1] != want1 {
		t.Fatalf("entries[1] = %+v, want %+v", p.entries[1], want1)
	}
	want15 := rgba{255, 255, 255, 0xFF}
	if p.entries[15] != want15 {
		t.Fatalf("entries[15] = %+v, want %+v", p.entries[15], want15)
	}
}

func TestPaletteHighIndexFillRule(t *testing.T) {
	p := newPalette()
	for i := 16; i < 256; i++ {
		j := uint32(i - 16)
		want := rgba{
			r: uint8((j & 0x03) * 85),
			g: uint8(((j >> 2) & 0x07) * 36),
			b: uint8(((j >> 5) & 0x07) * 36),
			a: 0xFF,
		}
		if p.entries[i] != want {
			t.Fatalf("entries[%d] = %+v, want %+v", i, p.entries[i], want)
		}
	}
}

func TestPaletteSelectIndex(t *testing.T) {
	p := newPalette()
	p.selectIndex(5)
	if p.currentIndex != 5 {
		t.Fatalf("currentIndex = %d, want 5", p.currentIndex)
	}
	if p.currentColor != p.entries[5].pack() {
		t.Fatal("cache out of sync")
	}
}

func TestPaletteSelectIndexSaturates(t *testing.T) {
	p := newPalette()
	p.selectIndex(9000)
	if p.currentIndex != 255 {
		t.Fatalf("currentIndex = %d, want 255 (saturated)", p.currentIndex)
	}
}

func TestPaletteDefineRGB(t *testing.T) {
	p := newPalette()
	p.define(3, colorRGB, 100, 0, 0)
	want := rgba{255, 0, 0, 0xFF}
	if p.entries[3] != want {
		t.Fatalf("entries[3] = %+v, want %+v", p.entries[3], want)
	}
	if p.currentIndex != 3 || p.currentColor != want.pack() {
		t.Fatal("define should update current index/cache")
	}
}

func TestPaletteDefineRGBSaturatesOver100(t *testing.T) {
	p := newPalette()
	p.define(1, colorRGB, 999, 0, 0)
	if p.entries[1].r != 255 {
		t.Fatalf("r = %d, want 255 (saturated at 100%%)", p.entries[1].r)
	}
}

func TestPaletteDefineHLSBlue(t *testing.T) {
	p := newPalette()
	p.define(0, colorHLS, 0, 50, 100)
	c := p.entries[0]
	if c.a != 0xFF {
		t.Fatalf("alpha = %d, want 0xFF", c.a)
	}
	if c.r > 1 || c.g > 1 || c.b < 254 {
		t.Fatalf("H=0 L=50 S=100 should be ~blue, got %+v", c)
	}
}

func TestPaletteDefineHLSAchromatic(t *testing.T) {
	p := newPalette()
	p.define(2, colorHLS, 0, 50, 0)
	c := p.entries[2]
	if c.r != c.g || c.g != c.b {
		t.Fatalf("S=0 should be gray, got %+v", c)
	}
}
