package gradient

import (
	"image/color"
	"testing"
)

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#ff8000", "#000000", "#ffffff", "#4b1996"} {
		c, err := Hex(s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		if got := c.Hex(); got != s {
			t.Fatalf("round-trip %s: got %s", s, got)
		}
	}
}

func TestHexShortForm(t *testing.T) {
	c, err := Hex("#f80")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != RGB(255, 136, 0) {
		t.Fatalf("short form: got %v, want {255 136 0}", c)
	}
}

func TestHexInvalid(t *testing.T) {
	for _, s := range []string{"", "ff8000", "#ff80", "#zzzzzz"} {
		if _, err := Hex(s); err == nil {
			t.Fatalf("parse %q: expected error", s)
		}
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustHex("not a color")
}

func TestRGBAInterop(t *testing.T) {
	c := RGB(255, 136, 0)
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0x8888 || b != 0 || a != 0xffff {
		t.Fatalf("RGBA: got %d %d %d %d", r, g, b, a)
	}
	if back := FromColor(c); back != c {
		t.Fatalf("FromColor round-trip: got %v, want %v", back, c)
	}
	if got := FromColor(color.RGBA{R: 1, G: 2, B: 3, A: 255}); got != RGB(1, 2, 3) {
		t.Fatalf("FromColor RGBA: got %v, want {1 2 3}", got)
	}
}

func TestColorful(t *testing.T) {
	cf := RGB(255, 0, 0).Colorful()
	if cf.R != 1 || cf.G != 0 || cf.B != 0 {
		t.Fatalf("colorful: got %v", cf)
	}
}
