package render

import (
	"regexp"
	"testing"
)

var hexRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestColorsFromPalette(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"one", 1},
		{"five", 5},
		{"full palette", len(Palette)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Colors(tt.n)
			if len(got) != tt.n {
				t.Fatalf("Colors(%d) returned %d colors", tt.n, len(got))
			}
			for i, c := range got {
				if c != Palette[i] {
					t.Errorf("Colors(%d)[%d] = %q, want %q", tt.n, i, c, Palette[i])
				}
			}
		})
	}
}

func TestColorsStableWithinPalette(t *testing.T) {
	a := Colors(len(Palette))
	b := Colors(len(Palette))
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("color %d differs across calls: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestColorsOverflow(t *testing.T) {
	n := len(Palette) + 6
	got := Colors(n)
	if len(got) != n {
		t.Fatalf("Colors(%d) returned %d colors", n, len(got))
	}
	for i, c := range got[:len(Palette)] {
		if c != Palette[i] {
			t.Errorf("color %d = %q, want palette entry %q", i, c, Palette[i])
		}
	}
	// Overflow colors are random; they only need to be valid hex RGB.
	for i, c := range got[len(Palette):] {
		if !hexRE.MatchString(c) {
			t.Errorf("overflow color %d = %q, not a 6-digit hex RGB", i, c)
		}
	}
}
