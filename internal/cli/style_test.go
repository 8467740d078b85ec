package cli

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/tebanduarte2/VRP-Clarke-Wright/pkg/render"
)

func TestLoadStyleMissingFile(t *testing.T) {
	style, title, err := loadStyle(filepath.Join(t.TempDir(), "vrpplot.toml"))
	if err != nil {
		t.Fatalf("loadStyle on missing file: %v", err)
	}
	if title != defaultTitle {
		t.Errorf("title = %q, want default %q", title, defaultTitle)
	}
	if style != render.DefaultStyle() {
		t.Errorf("style = %+v, want defaults", style)
	}
}

func TestLoadStyleOverrides(t *testing.T) {
	content := `title = "Rutas de prueba"
figure_width_in = 8.0
marker_size_pt = 10.0
label_offset = 0.5
`
	path := filepath.Join(t.TempDir(), "vrpplot.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	style, title, err := loadStyle(path)
	if err != nil {
		t.Fatalf("loadStyle: %v", err)
	}
	if title != "Rutas de prueba" {
		t.Errorf("title = %q, want %q", title, "Rutas de prueba")
	}
	if style.Width != 8*vg.Inch {
		t.Errorf("Width = %v, want %v", style.Width, 8*vg.Inch)
	}
	if style.MarkerRadius != vg.Points(5) {
		t.Errorf("MarkerRadius = %v, want %v (half the configured diameter)", style.MarkerRadius, vg.Points(5))
	}
	if style.LabelOffset != 0.5 {
		t.Errorf("LabelOffset = %v, want 0.5", style.LabelOffset)
	}
	// Untouched fields keep their defaults.
	if style.Height != render.DefaultStyle().Height {
		t.Errorf("Height = %v, want default", style.Height)
	}
}

func TestLoadStyleMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vrpplot.toml")
	if err := os.WriteFile(path, []byte("title = [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadStyle(path); err == nil {
		t.Fatal("loadStyle on malformed TOML succeeded, want error")
	}
}
