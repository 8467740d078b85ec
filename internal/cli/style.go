package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot/vg"

	"github.com/tebanduarte2/VRP-Clarke-Wright/pkg/render"
)

// defaultTitle is the plot title of the original solution plots.
const defaultTitle = "Solución CVRP - Algoritmo Clarke-Wright"

// styleFile is the optional TOML style file. Every field is optional;
// unset or non-positive values keep the built-in default. Marker sizes
// are diameters in points, matching the sizes of the original plots.
type styleFile struct {
	Title          string  `toml:"title"`
	FigureWidthIn  float64 `toml:"figure_width_in"`
	FigureHeightIn float64 `toml:"figure_height_in"`
	LineWidthPt    float64 `toml:"line_width_pt"`
	MarkerSizePt   float64 `toml:"marker_size_pt"`
	StartMarkerPt  float64 `toml:"start_marker_size_pt"`
	DepotMarkerPt  float64 `toml:"depot_marker_size_pt"`
	LabelOffset    float64 `toml:"label_offset"`
	LabelSizePt    float64 `toml:"label_size_pt"`
}

// loadStyle reads the style file at path on top of render.DefaultStyle.
// A missing file is not an error; a malformed one is.
func loadStyle(path string) (render.Style, string, error) {
	style := render.DefaultStyle()
	title := defaultTitle

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return style, title, nil
	}
	if err != nil {
		return style, title, fmt.Errorf("read style %s: %w", path, err)
	}

	var f styleFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return style, title, fmt.Errorf("parse style %s: %w", path, err)
	}

	if f.Title != "" {
		title = f.Title
	}
	if f.FigureWidthIn > 0 {
		style.Width = vg.Length(f.FigureWidthIn) * vg.Inch
	}
	if f.FigureHeightIn > 0 {
		style.Height = vg.Length(f.FigureHeightIn) * vg.Inch
	}
	if f.LineWidthPt > 0 {
		style.LineWidth = vg.Points(f.LineWidthPt)
	}
	if f.MarkerSizePt > 0 {
		style.MarkerRadius = vg.Points(f.MarkerSizePt / 2)
	}
	if f.StartMarkerPt > 0 {
		style.StartRadius = vg.Points(f.StartMarkerPt / 2)
	}
	if f.DepotMarkerPt > 0 {
		style.DepotRadius = vg.Points(f.DepotMarkerPt / 2)
	}
	if f.LabelOffset > 0 {
		style.LabelOffset = f.LabelOffset
	}
	if f.LabelSizePt > 0 {
		style.LabelSize = vg.Points(f.LabelSizePt)
	}
	return style, title, nil
}
