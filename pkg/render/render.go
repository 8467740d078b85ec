// Package render draws a route solution as a labeled line-and-marker
// plot and writes it to a PNG file.
//
// Each route becomes a colored polyline with circular waypoint markers
// and a legend entry; waypoints with a known node id are annotated, the
// start of every route is marked with a square, and the first waypoint
// of the first route is marked with a large diamond as the depot.
package render

import (
	"fmt"
	"image/color"
	"os"
	"slices"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/tebanduarte2/VRP-Clarke-Wright/pkg/routes"
)

// DPI is the raster resolution of the output image.
const DPI = 300

var (
	gridColor  = color.NRGBA{A: 0x4D} // light grid, ~30% black
	depotColor = color.NRGBA{R: 0xFF, A: 0xFF}
)

// Style holds the cosmetic parameters of the plot. Zero values are not
// usable; start from DefaultStyle.
type Style struct {
	Width, Height vg.Length // figure size
	LineWidth     vg.Length
	MarkerRadius  vg.Length // circular waypoint markers
	StartRadius   vg.Length // square route-start markers
	DepotRadius   vg.Length // diamond depot marker
	LabelOffset   float64   // data units between a waypoint and its label
	LabelSize     vg.Length
	Margin        float64 // axis padding as a fraction of the data range
}

// DefaultStyle returns the style of the original plots: a 16x12 inch
// figure with 1% axis margins.
func DefaultStyle() Style {
	return Style{
		Width:        16 * vg.Inch,
		Height:       12 * vg.Inch,
		LineWidth:    vg.Points(2),
		MarkerRadius: vg.Points(3),
		StartRadius:  vg.Points(5),
		DepotRadius:  vg.Points(7.5),
		LabelOffset:  1.2,
		LabelSize:    vg.Points(9),
		Margin:       0.01,
	}
}

// Figure is a fully composed plot, ready to rasterize.
type Figure struct {
	p             *plot.Plot
	width, height vg.Length
}

// Render composes the plot for the given routes. It returns a nil
// Figure for an empty collection. Routes with fewer than two waypoints
// are skipped; they cannot form a line segment.
func Render(rs []routes.Route, title string, s Style) (*Figure, error) {
	if len(rs) == 0 {
		return nil, nil
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.X.Label.Text = "Coordenada X"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = "Coordenada Y"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	colors := Colors(len(rs))
	var xs, ys []float64

	for i, route := range rs {
		if len(route) < 2 {
			continue
		}
		col, err := colorful.Hex(colors[i])
		if err != nil {
			return nil, fmt.Errorf("route %d: bad color %q: %w", i+1, colors[i], err)
		}

		xys := make(plotter.XYs, len(route))
		ann := &annotations{offset: s.LabelOffset, size: s.LabelSize}
		for j, w := range route {
			xys[j] = plotter.XY{X: w.X, Y: w.Y}
			xs = append(xs, w.X)
			ys = append(ys, w.Y)
			if w.NodeID != routes.UnknownID {
				ann.xys = append(ann.xys, xys[j])
				ann.labels = append(ann.labels, strconv.Itoa(w.NodeID))
			}
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i+1, err)
		}
		line.LineStyle.Width = s.LineWidth
		line.LineStyle.Color = col

		scat, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i+1, err)
		}
		scat.GlyphStyle = draw.GlyphStyle{Color: col, Radius: s.MarkerRadius, Shape: draw.CircleGlyph{}}

		start, err := plotter.NewScatter(plotter.XYs{xys[0]})
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i+1, err)
		}
		start.GlyphStyle = draw.GlyphStyle{Color: col, Radius: s.StartRadius, Shape: startGlyph{}}

		p.Add(line, scat, ann, start)
		p.Legend.Add(fmt.Sprintf("Ruta %d", i+1), line, scat)
	}

	// The first waypoint of the first route is the primary depot.
	if len(rs[0]) > 0 {
		d := rs[0][0]
		depot, err := plotter.NewScatter(plotter.XYs{{X: d.X, Y: d.Y}})
		if err != nil {
			return nil, fmt.Errorf("depot: %w", err)
		}
		depot.GlyphStyle = draw.GlyphStyle{Color: depotColor, Radius: s.DepotRadius, Shape: depotGlyph{}}
		p.Add(depot)
		p.Legend.Add("Depósito", depot)
	}

	if len(xs) > 0 {
		minX, maxX := slices.Min(xs), slices.Max(xs)
		minY, maxY := slices.Min(ys), slices.Max(ys)
		mx := (maxX - minX) * s.Margin
		my := (maxY - minY) * s.Margin
		p.X.Min, p.X.Max = minX-mx, maxX+mx
		p.Y.Min, p.Y.Max = minY-my, maxY+my
	}

	return &Figure{p: p, width: s.Width, height: s.Height}, nil
}

// WritePNG rasterizes the figure at DPI and writes it to path. The
// legend is drawn outside the plot area, against the right edge.
func (f *Figure) WritePNG(path string) error {
	img := vgimg.NewWith(vgimg.UseWH(f.width, f.height), vgimg.UseDPI(DPI))
	dc := draw.New(img)

	// Detach the legend and draw it on the full canvas, then crop the
	// plot to the space remaining on its left.
	legend := f.p.Legend
	f.p.Legend = plot.NewLegend()
	defer func() { f.p.Legend = legend }()

	legend.Top = true
	legend.YOffs = -f.p.Title.TextStyle.FontExtents().Height
	r := legend.Rectangle(dc)
	legendWidth := r.Max.X - r.Min.X
	legend.Draw(dc)

	f.p.Draw(draw.Crop(dc, 0, -legendWidth-vg.Millimeter, 0, 0))

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
