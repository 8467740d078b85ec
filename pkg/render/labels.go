package render

import (
	"image/color"
	"math"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// labelBoxColor is the semi-opaque white behind node-id labels.
var labelBoxColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xCC}

// annotations draws a node-id label near each waypoint, offset into the
// upper right so the marker stays visible, over a rounded semi-opaque
// box for legibility on top of route lines.
type annotations struct {
	xys    plotter.XYs
	labels []string
	offset float64   // data units, applied to both coordinates
	size   vg.Length // font size
}

var _ plot.Plotter = (*annotations)(nil)

func (a *annotations) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	// Reuse the axis label style so the text handler and typeface come
	// from the plot itself.
	sty := plt.X.Label.TextStyle
	sty.Color = color.Black
	sty.Font.Size = a.size
	sty.Font.Weight = xfont.WeightBold
	sty.XAlign = text.XLeft
	sty.YAlign = text.YBottom

	pad := vg.Points(2)
	for i, xy := range a.xys {
		pt := vg.Point{X: trX(xy.X + a.offset), Y: trY(xy.Y + a.offset)}

		box := sty.Rectangle(a.labels[i])
		box.Min = box.Min.Add(pt)
		box.Max = box.Max.Add(pt)
		box.Min.X -= pad
		box.Min.Y -= pad
		box.Max.X += pad
		box.Max.Y += pad

		c.SetColor(labelBoxColor)
		c.Fill(roundedRect(box, pad))
		c.FillText(sty, pt, a.labels[i])
	}
}

// roundedRect builds a counter-clockwise path around r with quarter-circle
// corners of radius rad.
func roundedRect(r vg.Rectangle, rad vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: r.Min.X + rad, Y: r.Min.Y})
	p.Line(vg.Point{X: r.Max.X - rad, Y: r.Min.Y})
	p.Arc(vg.Point{X: r.Max.X - rad, Y: r.Min.Y + rad}, rad, -math.Pi/2, math.Pi/2)
	p.Line(vg.Point{X: r.Max.X, Y: r.Max.Y - rad})
	p.Arc(vg.Point{X: r.Max.X - rad, Y: r.Max.Y - rad}, rad, 0, math.Pi/2)
	p.Line(vg.Point{X: r.Min.X + rad, Y: r.Max.Y})
	p.Arc(vg.Point{X: r.Min.X + rad, Y: r.Max.Y - rad}, rad, math.Pi/2, math.Pi/2)
	p.Line(vg.Point{X: r.Min.X, Y: r.Min.Y + rad})
	p.Arc(vg.Point{X: r.Min.X + rad, Y: r.Min.Y + rad}, rad, math.Pi, math.Pi/2)
	p.Close()
	return p
}
