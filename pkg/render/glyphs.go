package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// startGlyph marks the first waypoint of a route: a square filled with
// the route color and stroked with a thin black edge.
type startGlyph struct{}

func (startGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	half := sty.Radius / vg.Length(math.Sqrt2)
	var p vg.Path
	p.Move(vg.Point{X: pt.X - half, Y: pt.Y - half})
	p.Line(vg.Point{X: pt.X + half, Y: pt.Y - half})
	p.Line(vg.Point{X: pt.X + half, Y: pt.Y + half})
	p.Line(vg.Point{X: pt.X - half, Y: pt.Y + half})
	p.Close()
	fillStroke(c, p, sty.Color, vg.Points(1))
}

// depotGlyph marks the primary depot: a large diamond filled with the
// depot color and stroked with a heavier black edge.
type depotGlyph struct{}

func (depotGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y + sty.Radius})
	p.Line(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - sty.Radius})
	p.Line(vg.Point{X: pt.X - sty.Radius, Y: pt.Y})
	p.Close()
	fillStroke(c, p, sty.Color, vg.Points(2))
}

func fillStroke(c *draw.Canvas, p vg.Path, fill color.Color, edge vg.Length) {
	c.SetColor(fill)
	c.Fill(p)
	c.SetColor(color.Black)
	c.SetLineWidth(edge)
	c.SetLineDash(nil, 0)
	c.Stroke(p)
}
