package animation

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// Rasterize fills every shape onto dst with source-over compositing, in
// slice order. scale converts frame units to pixels.
func Rasterize(dst *image.RGBA, shapes []Shape, scale float64) {
	b := dst.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, s := range shapes {
		fillPolygon(dst, z, Outline(s), scale, s.Color)
	}
}

// fillPolygon scales pts to pixels, clips them to dst and fills the result.
func fillPolygon(dst *image.RGBA, z *vector.Rasterizer, pts []Point, scale float64, c color.NRGBA) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()

	scaled := make([]Point, len(pts))
	for i, p := range pts {
		scaled[i] = Point{p.X * scale, p.Y * scale}
	}
	clipped := clipPolygon(scaled, float64(w), float64(h))
	if len(clipped) < 3 {
		return
	}

	z.Reset(w, h)
	z.MoveTo(float32(clipped[0].X), float32(clipped[0].Y))
	for _, p := range clipped[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// clipEdge is one side of the clip rectangle. inside reports whether a
// point is on the kept side; cross returns where segment a-b meets the side.
type clipEdge struct {
	inside func(p Point) bool
	cross  func(a, b Point) Point
}

// clipPolygon cuts pts to the rectangle [0,w]x[0,h] (Sutherland-Hodgman).
// Edges crossing the border keep their slope up to the border.
func clipPolygon(pts []Point, w, h float64) []Point {
	atX := func(a, b Point, x float64) Point {
		t := (x - a.X) / (b.X - a.X)
		return Point{x, a.Y + t*(b.Y-a.Y)}
	}
	atY := func(a, b Point, y float64) Point {
		t := (y - a.Y) / (b.Y - a.Y)
		return Point{a.X + t*(b.X-a.X), y}
	}
	edges := [...]clipEdge{
		{func(p Point) bool { return p.X >= 0 }, func(a, b Point) Point { return atX(a, b, 0) }},
		{func(p Point) bool { return p.X <= w }, func(a, b Point) Point { return atX(a, b, w) }},
		{func(p Point) bool { return p.Y >= 0 }, func(a, b Point) Point { return atY(a, b, 0) }},
		{func(p Point) bool { return p.Y <= h }, func(a, b Point) Point { return atY(a, b, h) }},
	}

	out := pts
	for _, e := range edges {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]Point, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					out = append(out, e.cross(prev, cur))
				}
				out = append(out, cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}
