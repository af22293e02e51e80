package animation

import "math"

// Polygon resolution.
const (
	circleSegments = 32
	heartSegments  = 40
)

// StarInnerRatio places the inner star vertices at ±0.3·size on both axes.
const StarInnerRatio = 0.3

// Outline returns the closed polygon for a shape in frame units. The last
// vertex connects back to the first.
func Outline(s Shape) []Point {
	switch s.Kind {
	case KindCircle:
		return circleOutline(s)
	case KindHeart:
		return heartOutline(s)
	case KindStar:
		return starOutline(s)
	default:
		return nil
	}
}

func circleOutline(s Shape) []Point {
	pts := make([]Point, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = Point{s.Center.X + math.Cos(a)*s.Size, s.Center.Y + math.Sin(a)*s.Size}
	}
	return pts
}

// heartOutline samples the classic parametric heart. Before scaling it spans
// [-16, 16] horizontally and about [-12, 17] vertically, tip down.
func heartOutline(s Shape) []Point {
	scale := s.Size / 17
	pts := make([]Point, heartSegments)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / heartSegments
		sin := math.Sin(t)
		x := 16 * sin * sin * sin
		y := -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
		pts[i] = rotate(Point{x * scale, y * scale}, s.Rotation, s.Center)
	}
	return pts
}

// starOutline draws a 4-pointed sparkle: tips at distance size on the axes,
// inner corners on the diagonals.
func starOutline(s Shape) []Point {
	inner := s.Size * StarInnerRatio
	local := [8]Point{
		{0, -s.Size},
		{inner, -inner},
		{s.Size, 0},
		{inner, inner},
		{0, s.Size},
		{-inner, inner},
		{-s.Size, 0},
		{-inner, -inner},
	}
	pts := make([]Point, len(local))
	for i, p := range local {
		pts[i] = rotate(p, s.Rotation, s.Center)
	}
	return pts
}

// rotate turns a point given relative to the origin by angle and moves it
// to center.
func rotate(p Point, angle float64, center Point) Point {
	if angle == 0 {
		return Point{center.X + p.X, center.Y + p.Y}
	}
	sin, cos := math.Sincos(angle)
	return Point{
		X: center.X + p.X*cos - p.Y*sin,
		Y: center.Y + p.X*sin + p.Y*cos,
	}
}
