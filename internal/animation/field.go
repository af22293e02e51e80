package animation

import (
	"image/color"
	"math"
	"time"
)

// LoopPeriod is the length of one seamless animation cycle. Every periodic
// term below is an integer harmonic of it.
const LoopPeriod = 30 * time.Second

// Cursor repulsion parameters.
const (
	AvoidRadius   = 90.0
	RepelStrength = 45.0
)

// Point is a position in frame units.
type Point struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Size is the extent of the frame.
type Size struct {
	Width, Height float64
}

// Center returns the middle of the frame.
func (s Size) Center() Point { return Point{s.Width / 2, s.Height / 2} }

// Contains reports whether p lies inside the frame.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= s.Width && p.Y <= s.Height
}

// Cursor is the pointer position. The zero value is off-canvas.
type Cursor struct {
	Pos    Point
	Inside bool
}

// NoCursor disables repulsion.
var NoCursor = Cursor{}

// CursorAt returns a cursor located at (x, y).
func CursorAt(x, y float64) Cursor {
	return Cursor{Pos: Point{x, y}, Inside: true}
}

// Kind enumerates the decorative shapes.
type Kind int

const (
	KindCircle Kind = iota
	KindHeart
	KindStar
)

// String returns the shape kind name
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindHeart:
		return "heart"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Shape is one drawable placement for a single frame.
type Shape struct {
	Kind     Kind
	Index    int
	Center   Point
	Size     float64 // radius for circles, half-extent for hearts and stars
	Rotation float64 // radians
	Color    color.NRGBA
}

// orbit holds the per-kind animation constants.
type orbit struct {
	count        int
	radiusX      float64
	radiusY      float64
	stepX        float64 // orbit growth per index
	stepY        float64
	revolutions  float64 // orbits per loop, signed, integral
	baseSize     float64
	sizeSwing    float64
	sizeHarmonic float64
}

var (
	circleOrbit = orbit{count: 5, radiusX: 50, radiusY: 30, stepX: 20, stepY: 15, revolutions: 2, baseSize: 30, sizeSwing: 10, sizeHarmonic: 10}
	heartOrbit  = orbit{count: 8, radiusX: 80, radiusY: 60, stepX: 15, stepY: 10, revolutions: 3, baseSize: 6, sizeSwing: 2, sizeHarmonic: 20}
	starOrbit   = orbit{count: 12, radiusX: 100, radiusY: 80, stepX: 12, stepY: 8, revolutions: -4, baseSize: 3, sizeSwing: 2, sizeHarmonic: 30}
)

// Heart bob and star spin harmonics.
const (
	heartBobHarmonic  = 45
	heartBobAmplitude = 5.0
	heartTiltHarmonic = 6
	heartTilt         = 0.25
	starSpinHarmonic  = 8
	starSpin          = math.Pi / 4
)

var circlePalette = [...]color.NRGBA{
	{R: 255, G: 179, B: 204, A: 77}, // pink
	{R: 204, G: 230, B: 255, A: 77}, // light blue
	{R: 255, G: 255, B: 204, A: 77}, // light yellow
	{R: 230, G: 204, B: 255, A: 77}, // light purple
}

var (
	heartColor = color.NRGBA{R: 255, G: 102, B: 153, A: 204}
	starColor  = color.NRGBA{R: 255, G: 255, B: 153, A: 230}
)

// ShapeCount is the number of shapes in every frame.
const ShapeCount = 5 + 8 + 12

// Phase maps elapsed time onto [0, 2π) over LoopPeriod. Negative durations
// wrap as well.
func Phase(elapsed time.Duration) float64 {
	wrapped := elapsed % LoopPeriod
	if wrapped < 0 {
		wrapped += LoopPeriod
	}
	return 2 * math.Pi * float64(wrapped) / float64(LoopPeriod)
}

// Offset is the angular starting position of shape i out of count.
func Offset(i, count int) float64 {
	return float64(i) * (2 * math.Pi / float64(count))
}

// Frame computes every shape for the given time, cursor and bounds.
// Circles come first, then hearts, then stars, matching draw order.
func Frame(elapsed time.Duration, cursor Cursor, bounds Size) []Shape {
	phase := Phase(elapsed)
	center := bounds.Center()
	if cursor.Inside && !bounds.Contains(cursor.Pos) {
		cursor = NoCursor
	}

	shapes := make([]Shape, 0, ShapeCount)
	for i := 0; i < circleOrbit.count; i++ {
		off := Offset(i, circleOrbit.count)
		shapes = append(shapes, Shape{
			Kind:   KindCircle,
			Index:  i,
			Center: Repel(circleOrbit.position(center, phase, i), cursor),
			Size:   circleOrbit.size(phase, off),
			Color:  circlePalette[i%len(circlePalette)],
		})
	}

	for i := 0; i < heartOrbit.count; i++ {
		off := Offset(i, heartOrbit.count)
		pos := heartOrbit.position(center, phase, i)
		pos.Y -= math.Sin(heartBobHarmonic*phase+off) * heartBobAmplitude
		shapes = append(shapes, Shape{
			Kind:     KindHeart,
			Index:    i,
			Center:   Repel(pos, cursor),
			Size:     heartOrbit.size(phase, off),
			Rotation: heartTilt * math.Sin(heartTiltHarmonic*phase+off),
			Color:    heartColor,
		})
	}

	for i := 0; i < starOrbit.count; i++ {
		off := Offset(i, starOrbit.count)
		shapes = append(shapes, Shape{
			Kind:     KindStar,
			Index:    i,
			Center:   Repel(starOrbit.position(center, phase, i), cursor),
			Size:     starOrbit.baseSize + math.Abs(math.Sin(starOrbit.sizeHarmonic*phase+off))*starOrbit.sizeSwing,
			Rotation: starSpin * math.Sin(starSpinHarmonic*phase+off),
			Color:    starColor,
		})
	}

	return shapes
}

func (o orbit) position(center Point, phase float64, i int) Point {
	angle := o.revolutions*phase + Offset(i, o.count)
	return Point{
		X: center.X + math.Cos(angle)*(o.radiusX+float64(i)*o.stepX),
		Y: center.Y + math.Sin(angle)*(o.radiusY+float64(i)*o.stepY),
	}
}

func (o orbit) size(phase, off float64) float64 {
	return o.baseSize + math.Sin(o.sizeHarmonic*phase+off)*o.sizeSwing
}

// Repel pushes p directly away from the cursor when it lies strictly inside
// AvoidRadius. The push is (1 - d/AvoidRadius) * RepelStrength. A point
// exactly on the cursor is left alone since it has no direction.
func Repel(p Point, cursor Cursor) Point {
	if !cursor.Inside {
		return p
	}
	d := p.Dist(cursor.Pos)
	if d == 0 || d >= AvoidRadius {
		return p
	}
	push := (1 - d/AvoidRadius) * RepelStrength
	dir := p.Sub(cursor.Pos)
	return Point{
		X: p.X + dir.X/d*push,
		Y: p.Y + dir.Y/d*push,
	}
}
