package animation

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/vector"
)

func TestOutlineVertexCounts(t *testing.T) {
	c := Point{100, 100}
	assert.Len(t, Outline(Shape{Kind: KindCircle, Center: c, Size: 10}), circleSegments)
	assert.Len(t, Outline(Shape{Kind: KindHeart, Center: c, Size: 10}), heartSegments)
	assert.Len(t, Outline(Shape{Kind: KindStar, Center: c, Size: 10}), 8)
	assert.Nil(t, Outline(Shape{Kind: Kind(9)}))
}

func TestCircleOutlineRadius(t *testing.T) {
	c := Point{40, 60}
	for _, p := range Outline(Shape{Kind: KindCircle, Center: c, Size: 12}) {
		assert.InDelta(t, 12.0, p.Dist(c), 1e-9)
	}
}

func TestStarOutlineTips(t *testing.T) {
	c := Point{10, 10}
	pts := Outline(Shape{Kind: KindStar, Center: c, Size: 5})
	assert.InDelta(t, 10.0, pts[0].X, 1e-12)
	assert.InDelta(t, 5.0, pts[0].Y, 1e-12)
	assert.InDelta(t, 15.0, pts[2].X, 1e-12)
	assert.InDelta(t, 11.5, pts[1].X, 1e-12)
	assert.InDelta(t, 8.5, pts[1].Y, 1e-12)
}

func TestStarOutlineRotation(t *testing.T) {
	c := Point{0, 0}
	pts := Outline(Shape{Kind: KindStar, Center: c, Size: 5, Rotation: math.Pi / 2})
	// The top tip turns to the right.
	assert.InDelta(t, 5.0, pts[0].X, 1e-9)
	assert.InDelta(t, 0.0, pts[0].Y, 1e-9)
	for _, p := range pts {
		d := p.Dist(c)
		assert.True(t, math.Abs(d-5) < 1e-9 || math.Abs(d-5*StarInnerRatio*math.Sqrt2) < 1e-9)
	}
}

func TestHeartOutlineFitsSize(t *testing.T) {
	c := Point{50, 50}
	for _, p := range Outline(Shape{Kind: KindHeart, Center: c, Size: 8}) {
		assert.LessOrEqual(t, math.Abs(p.X-c.X), 8.0+1e-9)
		assert.LessOrEqual(t, math.Abs(p.Y-c.Y), 8.0+1e-9)
	}
}

func TestRasterizeFillsShape(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	red := color.NRGBA{R: 255, A: 255}
	Rasterize(dst, []Shape{{Kind: KindCircle, Center: Point{50, 50}, Size: 20, Color: red}}, 1)

	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(50, 50))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(2, 2))
}

func TestRasterizeScale(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 200, 200))
	Rasterize(dst, []Shape{{Kind: KindStar, Center: Point{50, 50}, Size: 10, Color: color.NRGBA{G: 255, A: 255}}}, 2)

	assert.NotZero(t, dst.RGBAAt(100, 100).A)
	assert.Zero(t, dst.RGBAAt(50, 50).A)
}

func TestRasterizeClipsOffscreenShapes(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	require.NotPanics(t, func() {
		Rasterize(dst, []Shape{
			{Kind: KindCircle, Center: Point{-10, -10}, Size: 35, Color: color.NRGBA{B: 255, A: 255}},
			{Kind: KindHeart, Center: Point{1000, 20}, Size: 10, Color: color.NRGBA{R: 255, A: 255}},
		}, 1)
	})
	assert.NotZero(t, dst.RGBAAt(0, 0).A)
	assert.NotZero(t, dst.RGBAAt(20, 0).A)
	// Pixel centre (24.5, 0.5) is about 36 units from the circle centre.
	assert.Zero(t, dst.RGBAAt(24, 0).A)
	assert.Zero(t, dst.RGBAAt(39, 39).A)
}

func TestFillPolygonKeepsSlopeAcrossBorder(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	z := vector.NewRasterizer(40, 40)
	// Hypotenuse runs from (-20,10) to (20,30): y = 10 + (x+20)/2.
	tri := []Point{{-20, 10}, {20, 10}, {20, 30}}
	fillPolygon(dst, z, tri, 1, color.NRGBA{G: 255, A: 255})

	assert.NotZero(t, dst.RGBAAt(2, 15).A, "inside the clipped triangle")
	assert.Zero(t, dst.RGBAAt(2, 25).A, "below the hypotenuse")
	assert.Zero(t, dst.RGBAAt(25, 15).A, "right of the triangle")
}

func TestClipPolygon(t *testing.T) {
	inside := []Point{{1, 1}, {5, 1}, {5, 5}}
	assert.Equal(t, inside, clipPolygon(inside, 10, 10))

	assert.Empty(t, clipPolygon([]Point{{20, 20}, {30, 20}, {30, 30}}, 10, 10))

	square := clipPolygon([]Point{{-5, -5}, {15, -5}, {15, 15}, {-5, 15}}, 10, 10)
	for _, p := range square {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 10.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 10.0)
	}
	assert.Len(t, square, 4)

	crossing := clipPolygon([]Point{{-20, 10}, {20, 10}, {20, 30}}, 40, 40)
	assert.Contains(t, crossing, Point{0, 20})
}

func TestRasterizeFullFrame(t *testing.T) {
	bounds := Size{Width: 320, Height: 240}
	dst := image.NewRGBA(image.Rect(0, 0, 320, 240))
	Rasterize(dst, Frame(5*time.Second, CursorAt(160, 120), bounds), 1)

	painted := 0
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			painted++
		}
	}
	assert.Greater(t, painted, 0)
}

func TestRasterizeEmptyImage(t *testing.T) {
	assert.NotPanics(t, func() {
		Rasterize(image.NewRGBA(image.Rect(0, 0, 0, 0)), Frame(0, NoCursor, Size{}), 1)
	})
}
