package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/codegod100/libby/internal/animation"
)

func mouseAt(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestKawaiiCanvasTracksCursor(t *testing.T) {
	test.NewApp()
	k := NewKawaiiCanvas()

	assert.False(t, k.Cursor().Inside)

	k.MouseIn(mouseAt(10, 20))
	assert.Equal(t, animation.CursorAt(10, 20), k.Cursor())

	k.MouseMoved(mouseAt(30, 40))
	assert.Equal(t, animation.CursorAt(30, 40), k.Cursor())

	k.MouseOut()
	assert.Equal(t, animation.NoCursor, k.Cursor())
}

func TestKawaiiCanvasDrawsFrame(t *testing.T) {
	test.NewApp()
	k := NewKawaiiCanvas()
	k.Resize(fyne.NewSize(400, 300))
	k.SetElapsed(3 * time.Second)

	img := k.draw(400, 300)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	painted := false
	for i := 3; i < len(k.buf.Pix); i += 4 {
		if k.buf.Pix[i] != 0 {
			painted = true
			break
		}
	}
	assert.True(t, painted, "frame should contain shapes")
}

func TestKawaiiCanvasReusesBuffer(t *testing.T) {
	test.NewApp()
	k := NewKawaiiCanvas()
	k.Resize(fyne.NewSize(100, 100))

	first := k.draw(100, 100)
	second := k.draw(100, 100)
	assert.Same(t, first, second)

	third := k.draw(200, 200)
	assert.NotSame(t, first, third)
}

func TestKawaiiCanvasEmptyBeforeLayout(t *testing.T) {
	test.NewApp()
	k := NewKawaiiCanvas()

	img := k.draw(0, 0)
	assert.Equal(t, 0, img.Bounds().Dx())
}
