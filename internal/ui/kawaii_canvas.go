package ui

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/codegod100/libby/internal/animation"
)

// KawaiiCanvas draws the animated hearts and sparkles. It tracks the mouse
// so shapes can dodge it.
type KawaiiCanvas struct {
	widget.BaseWidget

	raster  *canvas.Raster
	buf     *image.RGBA
	elapsed time.Duration
	cursor  animation.Cursor
}

var _ desktop.Hoverable = (*KawaiiCanvas)(nil)

// NewKawaiiCanvas creates the animated canvas
func NewKawaiiCanvas() *KawaiiCanvas {
	k := &KawaiiCanvas{}
	k.raster = canvas.NewRaster(k.draw)
	k.raster.SetMinSize(fyne.NewSize(CanvasMinSize, CanvasMinSize))
	k.ExtendBaseWidget(k)
	return k
}

// SetElapsed moves the animation clock and redraws
func (k *KawaiiCanvas) SetElapsed(d time.Duration) {
	k.elapsed = d
	k.raster.Refresh()
}

// Elapsed returns the time of the last drawn frame
func (k *KawaiiCanvas) Elapsed() time.Duration {
	return k.elapsed
}

// Cursor returns the tracked pointer position
func (k *KawaiiCanvas) Cursor() animation.Cursor {
	return k.cursor
}

// MouseIn starts tracking the pointer
func (k *KawaiiCanvas) MouseIn(ev *desktop.MouseEvent) {
	k.track(ev.Position)
}

// MouseMoved follows the pointer
func (k *KawaiiCanvas) MouseMoved(ev *desktop.MouseEvent) {
	k.track(ev.Position)
}

// MouseOut stops repulsion
func (k *KawaiiCanvas) MouseOut() {
	k.cursor = animation.NoCursor
}

func (k *KawaiiCanvas) track(pos fyne.Position) {
	k.cursor = animation.CursorAt(float64(pos.X), float64(pos.Y))
}

// CreateRenderer creates the renderer for the canvas
func (k *KawaiiCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(k.raster)
}

// draw renders one frame at the raster's pixel size. Shapes are laid out in
// widget units and scaled to pixels.
func (k *KawaiiCanvas) draw(w, h int) image.Image {
	if k.buf == nil || k.buf.Bounds().Dx() != w || k.buf.Bounds().Dy() != h {
		k.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		clear(k.buf.Pix)
	}

	size := k.Size()
	if size.Width <= 0 || size.Height <= 0 || w == 0 {
		return k.buf
	}

	bounds := animation.Size{Width: float64(size.Width), Height: float64(size.Height)}
	scale := float64(w) / float64(size.Width)
	animation.Rasterize(k.buf, animation.Frame(k.elapsed, k.cursor, bounds), scale)
	return k.buf
}
