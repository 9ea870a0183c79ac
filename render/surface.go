// Package render draws a game.Frame onto any Surface. It owns no state
// between frames and never waits on assets: anything not yet loaded is drawn
// as a placeholder.
package render

import (
	"image"
	"image/color"
)

// Align is the horizontal anchor of drawn text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ImageOptions tune one image draw. Scale and Rotation apply around the
// destination rectangle's center; zero Scale means 1.
type ImageOptions struct {
	Scale    float64
	Rotation float64 // radians
	Alpha    float64 // 0..1
}

// TextOptions tune one text draw. (x, y) is the baseline anchor.
type TextOptions struct {
	Size         float64
	Color        color.RGBA
	Outline      color.RGBA
	OutlineWidth float64 // 0 draws no outline
	Alpha        float64
	Scale        float64
	Align        Align
}

// Surface is the drawing target of the render pass.
type Surface interface {
	Size() (w, h float64)
	Clear(c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
	StrokeRect(x, y, w, h, width float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	DrawImage(img image.Image, x, y, w, h float64, opts ImageOptions)
	DrawText(s string, x, y float64, opts TextOptions)
}

// ImageSource answers whether a named image is loaded and returns its pixels.
type ImageSource interface {
	Get(name string) (image.Image, bool)
}

// offset shifts every element drawn through it, so one shake vector moves
// the whole frame together.
type offset struct {
	Surface
	dx, dy float64
}

func (o offset) FillRect(x, y, w, h float64, c color.RGBA) {
	o.Surface.FillRect(x+o.dx, y+o.dy, w, h, c)
}

func (o offset) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	o.Surface.StrokeRect(x+o.dx, y+o.dy, w, h, width, c)
}

func (o offset) FillCircle(cx, cy, r float64, c color.RGBA) {
	o.Surface.FillCircle(cx+o.dx, cy+o.dy, r, c)
}

func (o offset) DrawImage(img image.Image, x, y, w, h float64, opts ImageOptions) {
	o.Surface.DrawImage(img, x+o.dx, y+o.dy, w, h, opts)
}

func (o offset) DrawText(s string, x, y float64, opts TextOptions) {
	o.Surface.DrawText(s, x+o.dx, y+o.dy, opts)
}

// Fade scales a premultiplied color by alpha in [0,1].
func Fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = max(0, min(alpha, 1))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// Lerp blends two colors, t=0 is a and t=1 is b.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = max(0, min(t, 1))
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
