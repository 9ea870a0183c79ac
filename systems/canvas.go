package systems

import (
	"image"
	"image/color"

	"github.com/automoto/recycle-catch/fonts"
	"github.com/automoto/recycle-catch/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// outlineDirs are the unit offsets outlined text is stamped at.
var outlineDirs = [8][2]float64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Canvas is a render.Surface drawing onto an ebiten image. Decoded assets are
// uploaded to the GPU once and reused for every later frame.
type Canvas struct {
	dst    *ebiten.Image
	images map[image.Image]*ebiten.Image
	faces  map[float64]*text.GoTextFace
}

var _ render.Surface = (*Canvas)(nil)

func NewCanvas() *Canvas {
	return &Canvas{
		images: make(map[image.Image]*ebiten.Image),
		faces:  make(map[float64]*text.GoTextFace),
	}
}

// Target points the canvas at this frame's screen.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Size() (w, h float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) Clear(clr color.RGBA) {
	c.dst.Fill(clr)
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *Canvas) StrokeRect(x, y, w, h, width float64, clr color.RGBA) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.RGBA) {
	vector.FillCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64, opts render.ImageOptions) {
	src := c.upload(img)
	b := src.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(w/iw*scale, h/ih*scale)
	op.GeoM.Rotate(opts.Rotation)
	op.GeoM.Translate(x+w/2, y+h/2)
	op.ColorScale.ScaleAlpha(float32(opts.Alpha))
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(src, op)
}

func (c *Canvas) DrawText(s string, x, y float64, opts render.TextOptions) {
	face := c.face(opts.Size)
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	align := text.AlignStart
	switch opts.Align {
	case render.AlignCenter:
		align = text.AlignCenter
	case render.AlignRight:
		align = text.AlignEnd
	}
	ascent := face.Metrics().HAscent

	stamp := func(dx, dy float64, clr color.RGBA) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(0, -ascent)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+dx, y+dy)
		op.ColorScale.ScaleWithColor(clr)
		op.ColorScale.ScaleAlpha(float32(opts.Alpha))
		op.PrimaryAlign = align
		text.Draw(c.dst, s, face, op)
	}

	if opts.OutlineWidth > 0 {
		for _, d := range outlineDirs {
			stamp(d[0]*opts.OutlineWidth, d[1]*opts.OutlineWidth, opts.Outline)
		}
	}
	stamp(0, 0, opts.Color)
}

func (c *Canvas) upload(img image.Image) *ebiten.Image {
	if ei, ok := img.(*ebiten.Image); ok {
		return ei
	}
	if ei, ok := c.images[img]; ok {
		return ei
	}
	ei := ebiten.NewImageFromImage(img)
	c.images[img] = ei
	return ei
}

func (c *Canvas) face(size float64) *text.GoTextFace {
	if size <= 0 {
		size = 12
	}
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := fonts.Face(size)
	c.faces[size] = f
	return f
}
