package render

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/recycle-catch/config"
	"github.com/automoto/recycle-catch/game"
)

// skyBands is how many strips approximate the sky gradient.
const skyBands = 24

// Renderer draws frames with a fixed look.
type Renderer struct {
	Images ImageSource
	Field  config.FieldConfig
	Popup  config.PopupConfig

	LabelSize float64
}

// NewRenderer creates a renderer reading images from src. src may be nil.
func NewRenderer(src ImageSource, field config.FieldConfig, popup config.PopupConfig) *Renderer {
	return &Renderer{Images: src, Field: field, Popup: popup, LabelSize: 12}
}

// Draw renders f onto s back to front: background, items, particles,
// popups, the container, then the flash overlay.
func (r *Renderer) Draw(s Surface, f *game.Frame) {
	w, h := f.Width, f.Height
	if w <= 0 || h <= 0 {
		w, h = s.Size()
	}
	s.Clear(config.Black)

	dst := offset{Surface: s, dx: f.ShakeX, dy: f.ShakeY}
	r.drawBackground(dst, w, h)
	for i := range f.Items {
		r.drawItem(dst, &f.Items[i])
	}
	for _, p := range f.Particles {
		dst.FillCircle(p.X, p.Y, p.Size, Fade(p.Color, p.Alpha))
	}
	for i := range f.Popups {
		r.drawPopup(dst, &f.Popups[i])
	}
	r.drawContainer(dst, f.Container)

	if f.FlashAlpha > 0 {
		// Oversized so the shifted overlay still covers the whole surface.
		mx, my := math.Abs(f.ShakeX), math.Abs(f.ShakeY)
		dst.FillRect(-mx, -my, w+2*mx, h+2*my, Fade(f.FlashColor, f.FlashAlpha))
	}
}

func (r *Renderer) image(name string) (image.Image, bool) {
	if r.Images == nil || name == "" {
		return nil, false
	}
	return r.Images.Get(name)
}

func (r *Renderer) drawBackground(s Surface, w, h float64) {
	if img, ok := r.image(r.Field.Background); ok {
		s.DrawImage(img, 0, 0, w, h, ImageOptions{Scale: 1, Alpha: 1})
	} else {
		band := h / skyBands
		for i := 0; i < skyBands; i++ {
			t := float64(i) / float64(skyBands-1)
			s.FillRect(0, float64(i)*band, w, band+1, Lerp(r.Field.SkyTop, r.Field.SkyBottom, t))
		}
	}
	gh := r.Field.GroundHeight
	s.FillRect(0, h-gh, w, gh, r.Field.GroundColor)
}

func (r *Renderer) drawItem(s Surface, it *game.FallingItem) {
	if img, ok := r.image(it.Asset); ok {
		s.DrawImage(img, it.X, it.Y, it.Width, it.Height, ImageOptions{
			Scale:    it.Scale,
			Rotation: it.Rotation,
			Alpha:    it.Alpha,
		})
		return
	}

	var fill, border color.RGBA
	var label string
	switch it.Category {
	case game.Recyclable:
		fill, border, label = r.Field.RecyclableFill, r.Field.RecyclableBorder, r.Field.RecyclableLabel
	case game.Noise:
		fill, border, label = r.Field.NoiseFill, r.Field.NoiseBorder, r.Field.NoiseLabel
	default:
		return
	}

	scale := it.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := it.Width*scale, it.Height*scale
	x, y := it.X-(w-it.Width)/2, it.Y-(h-it.Height)/2

	s.FillRect(x+3, y+3, w, h, Fade(r.Field.ItemShadow, it.Alpha))
	s.FillRect(x, y, w, h, Fade(fill, it.Alpha))
	s.StrokeRect(x, y, w, h, 2, Fade(border, it.Alpha))
	s.DrawText(label, x+w/2, y+h/2+4, TextOptions{
		Size:  r.LabelSize,
		Color: r.Field.LabelColor,
		Alpha: it.Alpha,
		Scale: 1,
		Align: AlignCenter,
	})
}

func (r *Renderer) drawPopup(s Surface, p *game.ScorePopup) {
	s.DrawText(p.Text, p.X, p.Y, TextOptions{
		Size:         r.Popup.FontSize,
		Color:        p.Color,
		Outline:      r.Popup.OutlineColor,
		OutlineWidth: 3,
		Alpha:        p.Opacity,
		Scale:        p.Scale,
		Align:        AlignCenter,
	})
}

func (r *Renderer) drawContainer(s Surface, c game.Container) {
	scale := c.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := c.Width*scale, c.Height*scale
	x, y := c.X-(w-c.Width)/2, c.Y-(h-c.Height)/2

	if img, ok := r.image(r.Field.Container); ok {
		s.DrawImage(img, x, y, w, h, ImageOptions{Scale: 1, Alpha: 1})
		return
	}
	s.FillRect(x, y, w, h, r.Field.ContainerFill)
	s.StrokeRect(x, y, w, h, 3, r.Field.ContainerBorder)
}
