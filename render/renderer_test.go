package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/automoto/recycle-catch/config"
	"github.com/automoto/recycle-catch/game"
	"github.com/automoto/recycle-catch/tween"
)

type op struct {
	kind string
	x, y float64
	text string
	clr  color.RGBA
}

// recorder is a Surface that remembers every call.
type recorder struct {
	w, h float64
	ops  []op
}

func (r *recorder) Size() (float64, float64) { return r.w, r.h }
func (r *recorder) Clear(c color.RGBA)       { r.ops = append(r.ops, op{kind: "clear", clr: c}) }
func (r *recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "rect", x: x, y: y, clr: c})
}
func (r *recorder) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "stroke", x: x, y: y, clr: c})
}
func (r *recorder) FillCircle(cx, cy, rad float64, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "circle", x: cx, y: cy, clr: c})
}
func (r *recorder) DrawImage(img image.Image, x, y, w, h float64, opts ImageOptions) {
	r.ops = append(r.ops, op{kind: "image", x: x, y: y})
}
func (r *recorder) DrawText(s string, x, y float64, opts TextOptions) {
	r.ops = append(r.ops, op{kind: "text", x: x, y: y, text: s, clr: opts.Color})
}

func (r *recorder) index(pred func(op) bool) int {
	for i, o := range r.ops {
		if pred(o) {
			return i
		}
	}
	return -1
}

type images map[string]image.Image

func (m images) Get(name string) (image.Image, bool) {
	img, ok := m[name]
	return img, ok
}

func testFrame() *game.Frame {
	return &game.Frame{
		Width:  800,
		Height: 600,
		Items: []game.FallingItem{
			{ID: 1, X: 100, Y: 50, Width: 100, Height: 100, Category: game.Recyclable, Asset: "bottle", Scale: 1, Alpha: 1},
			{ID: 2, X: 300, Y: 80, Width: 100, Height: 100, Category: game.Noise, Asset: "peel", Scale: 1, Alpha: 1},
		},
		Particles: []tween.Particle{{X: 10, Y: 20, Size: 4, Color: config.Green, Alpha: 0.5, Life: 0.5, MaxLife: 1}},
		Popups:    []game.ScorePopup{{ID: 3, X: 150, Y: 200, Text: "+20 DKK", Color: config.Green, Opacity: 1, Scale: 1}},
		Container: game.Container{X: 330, Y: 440, Width: 140, Height: 100, Scale: 1},
	}
}

func TestDrawOrder(t *testing.T) {
	f := testFrame()
	f.FlashAlpha = 0.3
	f.FlashColor = config.Red

	rec := &recorder{w: 800, h: 600}
	NewRenderer(nil, config.Field, config.Game.Popup).Draw(rec, f)

	if rec.ops[0].kind != "clear" {
		t.Fatalf("first op = %s, want clear", rec.ops[0].kind)
	}
	park := rec.index(func(o op) bool { return o.kind == "text" && o.text == config.Field.RecyclableLabel })
	trash := rec.index(func(o op) bool { return o.kind == "text" && o.text == config.Field.NoiseLabel })
	particle := rec.index(func(o op) bool { return o.kind == "circle" })
	popup := rec.index(func(o op) bool { return o.kind == "text" && o.text == "+20 DKK" })
	container := rec.index(func(o op) bool { return o.kind == "rect" && o.clr == config.Field.ContainerFill })
	flash := len(rec.ops) - 1

	for name, i := range map[string]int{"PARK": park, "TRASH": trash, "particle": particle, "popup": popup, "container": container} {
		if i < 0 {
			t.Fatalf("%s not drawn", name)
		}
	}
	if !(park < particle && trash < particle && particle < popup && popup < container && container < flash) {
		t.Errorf("draw order items=%d,%d particle=%d popup=%d container=%d flash=%d",
			park, trash, particle, popup, container, flash)
	}
	if rec.ops[flash].clr != Fade(config.Red, 0.3) {
		t.Errorf("last op color = %v, want faded red flash", rec.ops[flash].clr)
	}
}

func TestLoadedImagesReplacePlaceholders(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src := images{"bottle": img, "peel": img, "background": img, "container": img}

	rec := &recorder{w: 800, h: 600}
	NewRenderer(src, config.Field, config.Game.Popup).Draw(rec, testFrame())

	if i := rec.index(func(o op) bool { return o.kind == "text" && o.text != "+20 DKK" }); i >= 0 {
		t.Errorf("placeholder label %q drawn although images are loaded", rec.ops[i].text)
	}
	n := 0
	for _, o := range rec.ops {
		if o.kind == "image" {
			n++
		}
	}
	if n != 4 {
		t.Errorf("drew %d images, want 4 (background, two items, container)", n)
	}
}

func TestShakeOffsetsEveryElement(t *testing.T) {
	plain := &recorder{w: 800, h: 600}
	shaken := &recorder{w: 800, h: 600}
	r := NewRenderer(nil, config.Field, config.Game.Popup)

	f := testFrame()
	r.Draw(plain, f)
	f.ShakeX, f.ShakeY = 4, -3
	r.Draw(shaken, f)

	if len(plain.ops) != len(shaken.ops) {
		t.Fatalf("op count changed under shake: %d vs %d", len(plain.ops), len(shaken.ops))
	}
	for i := range plain.ops {
		a, b := plain.ops[i], shaken.ops[i]
		if a.kind == "clear" {
			continue
		}
		if b.x-a.x != 4 || b.y-a.y != -3 {
			t.Errorf("op %d (%s) moved by (%v, %v), want (4, -3)", i, a.kind, b.x-a.x, b.y-a.y)
		}
	}
}

func TestUnsizedFrameUsesSurfaceSize(t *testing.T) {
	rec := &recorder{w: 320, h: 200}
	NewRenderer(nil, config.Field, config.Game.Popup).Draw(rec, &game.Frame{})

	ground := rec.index(func(o op) bool { return o.kind == "rect" && o.clr == config.Field.GroundColor })
	if ground < 0 {
		t.Fatal("ground not drawn")
	}
	if y := rec.ops[ground].y; y != 200-config.Field.GroundHeight {
		t.Errorf("ground y = %v, want %v", y, 200-config.Field.GroundHeight)
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got := Fade(c, 1); got != c {
		t.Errorf("Fade(1) = %v, want %v", got, c)
	}
	if got := Fade(c, 0); got != (color.RGBA{}) {
		t.Errorf("Fade(0) = %v, want transparent", got)
	}
	if got := Fade(c, 0.5); got.A != 127 || got.R != 100 {
		t.Errorf("Fade(0.5) = %v", got)
	}
}

func TestUnknownCategoryNotDrawn(t *testing.T) {
	r := NewRenderer(nil, config.Field, config.Game.Popup)

	base := &recorder{w: 800, h: 600}
	r.Draw(base, testFrame())

	f := testFrame()
	f.Items = append(f.Items, game.FallingItem{ID: 9, X: 500, Y: 60, Width: 100, Height: 100, Category: game.Category(7), Scale: 1, Alpha: 1})
	rec := &recorder{w: 800, h: 600}
	r.Draw(rec, f)

	if len(rec.ops) != len(base.ops) {
		t.Errorf("unknown item added %d draw calls", len(rec.ops)-len(base.ops))
	}
}
