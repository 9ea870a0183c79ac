package fonts

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD       FontName = "hud"
	HUDSmall  FontName = "hud-small"
	Countdown FontName = "countdown"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}

	sourceOnce sync.Once
	source     *text.GoTextFaceSource
)

// LoadDefaults registers the faces the HUD and countdown draw with.
func LoadDefaults(hudSize, countdownSize float64) {
	LoadFontWithSize(HUD, gobold.TTF, hudSize)
	LoadFontWithSize(HUDSmall, goregular.TTF, hudSize*0.6)
	LoadFontWithSize(Countdown, gobold.TTF, countdownSize)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// Source is the scalable bold face the canvas and screens size per draw.
func Source() *text.GoTextFaceSource {
	sourceOnce.Do(func() {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			panic(err)
		}
		source = s
	})
	return source
}

// Face returns a face of Source at the given size.
func Face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: Source(), Size: size}
}
