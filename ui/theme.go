package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// faces are the sizes the kiosk screens are laid out with, for a 1280x720
// logical screen.
type faces struct {
	title  text.Face
	large  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() faces {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	return faces{
		title:  &text.GoTextFace{Source: bold, Size: 56},
		large:  &text.GoTextFace{Source: bold, Size: 40},
		normal: &text.GoTextFace{Source: regular, Size: 24},
		small:  &text.GoTextFace{Source: regular, Size: 18},
	}
}

func buttonImage(idle, hover, pressed color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(idle),
		Hover:    image.NewNineSliceColor(hover),
		Pressed:  image.NewNineSliceColor(pressed),
		Disabled: image.NewNineSliceColor(color.RGBA{60, 60, 60, 255}),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.RGBA{255, 255, 255, 255},
		Hover:    color.RGBA{255, 255, 220, 255},
		Pressed:  color.RGBA{220, 220, 220, 255},
		Disabled: color.RGBA{128, 128, 128, 255},
	}
}

// centered is the layout data of a child centered in an anchor layout.
func centered() widget.ContainerOpt {
	return widget.ContainerOpts.WidgetOpts(
		widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		}),
	)
}

func label(s string, face *text.Face, c color.RGBA) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
	)
}
