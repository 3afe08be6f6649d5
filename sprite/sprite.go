// Package sprite builds the images and fonts used by the window frontend.
package sprite

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// spriteSize is the side of the generated cell images in pixels. Callers scale them.
const spriteSize = 16

// Cell is a bevelled white block, tinted at draw time. Blank is a solid white block used to
// paint over cells and panels.
var Cell, Blank *ebiten.Image

var spriteMap = map[string]struct {
	dst  **ebiten.Image
	draw func(*ebiten.Image)
}{
	"cell":  {&Cell, drawCell},
	"blank": {&Blank, drawBlank},
}

func Load() error {
	for _, s := range spriteMap {
		img := ebiten.NewImage(spriteSize, spriteSize)
		s.draw(img)
		*s.dst = img
	}
	if err := loadFonts(); err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}
	return nil
}

func drawBlank(img *ebiten.Image) {
	img.Fill(color.White)
}

func drawCell(img *ebiten.Image) {
	img.Fill(color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
	inner := img.SubImage(image.Rect(2, 2, spriteSize-2, spriteSize-2)).(*ebiten.Image)
	inner.Fill(color.White)
}
