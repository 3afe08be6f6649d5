// Package cell maps piece kinds to the colors frontends paint them with.
package cell

import (
	"image/color"

	"github.com/deitrix/brickfall/piece"
)

type Tint int

const (
	Empty Tint = iota
	Wall
	Locked
	Cyan
	Blue
	Orange
	Yellow
	Green
	Purple
	Red
)

var tints = map[Tint]color.NRGBA{
	Empty:  {R: 0x10, G: 0x10, B: 0x18, A: 0xff},
	Wall:   {R: 0x60, G: 0x60, B: 0x68, A: 0xff},
	Locked: {R: 0xd0, G: 0xd0, B: 0xd8, A: 0xff},
	Cyan:   {R: 0x00, G: 0xf0, B: 0xf0, A: 0xff},
	Blue:   {R: 0x00, G: 0x60, B: 0xf0, A: 0xff},
	Orange: {R: 0xf0, G: 0xa0, B: 0x00, A: 0xff},
	Yellow: {R: 0xf0, G: 0xf0, B: 0x00, A: 0xff},
	Green:  {R: 0x00, G: 0xf0, B: 0x00, A: 0xff},
	Purple: {R: 0xa0, G: 0x00, B: 0xf0, A: 0xff},
	Red:    {R: 0xf0, G: 0x00, B: 0x00, A: 0xff},
}

func (t Tint) NRGBA() color.NRGBA {
	return tints[t]
}

// ForKind returns the tint used when previewing pieces of kind k.
func ForKind(k piece.Kind) Tint {
	switch k {
	case piece.I:
		return Cyan
	case piece.J:
		return Blue
	case piece.L:
		return Orange
	case piece.O:
		return Yellow
	case piece.S:
		return Green
	case piece.T:
		return Purple
	case piece.Z:
		return Red
	}
	return Locked
}
