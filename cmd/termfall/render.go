package main

import (
	"fmt"

	"github.com/deitrix/brickfall/cell"
	"github.com/deitrix/brickfall/engine"
	"github.com/deitrix/brickfall/piece"
	"github.com/gdamore/tcell/v2"
)

// Every board cell is two terminal columns wide. The board is drawn right of the info
// panel, with the queue to its right.
const (
	infoWidth  = 16
	queueWidth = 12
	boardLeft  = infoWidth + 2
	boardTop   = 1
)

func style(t cell.Tint) tcell.Style {
	c := t.NRGBA()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func fill(s tcell.Screen, x, y, w, h int, st tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ' ', nil, st)
		}
	}
}

func drawString(s tcell.Screen, x, y int, str string) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// paint brings the terminal up to date with f, touching only what changed.
func paint(s tcell.Screen, f engine.Frame) {
	if f.Full {
		s.Clear()
		wall := style(cell.Wall)
		fill(s, boardLeft-2, boardTop, 2, f.Height+1, wall)
		fill(s, boardLeft+2*f.Width, boardTop, 2, f.Height+1, wall)
		fill(s, boardLeft, boardTop+f.Height, 2*f.Width, 1, wall)
	}
	filled, empty := style(cell.Locked), style(cell.Empty)
	for _, c := range f.Changes {
		st := empty
		if c.Occupied {
			st = filled
		}
		fill(s, boardLeft+2*c.Col, boardTop+c.Row, 2, 1, st)
	}
	if f.QueueChanged {
		paintQueue(s, f.Upcoming, boardLeft+2*f.Width+4)
	}
	if f.ScoreChanged || f.StatusChanged {
		paintInfo(s, f)
	}
	s.Show()
}

func paintQueue(s tcell.Screen, upcoming []piece.Kind, left int) {
	fill(s, left, boardTop, queueWidth, 3*len(upcoming)+1, tcell.StyleDefault)
	drawString(s, left, boardTop, "Next")
	for i, k := range upcoming {
		shape := piece.Piece{Kind: k}.Shape().TrimSpace()
		st := style(cell.ForKind(k))
		top := boardTop + 2 + 3*i
		shape.Cells(func(col, row int) bool {
			fill(s, left+2*col, top+row, 2, 1, st)
			return true
		})
	}
}

func paintInfo(s tcell.Screen, f engine.Frame) {
	fill(s, 0, boardTop, infoWidth, 6, tcell.StyleDefault)
	drawString(s, 1, boardTop, fmt.Sprintf("Score %d", f.Score))
	drawString(s, 1, boardTop+1, fmt.Sprintf("Lines %d", f.LinesCleared))
	if f.GameOver {
		drawString(s, 1, boardTop+3, "GAME OVER")
		drawString(s, 1, boardTop+4, "r restart q quit")
	}
}
