package engine

import (
	"github.com/deitrix/brickfall/board"
	"github.com/deitrix/brickfall/piece"
)

// FallingPiece is the piece currently controlled by the player. X and Y locate the top-left
// corner of its bounding box on the board; Y is negative while the box is partly above it.
type FallingPiece struct {
	piece.Piece
	X, Y int
	// Spawned is false until the piece has been placed over the board.
	Spawned bool
}

// Spawn centers the piece horizontally with its box entirely above the board.
func (p *FallingPiece) Spawn(b *board.Board) {
	p.Spawned = true
	p.X = (b.Width() - p.Size()) / 2
	p.Y = -p.Size()
}

// Collides reports whether any cell of the piece placed at (x0, y0) overlaps an occupied
// board cell.
func (p *FallingPiece) Collides(b *board.Board, x0, y0 int) bool {
	hit := false
	p.Shape().Cells(func(col, row int) bool {
		hit = b.Occupied(y0+row, x0+col)
		return !hit
	})
	return hit
}

// Fits reports whether the piece placed at (x0, y0) stays between the walls, above the
// floor, and clear of occupied cells. Rows above the board are allowed.
func (p *FallingPiece) Fits(b *board.Board, x0, y0 int) bool {
	inside := true
	p.Shape().Cells(func(col, row int) bool {
		x, y := x0+col, y0+row
		inside = x >= 0 && x < b.Width() && y < b.Height()
		return inside
	})
	return inside && !p.Collides(b, x0, y0)
}

func (p *FallingPiece) CanDescend(b *board.Board) bool {
	return p.Fits(b, p.X, p.Y+1)
}

// TickGravity moves the piece down one row. It returns true, without moving, when the piece
// is resting and should be locked.
func (p *FallingPiece) TickGravity(b *board.Board) bool {
	if !p.CanDescend(b) {
		return true
	}
	p.Y++
	return false
}

func (p *FallingPiece) MoveLeft(b *board.Board) bool {
	if !p.Fits(b, p.X-1, p.Y) {
		return false
	}
	p.X--
	return true
}

func (p *FallingPiece) MoveRight(b *board.Board) bool {
	if !p.Fits(b, p.X+1, p.Y) {
		return false
	}
	p.X++
	return true
}

// HardDrop drops the piece to its resting position and returns the number of rows it fell.
func (p *FallingPiece) HardDrop(b *board.Board) int {
	rows := 0
	for p.CanDescend(b) {
		p.Y++
		rows++
	}
	return rows
}

// Rotate turns the piece clockwise, trying each wall kick for the new orientation in table
// order. If none fits the rotation is undone and the piece is left where it was. O pieces
// look the same in every orientation, so only their counter advances and false is returned.
func (p *FallingPiece) Rotate(b *board.Board) bool {
	if p.Kind == piece.O {
		p.Piece.Rotate()
		return false
	}
	p.Piece.Rotate()
	primary := piece.IsPrimary(p.Kind)
	for i := range piece.KickCount {
		dx, dy := piece.Kick(primary, p.Orientation, i)
		if p.Fits(b, p.X+dx, p.Y+dy) {
			p.X += dx
			p.Y += dy
			return true
		}
	}
	p.Piece.UndoRotate()
	return false
}

// IsAboveBoard reports whether any cell of the piece is above row 0.
func (p *FallingPiece) IsAboveBoard() bool {
	above := false
	p.Shape().Cells(func(_, row int) bool {
		above = p.Y+row < 0
		return !above
	})
	return above
}
