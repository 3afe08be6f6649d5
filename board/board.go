// Package board holds the occupancy grid that locked pieces are committed into, along with
// the bookkeeping for the line-clear flash.
package board

import "github.com/deitrix/brickfall/piece"

// Board is a width x height occupancy grid. Row 0 is the top of the visible board.
type Board struct {
	width, height int
	// cells is row-major, cells[row*width+col].
	cells []bool
	// animating marks the rows that were complete when the current line-clear animation
	// began. It stays frozen until ClearCompleteRows runs.
	animating []bool
}

func New(width, height int) *Board {
	return &Board{
		width:     width,
		height:    height,
		cells:     make([]bool, width*height),
		animating: make([]bool, height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) inRange(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// Occupied reports whether the cell is filled. Cells outside the board are never occupied.
func (b *Board) Occupied(row, col int) bool {
	if !b.inRange(row, col) {
		return false
	}
	return b.cells[row*b.width+col]
}

// Set fills or empties a cell. Out-of-range cells are ignored.
func (b *Board) Set(row, col int, occupied bool) {
	if !b.inRange(row, col) {
		return
	}
	b.cells[row*b.width+col] = occupied
}

// Lock commits the occupied cells of p, anchored with its box's top-left at (x, y). Cells
// that fall outside the board, including any above row 0, are dropped.
func (b *Board) Lock(p piece.Piece, x, y int) {
	p.Shape().Cells(func(col, row int) bool {
		b.Set(y+row, x+col, true)
		return true
	})
}

func (b *Board) RowComplete(row int) bool {
	if row < 0 || row >= b.height {
		return false
	}
	for _, filled := range b.cells[row*b.width : (row+1)*b.width] {
		if !filled {
			return false
		}
	}
	return true
}

func (b *Board) CountCompleteRows() int {
	n := 0
	for row := range b.height {
		if b.RowComplete(row) {
			n++
		}
	}
	return n
}

// BeginLineClearAnimation snapshots which rows are complete right now.
func (b *Board) BeginLineClearAnimation() {
	for row := range b.height {
		b.animating[row] = b.RowComplete(row)
	}
}

func (b *Board) Animating(row int) bool {
	if row < 0 || row >= b.height {
		return false
	}
	return b.animating[row]
}

// AnimatingRows returns the indexes of the rows flagged for clearing, top to bottom.
func (b *Board) AnimatingRows() []int {
	var rows []int
	for row, a := range b.animating {
		if a {
			rows = append(rows, row)
		}
	}
	return rows
}

// TickAnimation forces every cell of the animating rows to visible.
func (b *Board) TickAnimation(visible bool) {
	for row, a := range b.animating {
		if !a {
			continue
		}
		for col := range b.width {
			b.cells[row*b.width+col] = visible
		}
	}
}

// ClearCompleteRows removes the animating rows and drops everything above them. The
// compacted grid is built from the old one in a single bottom-up pass into a fresh buffer.
func (b *Board) ClearCompleteRows() {
	cleared := 0
	next := make([]bool, len(b.cells))
	for row := b.height - 1; row >= 0; row-- {
		if b.animating[row] {
			cleared++
			continue
		}
		dest := row + cleared
		copy(next[dest*b.width:(dest+1)*b.width], b.cells[row*b.width:(row+1)*b.width])
	}
	if cleared == 0 {
		return
	}
	// The top `cleared` rows of next were never written and are already empty.
	b.cells = next
	clear(b.animating)
}

// Cells returns a copy of the row-major occupancy.
func (b *Board) Cells() []bool {
	out := make([]bool, len(b.cells))
	copy(out, b.cells)
	return out
}

// Reset empties the board and drops any pending animation.
func (b *Board) Reset() {
	clear(b.cells)
	clear(b.animating)
}
