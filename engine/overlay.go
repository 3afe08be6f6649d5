package engine

import "github.com/kamstrup/intmap"

// Overlay is the set of cells a renderer shows as filled: the board's occupied cells plus
// the falling piece's cells on or below row 0. Cells are keyed by row*width+col.
type Overlay struct {
	width, height int
	occupied      *intmap.Map[int, struct{}]
}

func OverlayOf(snap Snapshot) *Overlay {
	o := &Overlay{
		width:    snap.Width,
		height:   snap.Height,
		occupied: intmap.New[int, struct{}](snap.Width * snap.Height),
	}
	for i, filled := range snap.Cells {
		if filled {
			o.occupied.Put(i, struct{}{})
		}
	}
	if snap.Spawned {
		snap.FallingShape.Cells(func(col, row int) bool {
			x, y := snap.FallingX+col, snap.FallingY+row
			if y >= 0 && y < o.height && x >= 0 && x < o.width {
				o.occupied.Put(y*o.width+x, struct{}{})
			}
			return true
		})
	}
	return o
}

func (o *Overlay) Occupied(row, col int) bool {
	if row < 0 || row >= o.height || col < 0 || col >= o.width {
		return false
	}
	_, ok := o.occupied.Get(row*o.width + col)
	return ok
}

func (o *Overlay) Len() int {
	return o.occupied.Len()
}

// CellChange is one cell a renderer has to repaint.
type CellChange struct {
	Row, Col int
	Occupied bool
}

// Diff lists the cells whose occupancy differs from prev. With no previous overlay, or one
// of a different size, every cell is listed.
func (o *Overlay) Diff(prev *Overlay) []CellChange {
	full := prev == nil || prev.width != o.width || prev.height != o.height
	var changes []CellChange
	for row := range o.height {
		for col := range o.width {
			occ := o.Occupied(row, col)
			if full || occ != prev.Occupied(row, col) {
				changes = append(changes, CellChange{Row: row, Col: col, Occupied: occ})
			}
		}
	}
	return changes
}

// Frame is what a renderer needs to bring its output up to date.
type Frame struct {
	Snapshot
	// Full is set on the first frame and after Invalidate; Changes then lists every cell.
	Full    bool
	Changes []CellChange
	// QueueChanged, ScoreChanged and StatusChanged tell the renderer which side panels
	// need repainting.
	QueueChanged  bool
	ScoreChanged  bool
	StatusChanged bool
}

// Differ tracks what was last rendered so that each frame only carries what changed.
type Differ struct {
	prev     *Overlay
	score    int
	lines    int
	gameOver bool
	phase    Phase
}

// Invalidate makes the next frame a full repaint.
func (d *Differ) Invalidate() {
	d.prev = nil
}

// Next computes the frame for the current state and records it as rendered. It consumes
// the queue's changed flag.
func (d *Differ) Next(s *State) Frame {
	snap := s.Snapshot()
	overlay := OverlayOf(snap)
	full := d.prev == nil
	f := Frame{
		Snapshot:      snap,
		Full:          full,
		Changes:       overlay.Diff(d.prev),
		QueueChanged:  full || snap.UpcomingChanged,
		ScoreChanged:  full || snap.Score != d.score || snap.LinesCleared != d.lines,
		StatusChanged: full || snap.GameOver != d.gameOver || snap.Phase != d.phase,
	}
	s.Queue().ClearChanged()
	d.prev = overlay
	d.score = snap.Score
	d.lines = snap.LinesCleared
	d.gameOver = snap.GameOver
	d.phase = snap.Phase
	return f
}
