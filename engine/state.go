// Package engine runs the falling-block simulation: the falling piece, the upcoming queue,
// the tick clock, the game state machine and the loop that feeds it input.
package engine

import (
	"github.com/deitrix/brickfall/board"
	"github.com/deitrix/brickfall/piece"
	"github.com/deitrix/brickfall/rng"
)

// Phase is the state of the game state machine.
type Phase int

const (
	// Playing is normal play: the clock drives gravity and actions move the piece.
	Playing Phase = iota
	// LineClearAnimating flashes completed rows; the clock drives the flash and actions
	// are ignored.
	LineClearAnimating
	// GameOver is terminal.
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case LineClearAnimating:
		return "line-clear"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// Action is one decoded input sample.
type Action int

const (
	ActionNone Action = iota
	ActionRotate
	ActionDrop
	ActionLeft
	ActionRight
)

// State owns everything that changes during a game.
type State struct {
	cfg     Config
	board   *board.Board
	falling FallingPiece
	queue   *Queue

	score        int
	linesCleared int
	phase        Phase
	// frame counts clock ticks since the current line-clear animation began.
	frame int
}

// New starts a game. The first piece is taken from the queue but not spawned until the
// first clock tick.
func New(cfg Config) *State {
	s := &State{
		cfg:   cfg,
		board: board.New(cfg.Width, cfg.Height),
		queue: NewQueue(cfg.QueueSize, rng.New(uint64(cfg.Seed))),
	}
	s.falling = FallingPiece{Piece: piece.Piece{Kind: s.queue.Dequeue()}}
	return s
}

func (s *State) Config() Config         { return s.cfg }
func (s *State) Board() *board.Board    { return s.board }
func (s *State) Falling() *FallingPiece { return &s.falling }
func (s *State) Queue() *Queue          { return s.queue }
func (s *State) Score() int             { return s.score }
func (s *State) LinesCleared() int      { return s.linesCleared }
func (s *State) Phase() Phase           { return s.phase }
func (s *State) GameOver() bool         { return s.phase == GameOver }

// OnClockTick advances time by one clock period.
func (s *State) OnClockTick() {
	switch s.phase {
	case GameOver:
		return
	case LineClearAnimating:
		s.frame++
		s.board.TickAnimation(s.frame%2 == 0)
		if s.frame >= s.cfg.AnimationLength {
			s.board.ClearCompleteRows()
			s.phase = Playing
		}
		return
	}

	if !s.falling.Spawned {
		s.falling.Spawn(s.board)
	}
	if !s.falling.TickGravity(s.board) {
		return
	}

	s.board.Lock(s.falling.Piece, s.falling.X, s.falling.Y)
	if s.falling.IsAboveBoard() {
		s.phase = GameOver
		return
	}
	s.falling = FallingPiece{Piece: piece.Piece{Kind: s.queue.Dequeue()}}

	rows := s.board.CountCompleteRows()
	if rows == 0 {
		return
	}
	s.score += s.cfg.PointsPerRow * rows
	s.linesCleared += rows
	s.board.BeginLineClearAnimation()
	s.frame = 0
	s.phase = LineClearAnimating
}

// OnAction applies one player action. Actions are ignored during the line-clear animation,
// before the piece has spawned and after the game is over.
func (s *State) OnAction(a Action) {
	if s.phase != Playing || !s.falling.Spawned {
		return
	}
	switch a {
	case ActionLeft:
		s.falling.MoveLeft(s.board)
	case ActionRight:
		s.falling.MoveRight(s.board)
	case ActionDrop:
		s.falling.HardDrop(s.board)
	case ActionRotate:
		s.falling.Rotate(s.board)
	}
}

// Snapshot is a read-only copy of the state for renderers.
type Snapshot struct {
	Width, Height int
	// Cells is the row-major board occupancy, without the falling piece.
	Cells []bool

	// Spawned reports whether the falling piece is on the board. The remaining falling
	// fields are meaningful only when it is.
	Spawned      bool
	FallingKind  piece.Kind
	FallingShape piece.Shape
	FallingX     int
	FallingY     int

	Score        int
	LinesCleared int
	GameOver     bool
	Phase        Phase

	Upcoming []piece.Kind
	// UpcomingChanged reports whether the queue moved since it was last rendered.
	UpcomingChanged bool
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Width:           s.board.Width(),
		Height:          s.board.Height(),
		Cells:           s.board.Cells(),
		Spawned:         s.falling.Spawned,
		Score:           s.score,
		LinesCleared:    s.linesCleared,
		GameOver:        s.phase == GameOver,
		Phase:           s.phase,
		Upcoming:        s.queue.Peek(),
		UpcomingChanged: s.queue.Changed(),
	}
	if s.falling.Spawned {
		snap.FallingKind = s.falling.Kind
		snap.FallingShape = s.falling.Shape()
		snap.FallingX = s.falling.X
		snap.FallingY = s.falling.Y
	}
	return snap
}
