package engine

import (
	"context"
	"testing"
	"time"

	"github.com/deitrix/brickfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// everyPoll returns a loop whose clock elapses on every poll.
func everyPoll(k piece.Kind) *Loop {
	s := newWithFalling(k)
	return NewLoop(s, NewClock(1))
}

func TestLoop_EdgeTriggeredInput(t *testing.T) {
	l := everyPoll(piece.T)
	f := l.State().Falling()

	l.Step(ActionNone)
	require.True(t, f.Spawned)
	x, y := f.X, f.Y

	l.Step(ActionLeft)
	assert.Equal(t, x-1, f.X, "press moves once")
	assert.Equal(t, y, f.Y, "the action replaces the tick")

	l.Step(ActionLeft)
	assert.Equal(t, x-1, f.X, "held key does not repeat")
	assert.Equal(t, y+1, f.Y, "gravity runs while held")

	l.Step(ActionNone)
	assert.Equal(t, y+1, f.Y, "release skips the tick")

	l.Step(ActionNone)
	assert.Equal(t, y+2, f.Y)

	l.Step(ActionRight)
	assert.Equal(t, x, f.X)
}

func TestLoop_RespectsClockPeriod(t *testing.T) {
	s := newWithFalling(piece.T)
	l := NewLoop(s, NewClock(3))
	l.Step(ActionNone)
	l.Step(ActionNone)
	assert.False(t, s.Falling().Spawned)
	l.Step(ActionNone)
	assert.True(t, s.Falling().Spawned)
}

func TestLoop_StopsClockOnGameOver(t *testing.T) {
	l := everyPoll(piece.T)
	for row := range 20 {
		l.State().Board().Set(row, 4, true)
	}
	l.Step(ActionNone)
	require.True(t, l.State().GameOver())
	assert.True(t, l.Clock().Stopped())
	assert.False(t, l.Clock().Tick())
}

func TestLoop_Run(t *testing.T) {
	l := everyPoll(piece.T)
	ctx, cancel := context.WithCancel(context.Background())
	frames := 0
	err := l.Run(ctx, time.Millisecond, func() Action { return ActionNone }, func() {
		frames++
		if frames == 3 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, frames)
	assert.True(t, l.State().Falling().Spawned)
}

func TestLoop_Reset(t *testing.T) {
	l := everyPoll(piece.T)
	l.Step(ActionLeft)
	fresh := New(DefaultConfig())
	l.Reset(fresh, NewClock(1))
	assert.Same(t, fresh, l.State())
	// The held key from before the reset counts as a new press.
	l.Step(ActionNone)
	x := fresh.Falling().X
	l.Step(ActionLeft)
	assert.Equal(t, x-1, fresh.Falling().X)
}
