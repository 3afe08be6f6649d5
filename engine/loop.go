package engine

import (
	"context"
	"time"
)

// Loop feeds polled input and clock ticks into a State. It dispatches an action only on the
// transition from no input to some input, so a held key acts once.
type Loop struct {
	state *State
	clock *Clock
	// prevNeutral is whether the previous sample was ActionNone.
	prevNeutral bool
}

func NewLoop(s *State, c *Clock) *Loop {
	return &Loop{state: s, clock: c, prevNeutral: true}
}

// Reset swaps in a new game, as if no key had been held.
func (l *Loop) Reset(s *State, c *Clock) {
	l.state = s
	l.clock = c
	l.prevNeutral = true
}

func (l *Loop) State() *State { return l.state }
func (l *Loop) Clock() *Clock { return l.clock }

// Step runs one poll with the sampled input. An edge-triggered action suppresses the clock
// tick of the same poll, and so does a release.
func (l *Loop) Step(in Action) {
	elapsed := l.clock.Tick()
	curNeutral := in == ActionNone
	switch {
	case l.prevNeutral && !curNeutral:
		l.state.OnAction(in)
	case l.prevNeutral == curNeutral && elapsed:
		l.state.OnClockTick()
	}
	l.prevNeutral = curNeutral
	if l.state.GameOver() {
		l.clock.Stop()
	}
}

// Run polls input every period and calls frame after each step, until ctx is done.
func (l *Loop) Run(ctx context.Context, period time.Duration, input func() Action, frame func()) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			l.Step(input())
			frame()
		}
	}
}
