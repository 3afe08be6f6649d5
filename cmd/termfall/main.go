// Command termfall plays the game in a terminal.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/deitrix/brickfall/config"
	"github.com/deitrix/brickfall/engine"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

// pollPeriod is the time between two input polls.
const pollPeriod = time.Second / 60

func main() {
	log.SetFlags(0)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatalf("termfall: %v", err)
	}
}

func run(cfg engine.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}

	// Log lines would tear the screen, so they are held until it is torn down.
	var logs bytes.Buffer
	log.SetOutput(&logs)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// PollEvent blocks, so it runs on its own goroutine and only forwards events. Game
	// state is touched by the loop alone.
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	t := &terminal{screen: screen, cfg: cfg, events: events, quit: cancel}
	t.start()
	err = t.loop.Run(ctx, pollPeriod, t.input, t.frame)
	screen.Fini()
	log.SetOutput(os.Stderr)
	os.Stderr.Write(logs.Bytes())
	s := t.loop.State()
	log.Printf("game %s ended: score %d, lines %d", t.id, s.Score(), s.LinesCleared())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type terminal struct {
	screen tcell.Screen
	cfg    engine.Config
	events <-chan tcell.Event
	quit   context.CancelFunc

	id           uuid.UUID
	loop         *engine.Loop
	differ       engine.Differ
	reportedOver bool
}

func (t *terminal) start() {
	t.id = uuid.New()
	t.reportedOver = false
	state := engine.New(t.cfg)
	clock := engine.NewClock(t.cfg.ClockPeriod)
	if t.loop == nil {
		t.loop = engine.NewLoop(state, clock)
	} else {
		t.loop.Reset(state, clock)
	}
	t.differ.Invalidate()
	log.Printf("game %s started (seed %d)", t.id, t.cfg.Seed)
}

// input drains pending events and returns the action of the last key seen this poll.
// Terminals report presses only, so a key counts as held for the polls its repeats arrive.
func (t *terminal) input() engine.Action {
	action := engine.ActionNone
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.quit()
				return action
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
				t.differ.Invalidate()
			case *tcell.EventKey:
				action = t.key(ev)
			}
		default:
			return action
		}
	}
}

func (t *terminal) key(ev *tcell.EventKey) engine.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit()
	case tcell.KeyUp:
		return engine.ActionRotate
	case tcell.KeyDown:
		return engine.ActionDrop
	case tcell.KeyLeft:
		return engine.ActionLeft
	case tcell.KeyRight:
		return engine.ActionRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			t.quit()
		case 'r':
			t.cfg.Seed++
			t.start()
		case ' ':
			return engine.ActionDrop
		}
	}
	return engine.ActionNone
}

func (t *terminal) frame() {
	if s := t.loop.State(); s.GameOver() && !t.reportedOver {
		t.reportedOver = true
		log.Printf("game %s over: score %d, lines %d", t.id, s.Score(), s.LinesCleared())
	}
	paint(t.screen, t.differ.Next(t.loop.State()))
}
