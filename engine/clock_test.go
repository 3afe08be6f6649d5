package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_Period(t *testing.T) {
	c := NewClock(3)
	var got []bool
	for range 7 {
		got = append(got, c.Tick())
	}
	assert.Equal(t, []bool{false, false, true, false, false, true, false}, got)
	assert.Equal(t, 1, c.Current())
}

func TestClock_StopIsSticky(t *testing.T) {
	c := NewClock(2)
	c.Tick()
	c.Stop()
	for range 10 {
		assert.False(t, c.Tick())
		assert.Equal(t, 1, c.Current())
	}
	c.Stop()
	assert.True(t, c.Stopped())
}

func TestClock_NonPositivePeriod(t *testing.T) {
	c := NewClock(0)
	assert.True(t, c.Tick())
	assert.Equal(t, 1, c.Period())
}
