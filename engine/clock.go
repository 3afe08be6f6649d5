package engine

// Clock counts polls and signals once every period polls.
type Clock struct {
	period  int
	current int
	stopped bool
}

func NewClock(period int) *Clock {
	return &Clock{period: max(period, 1)}
}

// Tick advances the clock by one poll and reports whether a full period elapsed. A stopped
// clock never elapses and never advances.
func (c *Clock) Tick() bool {
	if c.stopped {
		return false
	}
	c.current++
	if c.current >= c.period {
		c.current = 0
		return true
	}
	return false
}

// Stop halts the clock for good.
func (c *Clock) Stop() {
	c.stopped = true
}

func (c *Clock) Stopped() bool { return c.stopped }
func (c *Clock) Current() int  { return c.current }
func (c *Clock) Period() int   { return c.period }
