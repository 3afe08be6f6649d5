package engine

// Config holds the tunables of a game.
type Config struct {
	// Width and Height are the board dimensions in cells.
	Width, Height int
	// QueueSize is the number of upcoming pieces kept in the queue.
	QueueSize int
	// ClockPeriod is the number of polls between two clock ticks.
	ClockPeriod int
	// AnimationLength is the number of clock ticks the line-clear flash lasts.
	AnimationLength int
	// PointsPerRow is added to the score for every cleared row.
	PointsPerRow int
	// Seed seeds the generator that picks upcoming pieces.
	Seed int64
}

// DefaultConfig returns the standard 10x20 game.
func DefaultConfig() Config {
	return Config{
		Width:           10,
		Height:          20,
		QueueSize:       5,
		ClockPeriod:     20,
		AnimationLength: 6,
		PointsPerRow:    100,
		Seed:            1,
	}
}
