package core

// RuntimeConfig carries the terminal size and playback speed to the viewers.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TurnRate int // Turns played per second during playback
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TurnRate: 4,
	}
}

// PlaybackState is what the viewer shows in its status line.
type PlaybackState struct {
	Turn     int  // Turns played so far
	Done     bool // Every adventurer finished
	Paused   bool
	Treasure int // Units still on the map
}
