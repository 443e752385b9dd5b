package core

// RuntimeConfig describes the terminal and RNG a screen starts with.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for board generation, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// WithSize returns a copy of c with the given screen size.
func (c RuntimeConfig) WithSize(w, h int) RuntimeConfig {
	c.ScreenW = w
	c.ScreenH = h
	return c
}
