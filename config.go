package depot

import (
	"io"
	"log/slog"
)

type config struct {
	maxComponents int
	capacity      int
	logger        *slog.Logger
}

func defaultConfig() config {
	return config{
		maxComponents: MaskCapacity,
		capacity:      64,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a World.
type Option func(*config)

// WithMaxComponents caps how many component types the world accepts. The cap
// cannot exceed MaskCapacity.
func WithMaxComponents(n int) Option {
	return func(c *config) {
		if n < 0 || n > MaskCapacity {
			panic(ComponentCapacityError{Capacity: MaskCapacity})
		}
		c.maxComponents = n
	}
}

// WithCapacity sets how many entity slots are reserved up front.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithLogger routes the world's diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
