package advanced

import "go.uber.org/zap"

// Relative tolerance used when none is configured. Areas are compared against
// DefaultTolerance * extent^2, where extent is the size of the projected face.
const DefaultTolerance = 1e-9

type config struct {
	logger    *zap.Logger
	tolerance float64
}

type Option func(*config)

// Trace strategy fallbacks (debug) and abandoned sub-polygons (warn).
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Relative tolerance for collinearity and containment tests. Non-positive
// values are ignored.
func WithTolerance(tolerance float64) Option {
	return func(c *config) {
		if tolerance > 0 {
			c.tolerance = tolerance
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		logger:    zap.NewNop(),
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
