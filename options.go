package htable

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultInitialCapacity is the bucket count of a table built by New.
	DefaultInitialCapacity = 16
	// DefaultLoadFactor is the live-entry ratio at which the table doubles.
	DefaultLoadFactor = 0.6
	// MinLoadFactor is the smallest load factor WithLoadFactor accepts.
	MinLoadFactor = 0.1
)

var (
	// ErrInvalidOption is wrapped by every option validation failure.
	ErrInvalidOption = errors.New("htable: invalid option")
	// ErrProbeExhausted means an insert walked every bucket without finding
	// one to claim. The load factor check makes this unreachable.
	ErrProbeExhausted = errors.New("htable: probe exhausted without a free bucket")
	// ErrClosed is raised by mutating a table after Close.
	ErrClosed = errors.New("htable: use of closed table")
)

var discardLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

type config struct {
	initialCap int
	loadFactor float64
	logger     logrus.FieldLogger
}

func defaultConfig() config {
	return config{
		initialCap: DefaultInitialCapacity,
		loadFactor: DefaultLoadFactor,
		logger:     discardLogger,
	}
}

// Option configures a Table built by NewWithOptions.
type Option func(*config) error

// WithInitialCapacity sets the starting bucket count. It must be a positive
// power of two.
func WithInitialCapacity(n int) Option {
	return func(c *config) error {
		if n <= 0 || n&(n-1) != 0 {
			return fmt.Errorf("%w: initial capacity %d is not a positive power of two", ErrInvalidOption, n)
		}
		c.initialCap = n
		return nil
	}
}

// WithLoadFactor sets the live-entry ratio that triggers a resize. It must be
// in [MinLoadFactor, 1) so every insert probe has a bucket to claim and a
// resize never needs more than a few doublings.
func WithLoadFactor(f float64) Option {
	return func(c *config) error {
		if !(f >= MinLoadFactor && f < 1) {
			return fmt.Errorf("%w: load factor %v is outside [%v, 1)", ErrInvalidOption, f, MinLoadFactor)
		}
		c.loadFactor = f
		return nil
	}
}

// WithLogger routes resize events to l. A nil logger is rejected.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidOption)
		}
		c.logger = l
		return nil
	}
}
