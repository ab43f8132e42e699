package timeutil

import (
	"math"
	"os"
	"strings"
	"sync"
	"time"
)

//go:generate go tool mockgen -destination=../testutil/clockmock/clock.go -package=clockmock github.com/skybet/time-tree/internal/timeutil Clock

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// Monotonic reads [time.Now], keeping the monotonic clock reading.
// Differences between two readings have nanosecond resolution and are not
// affected by wall-clock adjustments.
type Monotonic struct{}

func (Monotonic) Now() time.Time { return time.Now() }

func (Monotonic) String() string { return "monotonic" }

// Millis reads the wall clock truncated to milliseconds.
// It is the coarse fallback for hosts without a usable monotonic source.
type Millis struct{}

func (Millis) Now() time.Time { return time.UnixMilli(time.Now().UnixMilli()) }

func (Millis) String() string { return "millis" }

// Manual is a clock that only moves when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a new [Manual] clock set to start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current clock reading.
func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *Manual) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new reading.
func (c *Manual) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

func (*Manual) String() string { return "manual" }

// EnvClock is the environment variable consulted by [FromEnv].
const EnvClock = "TIMETREE_CLOCK"

// Parse returns the clock registered under the given name.
// Recognized names are "monotonic" (also "hrtime") and "millis" (also "wall").
func Parse(name string) (Clock, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "monotonic", "hrtime":
		return Monotonic{}, true
	case "millis", "wall":
		return Millis{}, true
	default:
		return nil, false
	}
}

// FromEnv resolves the clock named by [EnvClock].
// Unknown or empty values fall back to [Monotonic].
func FromEnv() Clock {
	if c, ok := Parse(os.Getenv(EnvClock)); ok {
		return c
	}
	return Monotonic{}
}

// Since returns the time elapsed on c since start, never negative.
func Since(c Clock, start time.Time) time.Duration {
	d := c.Now().Sub(start)
	if d < 0 {
		return 0
	}
	return d
}

// ToMillis converts d to fractional milliseconds.
func ToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// FromMillis converts fractional milliseconds to a duration.
func FromMillis(ms float64) time.Duration {
	return time.Duration(math.Round(ms * float64(time.Millisecond)))
}
