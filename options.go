package timetree

import (
	"log/slog"
	"sync"
	"time"

	"github.com/skybet/time-tree/internal/log"
	"github.com/skybet/time-tree/internal/timeutil"
)

// Options configures a root timer created with [New].
// Child timers created with [Timer.Split] inherit the options of their parent.
type Options struct {
	// Clock is the clock source used to measure the timer and all of its children.
	// If nil, [DefaultClock] is used.
	Clock Clock
	// Logger is the logger used by the timer and all of its children.
	// If nil, a noop logger is used.
	Logger *slog.Logger
}

func (o *Options) clock() Clock {
	if o == nil || o.Clock == nil {
		return DefaultClock()
	}
	return o.Clock
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Noop
	}
	return o.Logger
}

// Clock reports the current instant.
// Durations are computed as a difference of two readings of the same clock.
type Clock = timeutil.Clock

// ManualClock is a [Clock] that only moves when told to.
// It is intended for deterministic tests.
type ManualClock = timeutil.Manual

// NewManualClock creates a new [ManualClock] set to start.
func NewManualClock(start time.Time) *ManualClock { return timeutil.NewManual(start) }

var (
	// MonotonicClock is the high resolution clock based on the monotonic time source.
	MonotonicClock Clock = timeutil.Monotonic{}
	// MillisClock is the coarse wall clock with millisecond resolution.
	MillisClock Clock = timeutil.Millis{}
)

var defClock = sync.OnceValue(timeutil.FromEnv)

// DefaultClock returns the process-wide clock used by timers created without
// an explicit [Options.Clock].
//
// It is resolved once from the TIMETREE_CLOCK environment variable:
// "monotonic" (default) or "millis" to force the coarse wall clock.
func DefaultClock() Clock { return defClock() }
