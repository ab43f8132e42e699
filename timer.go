package timetree

import (
	"log/slog"
	"reflect"
	"time"

	"github.com/skybet/time-tree/internal/timeutil"
)

// Timer measures the elapsed time of a named operation and owns the timers of
// its sub-operations.
//
// The zero value is not usable, create timers with [New] or [Timer.Split].
type Timer struct {
	name   string
	data   any
	clock  Clock
	log    *slog.Logger
	start  time.Time
	dur    time.Duration
	ended  bool
	timers []*Timer
}

// New creates a new root timer and starts it.
//
// Data is optional context metadata passed through to [Timer.Result] unchanged,
// nil (typed nils included) means no context.
// Options are optional, default options are used if nil (see [Options]).
//
// The name is not validated: empty names are accepted and matched by plain
// string equality in [Timer.SubTimer] and [Timer.SubTimers].
func New(name string, data any, opts *Options) *Timer {
	return newTimer(name, data, opts.clock(), opts.log())
}

func newTimer(name string, data any, clock Clock, logger *slog.Logger) *Timer {
	return &Timer{
		name:  name,
		data:  contextData(data),
		clock: clock,
		log:   logger,
		start: clock.Now(),
	}
}

// Name returns the timer name.
func (t *Timer) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Context returns the context metadata of the timer, nil if none was set.
func (t *Timer) Context() any {
	if t == nil {
		return nil
	}
	return t.data
}

// SetContext replaces the context metadata of the timer.
// Setting nil, including a typed nil such as a nil map or pointer, removes the
// context from [Timer.Result].
func (t *Timer) SetContext(data any) *Timer {
	t.data = contextData(data)
	return t
}

// contextData folds typed nils into an untyped nil, so that an unset context
// is omitted from results rather than encoded as null.
func contextData(data any) any {
	if data == nil {
		return nil
	}
	switch v := reflect.ValueOf(data); v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return nil
		}
	default:
	}
	return data
}

// Split creates a new child timer, starts it and appends it to the timer's children.
// The child shares the clock and the logger of its parent and is completely
// independent of it otherwise: ending one never ends the other.
func (t *Timer) Split(name string, data any) *Timer {
	sub := newTimer(name, data, t.clock, t.log)
	t.timers = append(t.timers, sub)
	return sub
}

// Timers returns the direct children of the timer in the order they were split.
func (t *Timer) Timers() []*Timer {
	if t == nil || len(t.timers) == 0 {
		return nil
	}
	return append([]*Timer(nil), t.timers...)
}

// End stops the timer and freezes its duration.
// Only the first call has an effect, subsequent calls keep the duration computed
// by the first one.
func (t *Timer) End() *Timer {
	if t.ended {
		t.log.Debug("timer already ended", "timer", t.name, "duration", t.dur)
		return t
	}

	t.dur = timeutil.Since(t.clock, t.start)
	t.ended = true
	t.log.Debug("timer ended", "timer", t.name, "duration", t.dur)
	return t
}

// Ended reports whether [Timer.End] was called.
func (t *Timer) Ended() bool {
	return t != nil && t.ended
}

// Duration returns the measured duration.
// It reports false if the timer was not ended yet.
func (t *Timer) Duration() (time.Duration, bool) {
	if t == nil || !t.ended {
		return 0, false
	}
	return t.dur, true
}

// Elapsed returns the time elapsed since the timer started.
// For an ended timer it equals the frozen duration.
func (t *Timer) Elapsed() time.Duration {
	if t == nil {
		return 0
	}
	if t.ended {
		return t.dur
	}
	return timeutil.Since(t.clock, t.start)
}

func (t *Timer) millis() *float64 {
	if !t.ended {
		return nil
	}
	ms := timeutil.ToMillis(t.dur)
	return &ms
}

// LogValue implements [slog.LogValuer].
// The timer is logged as a group with the same fields as [Result].
func (t *Timer) LogValue() slog.Value {
	if t == nil {
		return slog.Value{}
	}
	return t.Result().LogValue()
}
