package timetree

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"braces.dev/errtrace"

	"github.com/skybet/time-tree/internal/timeutil"
)

// Result is a plain snapshot of a timer and its descendants.
//
// Duration is in milliseconds and nil until the timer is ended; it is always
// encoded, as null when nil. Context and Timers are omitted when absent.
type Result struct {
	Name     string   `json:"name" yaml:"name"`
	Duration *float64 `json:"duration" yaml:"duration"`
	Context  any      `json:"context,omitempty" yaml:"context,omitempty"`
	Timers   []Result `json:"timers,omitempty" yaml:"timers,omitempty"`
}

// Result returns a snapshot of the timer tree, children in the order they were split.
// It can be called at any time, unfinished timers report a nil duration.
func (t *Timer) Result() Result {
	if t == nil {
		return Result{}
	}

	res := Result{
		Name:     t.name,
		Duration: t.millis(),
		Context:  t.data,
	}
	if len(t.timers) > 0 {
		res.Timers = make([]Result, len(t.timers))
		for i, sub := range t.timers {
			res.Timers[i] = sub.Result()
		}
	}
	return res
}

// MarshalJSON implements [json.Marshaler].
func (t *Timer) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(t.Result()))
}

// Ended reports whether the snapshotted timer was ended.
func (r Result) Ended() bool { return r.Duration != nil }

// Millis returns the duration in milliseconds.
// It reports false if the snapshotted timer was not ended.
func (r Result) Millis() (float64, bool) {
	if r.Duration == nil {
		return 0, false
	}
	return *r.Duration, true
}

// Elapsed returns the duration as [time.Duration].
// It reports false if the snapshotted timer was not ended.
func (r Result) Elapsed() (time.Duration, bool) {
	ms, ok := r.Millis()
	if !ok {
		return 0, false
	}
	return timeutil.FromMillis(ms), true
}

// Walk visits the result and all of its descendants in pre-order.
// The root has depth 0. Returning false from fn skips the children of the visited result.
func (r Result) Walk(fn func(res Result, depth int) bool) {
	r.walk(fn, 0)
}

func (r Result) walk(fn func(Result, int) bool, depth int) {
	if !fn(r, depth) {
		return
	}
	for _, sub := range r.Timers {
		sub.walk(fn, depth+1)
	}
}

// LogValue implements [slog.LogValuer].
// Children are logged as nested groups keyed by their index.
func (r Result) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs, slog.String("name", r.Name))
	if ms, ok := r.Millis(); ok {
		attrs = append(attrs, slog.Float64("duration", ms))
	} else {
		attrs = append(attrs, slog.Any("duration", nil))
	}
	if r.Context != nil {
		attrs = append(attrs, slog.Any("context", r.Context))
	}
	if len(r.Timers) > 0 {
		subs := make([]slog.Attr, len(r.Timers))
		for i, sub := range r.Timers {
			subs[i] = slog.Attr{Key: strconv.Itoa(i), Value: sub.LogValue()}
		}
		attrs = append(attrs, slog.Attr{Key: "timers", Value: slog.GroupValue(subs...)})
	}
	return slog.GroupValue(attrs...)
}
