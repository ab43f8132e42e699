// Package timeutil provides the clock sources used to measure timer durations.
//
// A [Clock] only has to report the current instant. Durations are always computed
// as the difference of two readings of the same clock, so a timer tree built with
// one clock never mixes resolutions:
//
//	// High resolution, monotonic readings.
//	var c timeutil.Clock = timeutil.Monotonic{}
//
//	// Coarse wall-clock readings truncated to milliseconds.
//	c = timeutil.Millis{}
//
//	// Deterministic readings for tests.
//	m := timeutil.NewManual(time.Unix(0, 0))
//	m.Advance(150 * time.Millisecond)
//
// [Manual] is safe for concurrent use, the other clocks are stateless.
package timeutil
