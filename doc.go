// Package timetree provides a hierarchical timer for annotating call graphs with
// timing and contextual metadata.
//
// A [Timer] measures one named operation and owns any number of child timers
// created with [Timer.Split]. Each timer is closed with [Timer.End], directly or
// through one of the completion wrappers ([Timer.Wrap], [Wrap1], [Wrap2R], ...),
// and the whole tree is turned into a plain [Result] suitable for JSON encoding
// or structured logging:
//
//	timer := timetree.New("request", nil, nil)
//
//	db := timer.Split("db", map[string]any{"query": "SELECT 1"})
//	rows, err := query()
//	db.End()
//
//	render := timer.Split("render", nil)
//	go renderAsync(rows, render.Wrap(func() { ... }))
//
//	timer.End()
//	slog.Info("request served", "timings", timer)
//
// Durations are reported in fractional milliseconds. A timer that was never
// ended reports a null duration, which marks an in-flight or abandoned
// measurement rather than an error.
//
// Timers are not safe for concurrent mutation. Splitting the same parent from
// several goroutines must be serialized by the caller, ending distinct timers
// concurrently is fine.
package timetree
