package timetree

import "context"

type ctxKey struct{}

// NewContext returns a copy of ctx carrying t.
func NewContext(ctx context.Context, t *Timer) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext returns the timer carried by ctx.
func FromContext(ctx context.Context) (*Timer, bool) {
	t, ok := ctx.Value(ctxKey{}).(*Timer)
	return t, ok && t != nil
}

// Start splits the timer carried by ctx or, if there is none, creates a new root
// timer with default options. The returned context carries the new timer, so
// nested calls of Start build the tree following the call graph.
//
// Splitting is not synchronized: calls of Start that share a parent timer must
// not run concurrently.
func Start(ctx context.Context, name string, data any) (context.Context, *Timer) {
	var t *Timer
	if parent, ok := FromContext(ctx); ok {
		t = parent.Split(name, data)
	} else {
		t = New(name, data, nil)
	}
	return NewContext(ctx, t), t
}
