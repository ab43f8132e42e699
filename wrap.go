package timetree

// The wrappers below end the timer right before delegating to the wrapped
// callback, so a timer can be handed over wherever a completion callback is
// expected. Arguments and results are forwarded unchanged. Wrapping a method
// value keeps its receiver bound.
//
// Creating a wrapper has no side effects. A wrapper that never fires leaves the
// timer running, and a wrapper that fires several times ends the timer only once.

// Wrap returns fn wrapped to end the timer before it runs.
func (t *Timer) Wrap(fn func()) func() {
	return func() {
		t.End()
		fn()
	}
}

// Wrap1 returns fn wrapped to end t before it runs.
func Wrap1[A any](t *Timer, fn func(A)) func(A) {
	return func(a A) {
		t.End()
		fn(a)
	}
}

// Wrap2 returns fn wrapped to end t before it runs.
// It fits the common func(result, error) completion callback.
func Wrap2[A, B any](t *Timer, fn func(A, B)) func(A, B) {
	return func(a A, b B) {
		t.End()
		fn(a, b)
	}
}

// WrapR returns fn wrapped to end t before it runs.
func WrapR[R any](t *Timer, fn func() R) func() R {
	return func() R {
		t.End()
		return fn()
	}
}

// Wrap1R returns fn wrapped to end t before it runs.
func Wrap1R[A, R any](t *Timer, fn func(A) R) func(A) R {
	return func(a A) R {
		t.End()
		return fn(a)
	}
}

// Wrap2R returns fn wrapped to end t before it runs.
func Wrap2R[A, B, R any](t *Timer, fn func(A, B) R) func(A, B) R {
	return func(a A, b B) R {
		t.End()
		return fn(a, b)
	}
}

// WrapR2 returns fn wrapped to end t before it runs.
func WrapR2[R1, R2 any](t *Timer, fn func() (R1, R2)) func() (R1, R2) {
	return func() (R1, R2) {
		t.End()
		return fn()
	}
}

// Wrap1R2 returns fn wrapped to end t before it runs.
// It fits the func(arg) (result, error) shape of most Go calls.
func Wrap1R2[A, R1, R2 any](t *Timer, fn func(A) (R1, R2)) func(A) (R1, R2) {
	return func(a A) (R1, R2) {
		t.End()
		return fn(a)
	}
}

// WrapN returns the variadic fn wrapped to end t before it runs.
func WrapN[A, R any](t *Timer, fn func(...A) R) func(...A) R {
	return func(args ...A) R {
		t.End()
		return fn(args...)
	}
}
