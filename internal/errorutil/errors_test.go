package errorutil_test

import (
	"errors"
	"io"
	"testing"

	"github.com/skybet/time-tree/internal/errorutil"
)

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	sentinel := errorutil.Error("sentinel")

	cases := []struct {
		name    string
		args    []any
		wantMsg string
		wantIs  []error
	}{
		{"no args", nil, "sentinel", []error{sentinel}},
		{"error arg", []any{io.EOF}, "sentinel: EOF", []error{sentinel, io.EOF}},
		{"already wrapped", []any{sentinel}, "sentinel", []error{sentinel}},
		{"string arg", []any{"bad value"}, "sentinel: bad value", []error{sentinel}},
		{"format args", []any{"bad value %q", "x"}, `sentinel: bad value "x"`, []error{sentinel}},
		{"unknown arg", []any{42}, "sentinel", []error{sentinel}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(sentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("NewWrapperError().Error() = %q, want %q", got, c.wantMsg)
			}
			for _, want := range c.wantIs {
				if !errors.Is(err, want) {
					t.Errorf("errors.Is(err, %v) = false, want true", want)
				}
			}
		})
	}
}

func TestNewInvalidArgumentError(t *testing.T) {
	t.Parallel()

	err := errorutil.NewInvalidArgumentError("unknown format %q", "xml")
	if !errors.Is(err, errorutil.ErrInvalidArgument) {
		t.Fatalf("errors.Is(err, ErrInvalidArgument) = false, want true")
	}
	if errors.Is(err, errorutil.ErrMalformedInput) {
		t.Fatalf("errors.Is(err, ErrMalformedInput) = true, want false")
	}
}
