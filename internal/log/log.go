// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/skybet/time-tree/internal/errorutil"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByKind(slog.KindDuration, func(v slog.Value) slog.Value {
		return slog.StringValue(FormatMillis(float64(v.Duration()) / float64(time.Millisecond)))
	}),
)

// FormatMillis renders fractional milliseconds the way timer durations are logged.
func FormatMillis(ms float64) string {
	return strconv.FormatFloat(ms, 'f', -1, 64) + "ms"
}

// Options configures loggers created by [New].
type Options struct {
	// Level is the minimum level, [slog.LevelInfo] if nil.
	Level slog.Leveler
	// Dev selects the developer handler with pretty printed groups.
	Dev bool
	// AddSource adds the source position to every record.
	AddSource bool
}

func (o *Options) level() slog.Leveler {
	if o == nil || o.Level == nil {
		return slog.LevelInfo
	}
	return o.Level
}

func (o *Options) dev() bool { return o != nil && o.Dev }

func (o *Options) addSource() bool { return o != nil && o.AddSource }

// New creates a logger writing to w.
// Options are optional, nil means info level console output.
func New(w io.Writer, opts *Options) *slog.Logger {
	if opts.dev() {
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: opts.addSource(),
					Level:     opts.level(),
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	}
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  opts.addSource(),
			Level:      opts.level(),
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// Def is a default logger.
var Def = New(os.Stdout, &Options{Level: slog.LevelDebug, AddSource: true})

// Dev is a developer logger.
var Dev = New(os.Stdout, &Options{Level: slog.LevelDebug, AddSource: true, Dev: true})

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

// ParseLevel parses a level name like "debug" or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return lvl, nil
}

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }
