// Package report renders timer results for humans and decodes logged results back.
package report

//go:generate go tool errtrace -w .

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/hako/durafmt"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	timetree "github.com/skybet/time-tree"
	"github.com/skybet/time-tree/internal/errorutil"
	"github.com/skybet/time-tree/internal/log"
	"github.com/skybet/time-tree/internal/util"
)

// Format is an output format of [Write].
type Format string

const (
	// FormatTree renders an indented tree, one timer per line.
	FormatTree Format = "tree"
	// FormatTable renders a table with a row per timer.
	FormatTable Format = "table"
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// Formats lists all supported formats.
var Formats = []Format{FormatTree, FormatTable, FormatJSON, FormatYAML}

// ParseFormat parses a format name, case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatTree, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown format %q", s))
	}
}

// String implements [fmt.Stringer].
func (f Format) String() string { return string(f) }

// Set implements [pflag.Value].
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*f = v
	return nil
}

// Type implements [pflag.Value].
func (*Format) Type() string { return "format" }

// Write renders res to w in the given format.
func Write(w io.Writer, res timetree.Result, f Format) error {
	switch f {
	case FormatTree:
		_, err := io.WriteString(w, Tree(res))
		return errtrace.Wrap(err)
	case FormatTable:
		return errtrace.Wrap(writeTable(w, res))
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errtrace.Wrap(enc.Encode(res))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(enc.Close())
	default:
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown format %q", f))
	}
}

// Decode reads a JSON or YAML encoded result from r.
func Decode(r io.Reader, f Format) (timetree.Result, error) {
	var res timetree.Result
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&res); err != nil {
			return res, errtrace.Wrap(errorutil.NewMalformedInputError(err))
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&res); err != nil {
			return res, errtrace.Wrap(errorutil.NewMalformedInputError(err))
		}
	default:
		return res, errtrace.Wrap(errorutil.NewInvalidArgumentError("cannot decode format %q", f))
	}
	return res, nil
}

// Duration renders the result duration, "-" for unfinished timers.
// Sub-second durations keep their fractional milliseconds, longer ones are
// rendered with their two most significant units.
func Duration(res timetree.Result) string {
	ms, ok := res.Millis()
	if !ok {
		return "-"
	}
	if ms < 1000 {
		return log.FormatMillis(ms)
	}
	d, _ := res.Elapsed()
	return durafmt.Parse(d).LimitFirstN(2).String()
}

const maxContextLen = 60

// Context renders the result context in a compact single-line form.
func Context(res timetree.Result) string {
	if res.Context == nil {
		return ""
	}
	data, err := json.Marshal(res.Context)
	if err != nil {
		return util.Ellipsis(fmt.Sprintf("%+v", res.Context), maxContextLen)
	}
	return util.Ellipsis(string(data), maxContextLen)
}

// Tree renders res as an indented tree:
//
//	example  201.3ms
//	├── task1  40.1ms
//	└── task3  80.7ms  {"query":"SELECT 1"}
//	    └── item1  -
func Tree(res timetree.Result) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	writeTreeLine(sb, "", res)
	writeTreeChildren(sb, "", res.Timers)
	return sb.String()
}

func writeTreeChildren(sb *strings.Builder, indent string, subs []timetree.Result) {
	for i, sub := range subs {
		branch, next := "├── ", "│   "
		if i == len(subs)-1 {
			branch, next = "└── ", "    "
		}
		writeTreeLine(sb, indent+branch, sub)
		writeTreeChildren(sb, indent+next, sub.Timers)
	}
}

func writeTreeLine(sb *strings.Builder, prefix string, res timetree.Result) {
	sb.WriteString(prefix)
	sb.WriteString(res.Name)
	sb.WriteString("  ")
	sb.WriteString(Duration(res))
	if ctx := Context(res); ctx != "" {
		sb.WriteString("  ")
		sb.WriteString(ctx)
	}
	sb.WriteByte('\n')
}

// Share returns the part of the root duration spent in res, "-" when unknown.
func Share(res, root timetree.Result) string {
	ms, ok := res.Millis()
	rootMs, rootOk := root.Millis()
	if !ok || !rootOk || rootMs == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", ms/rootMs*100)
}

func writeTable(w io.Writer, res timetree.Result) error {
	table := tablewriter.NewWriter(w)
	table.Header("Timer", "Duration", "Share", "Context")

	var appendErr error
	res.Walk(func(sub timetree.Result, depth int) bool {
		if err := table.Append([]string{
			strings.Repeat("· ", depth) + sub.Name,
			Duration(sub),
			Share(sub, res),
			Context(sub),
		}); err != nil && appendErr == nil {
			appendErr = err
		}
		return true
	})
	if appendErr != nil {
		return errtrace.Wrap(appendErr)
	}
	return errtrace.Wrap(table.Render())
}
