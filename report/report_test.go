package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	timetree "github.com/skybet/time-tree"
	"github.com/skybet/time-tree/internal/errorutil"
	"github.com/skybet/time-tree/report"
)

func ms(v float64) *float64 { return &v }

var sample = timetree.Result{
	Name:     "example",
	Duration: ms(200),
	Timers: []timetree.Result{
		{Name: "task1", Duration: ms(40.5)},
		{
			Name:     "task3",
			Duration: ms(150),
			Context:  map[string]any{"query": "SELECT 1"},
			Timers: []timetree.Result{
				{Name: "item1", Duration: ms(30)},
				{Name: "item2"},
			},
		},
	},
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    report.Format
		wantErr error
	}{
		{"tree", report.FormatTree, nil},
		{" Table ", report.FormatTable, nil},
		{"JSON", report.FormatJSON, nil},
		{"yml", report.FormatYAML, nil},
		{"xml", "", errorutil.ErrInvalidArgument},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			got, err := report.ParseFormat(c.input)
			if got != c.want {
				t.Errorf("report.ParseFormat(%q) = %q, want %q", c.input, got, c.want)
			}
			if !errors.Is(err, c.wantErr) {
				t.Errorf("report.ParseFormat(%q) error = %v, want %v", c.input, err, c.wantErr)
			}
		})
	}
}

func TestTree(t *testing.T) {
	t.Parallel()

	want := strings.Join([]string{
		"example  200ms",
		"├── task1  40.5ms",
		`└── task3  150ms  {"query":"SELECT 1"}`,
		"    ├── item1  30ms",
		"    └── item2  -",
		"",
	}, "\n")
	if diff := cmp.Diff(report.Tree(sample), want); diff != "" {
		t.Errorf("report.Tree() mismatch (-got +want):\n%s", diff)
	}
}

func TestDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		res  timetree.Result
		want string
	}{
		{"unfinished", timetree.Result{}, "-"},
		{"fractional", timetree.Result{Duration: ms(150.025)}, "150.025ms"},
		{"long", timetree.Result{Duration: ms(61500)}, "1 minute 1 second"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := report.Duration(c.res); got != c.want {
				t.Errorf("report.Duration() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestShare(t *testing.T) {
	t.Parallel()

	if got := report.Share(sample.Timers[0], sample); got != "20.2%" {
		t.Errorf("report.Share() = %q, want %q", got, "20.2%")
	}
	if got := report.Share(sample.Timers[1].Timers[1], sample); got != "-" {
		t.Errorf("report.Share() of unfinished timer = %q, want %q", got, "-")
	}
}

func TestWrite_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := report.Write(&buf, sample, report.FormatTable); err != nil {
		t.Fatalf("report.Write() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"example", "· task1", "· · item2", "40.5ms", "75.0%", `{"query":"SELECT 1"}`} {
		if !strings.Contains(out, want) {
			t.Errorf("table output does not contain %q:\n%s", want, out)
		}
	}
}

func TestWriteDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range []report.Format{report.FormatJSON, report.FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := report.Write(&buf, sample, f); err != nil {
				t.Fatalf("report.Write() error = %v", err)
			}
			got, err := report.Decode(&buf, f)
			if err != nil {
				t.Fatalf("report.Decode() error = %v", err)
			}
			if diff := cmp.Diff(got, sample); diff != "" {
				t.Errorf("decoded result mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestWrite_JSONShape(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	res := timetree.Result{Name: "e", Timers: []timetree.Result{{Name: "s", Duration: ms(1)}}}
	if err := report.Write(&buf, res, report.FormatJSON); err != nil {
		t.Fatalf("report.Write() error = %v", err)
	}
	want := `{
  "name": "e",
  "duration": null,
  "timers": [
    {
      "name": "s",
      "duration": 1
    }
  ]
}
`
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Errorf("json output mismatch (-got +want):\n%s", diff)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	if _, err := report.Decode(strings.NewReader("{"), report.FormatJSON); !errors.Is(err, errorutil.ErrMalformedInput) {
		t.Errorf("report.Decode() error = %v, want %v", err, errorutil.ErrMalformedInput)
	}
	if _, err := report.Decode(strings.NewReader(""), report.FormatTree); !errors.Is(err, errorutil.ErrInvalidArgument) {
		t.Errorf("report.Decode() error = %v, want %v", err, errorutil.ErrInvalidArgument)
	}
}
