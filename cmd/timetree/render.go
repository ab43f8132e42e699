package main

import (
	"io"
	"os"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	timetree "github.com/skybet/time-tree"
	"github.com/skybet/time-tree/report"
)

type renderOptions struct {
	in  report.Format
	out report.Format
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{in: report.FormatJSON, out: report.FormatTree}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a logged timer result",
		Long: `Render reads a timer result encoded as JSON or YAML, as produced by
Timer.Result or Timer.MarshalJSON, and prints it as a tree, a table, JSON or YAML.
The result is read from stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errtrace.Wrap(err)
				}
				defer f.Close()
				in = f
			}
			return errtrace.Wrap(runRender(in, cmd.OutOrStdout(), opts))
		},
	}

	cmd.Flags().Var(&opts.in, "in", "input format (json, yaml)")
	cmd.Flags().VarP(&opts.out, "format", "f", "output format (tree, table, json, yaml)")
	return cmd
}

func runRender(in io.Reader, out io.Writer, opts *renderOptions) error {
	logger, err := newLogger()
	if err != nil {
		return errtrace.Wrap(err)
	}

	timer := timetree.New("render", map[string]string{"in": opts.in.String(), "out": opts.out.String()},
		&timetree.Options{Logger: logger})
	defer func() {
		timer.End()
		logger.Debug("render finished", "timings", timer)
	}()

	decode := timer.Split("decode", nil)
	res, err := report.Decode(in, opts.in)
	decode.End()
	if err != nil {
		return errtrace.Wrap(err)
	}

	write := timer.Split("write", nil)
	defer write.End()
	return errtrace.Wrap(report.Write(out, res, opts.out))
}
