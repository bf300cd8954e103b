package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rangemap/almanac"
	"github.com/katalvlaran/rangemap/remap"
	"github.com/katalvlaran/rangemap/runner"
)

var errNoValues = errors.New("lookup: no values given")

func lookupCmd(e *env) *cobra.Command {
	var (
		file     string
		values   string
		from, to string
		reverse  bool
	)

	cmd := &cobra.Command{
		Use:   "lookup [value...]",
		Short: "Trace single values through the category maps",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("from") {
				from = e.cfg.From
			}
			if !cmd.Flags().Changed("to") {
				to = e.cfg.To
			}

			a, err := almanac.LoadFile(file)
			if err != nil {
				return err
			}
			p, err := a.Pipeline(from, to)
			if err != nil {
				return err
			}
			if reverse {
				p = p.Inverse()
			}

			if values != "" {
				more, err := readValues(values, cmd.InOrStdin())
				if err != nil {
					return err
				}
				args = append(args, more...)
			}
			if len(args) == 0 {
				return errNoValues
			}

			for _, arg := range args {
				v, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("lookup: %q is not an integer", arg)
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatTrace(p, v))
			}
			e.logger.Debug().Str("from", p.Source()).Str("to", p.Target()).Int("values", len(args)).Msg("lookup")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "almanac file (text or YAML)")
	cmd.Flags().StringVar(&values, "values", "", "file of values, one per line (- for stdin)")
	cmd.Flags().StringVar(&from, "from", almanac.DefaultFrom, "source category")
	cmd.Flags().StringVar(&to, "to", almanac.DefaultTo, "target category")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "map from the target category back to the source")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// readValues returns the non-empty lines of path, or of stdin for "-".
func readValues(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return runner.ReadLines(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return runner.ReadLines(f)
}

// formatTrace renders "seed 79 → soil 81 → … → location 82".
func formatTrace(p remap.Pipeline, v int64) string {
	trace := p.Trace(v)
	if len(p.Stages) == 0 {
		return strconv.FormatInt(v, 10)
	}
	parts := make([]string, 0, len(trace))
	parts = append(parts, fmt.Sprintf("%s %d", p.Stages[0].From, trace[0]))
	for i, st := range p.Stages {
		parts = append(parts, fmt.Sprintf("%s %d", st.To, trace[i+1]))
	}
	return strings.Join(parts, " → ")
}
