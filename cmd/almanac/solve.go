package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rangemap/almanac"
	"github.com/katalvlaran/rangemap/remap"
	"github.com/katalvlaran/rangemap/runner"
)

func solveCmd(e *env) *cobra.Command {
	var (
		workers  int
		merge    bool
		from, to string
		prof     string
	)

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve both parts for an almanac file",
		Long: `Solve parses an almanac (puzzle text, or YAML for .yaml/.yml files) and prints
the lowest location for the individual seeds (part 1) and the seed ranges
(part 2), each with its elapsed time. Without a file the puzzle input under
the configured input root is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch prof {
			case "":
			case "cpu":
				defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
			case "mem":
				defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
			default:
				return fmt.Errorf("unknown profile %q (want cpu or mem)", prof)
			}

			cfg := e.cfg
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("merge") {
				cfg.Merge = merge
			}
			if cmd.Flags().Changed("from") {
				cfg.From = from
			}
			if cmd.Flags().Changed("to") {
				cfg.To = to
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var ropts []remap.Option
			ropts = append(ropts, remap.WithContext(cmd.Context()), remap.WithParallelism(cfg.Workers))
			if cfg.Merge {
				ropts = append(ropts, remap.WithMerge())
			}
			sopts := []almanac.SolverOption{
				almanac.WithCategories(cfg.From, cfg.To),
				almanac.WithRemapOptions(ropts...),
			}

			var (
				f   *os.File
				err error
			)
			if len(args) == 1 {
				if almanac.IsYAML(args[0]) {
					sopts = append(sopts, almanac.WithFormat(almanac.FormatYAML))
				}
				f, err = os.Open(args[0])
			} else {
				f, err = runner.OpenInput(cfg.InputRoot, almanac.NewSolver())
			}
			if err != nil {
				return err
			}
			defer f.Close()

			log := e.logger.With().Str("input", f.Name()).Int("workers", cfg.Workers).Bool("merge", cfg.Merge).Logger()
			s := almanac.NewSolver(sopts...)
			rep, err := runner.Run(cmd.Context(), cmd.OutOrStdout(), s, f, runner.WithLogger(log))
			if err != nil {
				return err
			}
			log.Info().
				Int64("part1", rep.Part1).
				Int64("part2", rep.Part2).
				Dur("total", rep.Timings[runner.PhaseParse]+rep.Timings[runner.PhasePart1]+rep.Timings[runner.PhasePart2]).
				Msg("solved")
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "seed ranges remapped concurrently")
	cmd.Flags().BoolVar(&merge, "merge", false, "merge intervals between stages")
	cmd.Flags().StringVar(&from, "from", almanac.DefaultFrom, "source category")
	cmd.Flags().StringVar(&to, "to", almanac.DefaultTo, "target category")
	cmd.Flags().StringVar(&prof, "profile", "", "write a cpu or mem profile to the current directory")

	return cmd
}
