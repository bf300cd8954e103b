package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rangemap/almanac"
)

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert an almanac between puzzle text and YAML",
		Long:  `Convert reads <in> (text, or YAML for .yaml/.yml) and writes <out> as YAML when it ends in .yaml/.yml, as puzzle text otherwise.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := almanac.LoadFile(args[0])
			if err != nil {
				return err
			}
			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			if almanac.IsYAML(args[1]) {
				err = a.EncodeYAML(out)
			} else {
				err = a.Format(out)
			}
			if cerr := out.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("convert: %w", err)
			}
			return nil
		},
	}
}
