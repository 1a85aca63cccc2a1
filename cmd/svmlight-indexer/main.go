// Package main provides the CLI entrypoint for svmlight-indexer.
//
// svmlight-indexer rewrites a labeled svmlight training file whose
// features are named by strings into one whose features are unique,
// ascending integer indices, optionally saving the index→name mapping
// alongside.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svmlight-indexer/internal/ctl"
)

func main() {
	if err := newConvertCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newConvertCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := ctl.NewConvertCommand(stdin, stdout, stderr)
	ccmd := &cobra.Command{
		Use:   "svmlight-indexer INPUT_DATA OUTPUT_DATA [INDEX_MAPPING_FILE]",
		Short: "Convert named svmlight features to integer indices",
		Long: `
Converts a svmlight-format data file where features are identified by
strings into one where features are identified by unique, ascending
integer indices starting at 1. The reserved "qid" feature is passed
through unconverted. When INDEX_MAPPING_FILE is given, the index→name
table is written there as "INDEX NAME" lines.
`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			cmd.InputPath = args[0]
			cmd.OutputPath = args[1]
			if len(args) > 2 {
				cmd.MappingPath = args[2]
			}

			return cmd.Run(context.Background())
		},
	}

	flags := ccmd.Flags()
	flags.BoolVarP(&cmd.Verbose, "verbose", "v", false, "print progress to standard output")
	flags.BoolVar(&cmd.Batch, "batch", false, "load the whole file and group comments before data")
	flags.StringVar(&cmd.ConfigPath, "config", "", "YAML options file (flags override it)")

	return ccmd
}
