// Package ctl holds the command objects behind the CLI. Each command
// carries its options as exported fields so the cobra layer stays a
// thin wrapper and tests can drive commands directly.
package ctl

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"svmlight-indexer/internal/config"
	"svmlight-indexer/internal/convert"
	"svmlight-indexer/internal/logger"
	"svmlight-indexer/internal/timing"
)

// ConvertCommand converts one named-feature svmlight file to an
// indexed one.
type ConvertCommand struct {
	// InputPath is the named-feature data file to read.
	InputPath string
	// OutputPath is the indexed data file to write.
	OutputPath string
	// MappingPath, when set, receives the index→name table.
	MappingPath string

	// Verbose enables progress logging on stdout.
	Verbose bool
	// Batch loads the whole file and groups comments before data
	// instead of streaming with interleaving preserved.
	Batch bool
	// ConfigPath is an optional YAML options file. Flags override it.
	ConfigPath string

	// Standard input/output.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewConvertCommand returns a new instance of ConvertCommand.
func NewConvertCommand(stdin io.Reader, stdout, stderr io.Writer) *ConvertCommand {
	return &ConvertCommand{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Run executes the conversion. The whole run is one blocking call; ctx
// is accepted for interface symmetry with other commands but the line
// loop is not cancelable mid-file.
func (cmd *ConvertCommand) Run(ctx context.Context) error {
	cfg, err := cmd.resolveConfig()
	if err != nil {
		return err
	}

	log := logger.NopLogger
	if cfg.Verbose {
		log = logger.NewStandardLogger(cmd.Stdout, false)
	}

	conv := convert.New(convert.Config{
		Logger:           log,
		ProgressInterval: cfg.ProgressInterval,
	})

	timer := timing.Start()

	if cfg.Mode == config.ModeBatch {
		if err := conv.BatchFiles(cmd.InputPath, cmd.OutputPath, cmd.MappingPath); err != nil {
			return err
		}
	} else {
		log.Printf("Converting %s to %s", cmd.InputPath, cmd.OutputPath)

		if err := conv.StreamFiles(cmd.InputPath, cmd.OutputPath, cmd.MappingPath); err != nil {
			return err
		}
	}

	log.Printf("Converted %d records, %d distinct features (%s)",
		conv.Records(), conv.Interner().Len(), timing.FormatDuration(timer.Elapsed()))

	return nil
}

// resolveConfig merges the options file (if any) with the command's
// flag fields. Flags only turn features on; they cannot unset a value
// the file enables.
func (cmd *ConvertCommand) resolveConfig() (config.Config, error) {
	cfg := config.Default()

	if cmd.ConfigPath != "" {
		loaded, err := config.LoadFile(cmd.ConfigPath)
		if err != nil {
			return config.Config{}, errors.Wrap(err, "loading options")
		}

		cfg = *loaded
	}

	if cmd.Verbose {
		cfg.Verbose = true
	}

	if cmd.Batch {
		cfg.Mode = config.ModeBatch
	}

	return cfg, nil
}
