// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ik5/pcmwave/internal/config"
	"github.com/ik5/pcmwave/internal/logging"
	"github.com/spf13/cobra"
)

var ErrOutputExists = errors.New("output file exists")

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "pcmwave",
		Short:         "Write 44.1 kHz mono 16-bit WAVE files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Flags:      cmd.Flags(),
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.Log)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newWriteCmd())
	cmd.AddCommand(newConvertCmd(defaults))
	cmd.AddCommand(newToneCmd(defaults))
	cmd.AddCommand(newInfoCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(c config.LogConfig) {
	logger, err := logging.New(os.Stderr, c.Level, c.Format)
	if err != nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		logger.Warn("falling back to default logger", "error", err)
	}
	slog.SetDefault(logger)
}

// checkOutput refuses to replace path when overwriting is disabled.
func checkOutput(path string) error {
	if activeCfg.Output.Overwrite || path == "-" {
		return nil
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return err
	}
}
