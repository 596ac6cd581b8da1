// SPDX-License-Identifier: EPL-2.0

package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/ik5/pcmwave"
	"github.com/ik5/pcmwave/internal/config"
	"github.com/spf13/cobra"
)

func newConvertCmd(defaults config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input> <out.wav>",
		Short: "Convert a wav, aiff, mp3 or ogg file to 44.1 kHz mono 16-bit",
		Long:  convertHelp(),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]

			if err := checkOutput(out); err != nil {
				return err
			}

			start := time.Now()

			err := pcmwave.ConvertFileWith(cmd.Context(), in, out, pcmwave.ConvertOptions{
				BufferSize: activeCfg.Convert.BufferSize,
			})
			if err != nil {
				return err
			}

			slog.Info("converted", "input", in, "output", out, "elapsed", time.Since(start))
			return nil
		},
	}

	config.RegisterConvertFlags(cmd.Flags(), defaults)

	return cmd
}

func convertHelp() string {
	formats := strings.Join(pcmwave.DefaultRegistry().Formats(), ", ")

	return "Convert an audio file to a 44.1 kHz mono 16-bit WAVE file.\n\n" +
		"Supported input formats: " + formats + "."
}
