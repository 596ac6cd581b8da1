// SPDX-License-Identifier: EPL-2.0

package main

import (
	"log/slog"

	"github.com/ik5/pcmwave"
	"github.com/ik5/pcmwave/audio"
	"github.com/ik5/pcmwave/internal/config"
	"github.com/ik5/pcmwave/internal/pcm"
	"github.com/spf13/cobra"
)

func newToneCmd(defaults config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tone <out.wav|->",
		Short: "Write a sine tone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := args[0]

			if err := checkOutput(out); err != nil {
				return err
			}

			tc := activeCfg.Tone
			src := audio.NewTone(pcmwave.SampleRate, tc.Frequency, float32(tc.Amplitude), tc.Duration)

			samples, err := pcmwave.Conform(cmd.Context(), src, activeCfg.Convert.BufferSize)
			if err != nil {
				return err
			}

			if err := writeOutput(cmd, out, pcm.Int16ToLE(samples)); err != nil {
				return err
			}

			slog.Info("wrote tone", "path", out, "freq", tc.Frequency, "duration", tc.Duration)
			return nil
		},
	}

	config.RegisterToneFlags(cmd.Flags(), defaults)

	return cmd
}
