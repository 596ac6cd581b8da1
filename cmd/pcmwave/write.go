// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/ik5/pcmwave"
	"github.com/spf13/cobra"
)

func newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <raw.pcm|-> <out.wav|->",
		Short: "Wrap raw little-endian 16-bit mono PCM in a WAVE file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]

			if err := checkOutput(out); err != nil {
				return err
			}

			data, err := readInput(cmd, in)
			if err != nil {
				return err
			}

			if err := writeOutput(cmd, out, data); err != nil {
				return err
			}

			slog.Info("wrote wave file", "path", out, "bytes", len(data))
			return nil
		},
	}
}

// readInput reads all of path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(path)
}

// writeOutput writes data as a WAVE file to path, or to stdout when path
// is "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		return pcmwave.WriteWAVETo(cmd.OutOrStdout(), data)
	}

	return pcmwave.WriteWAVE(path, data)
}
