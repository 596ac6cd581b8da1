// SPDX-License-Identifier: EPL-2.0

// Command pcmwave writes 44.1 kHz mono 16-bit WAVE files from raw PCM,
// other audio files or a generated tone.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := NewRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
