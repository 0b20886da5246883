package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nkwain/reviewbot/internal/cli"
)

func main() {
	root := cli.NewRootCmd()
	if err := root.Execute(); err != nil {
		// The critical-findings signal already printed its own line.
		if !errors.Is(err, cli.ErrCriticalFindings) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
