package github

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Runner abstracts execution of the gh CLI so tests can substitute fixtures.
type Runner interface {
	Run(ctx context.Context, args []string, stdin []byte) ([]byte, error)
}

type RealRunner struct {
	// Binary overrides the gh executable name; empty means "gh" from PATH.
	Binary string
}

func (r RealRunner) Run(ctx context.Context, args []string, stdin []byte) ([]byte, error) {
	binary := r.Binary
	if binary == "" {
		binary = "gh"
	}
	cmd := exec.CommandContext(ctx, binary, args...)
	if len(stdin) > 0 {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("gh %v failed: %w\n%s", args, err, string(output))
	}
	return output, nil
}
