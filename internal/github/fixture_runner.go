package github

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FixtureRunner serves canned gh output from a directory of fixture files.
type FixtureRunner struct {
	Root string
}

func NewFixtureRunner(root string) FixtureRunner {
	return FixtureRunner{Root: root}
}

func (f FixtureRunner) Run(ctx context.Context, args []string, stdin []byte) ([]byte, error) {
	_ = ctx
	_ = stdin
	key := strings.Join(args, " ")
	switch {
	case strings.Contains(key, "pr view"):
		return os.ReadFile(filepath.Join(f.Root, "pr_view.json"))
	case strings.Contains(key, "pr diff"):
		return os.ReadFile(filepath.Join(f.Root, "pr_diff.txt"))
	case strings.Contains(key, "pr comment"):
		return []byte("https://github.com/acme/payments/pull/42#issuecomment-1\n"), nil
	case strings.Contains(key, "pr edit"):
		return []byte{}, nil
	case strings.Contains(key, "auth status"):
		return []byte("logged in"), nil
	default:
		return nil, fmt.Errorf("no fixture for gh args: %s", key)
	}
}
