package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func readGolden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(repoRoot(t), "testdata", "golden", name))
	if err != nil {
		t.Fatalf("failed to read golden file: %v", err)
	}
	return string(data)
}

func TestRunDryRunGolden(t *testing.T) {
	withMockEnv(t)
	output := runRoot(t, "run", "acme/payments#42", "--dry-run")
	expected := readGolden(t, "report.md")
	if output != expected {
		t.Fatalf("report mismatch\n--- expected\n%s\n--- got\n%s", expected, output)
	}
}

func TestRunDryRunIsRepeatable(t *testing.T) {
	withMockEnv(t)
	first := runRoot(t, "run", "acme/payments#42", "--dry-run")
	second := runRoot(t, "run", "acme/payments#42", "--dry-run")
	if first != second {
		t.Fatalf("expected byte-identical reports across runs")
	}
}
