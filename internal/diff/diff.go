package diff

import (
	"fmt"
	"strings"
)

// FileDiff is one file's slice of a unified diff, with add/remove counts.
type FileDiff struct {
	Path      string
	Additions int
	Deletions int
}

// ParseUnified splits a unified diff into per-file entries and tallies
// added/removed lines. File header lines (+++/---) do not count.
func ParseUnified(input string) []FileDiff {
	lines := strings.Split(input, "\n")
	var files []FileDiff
	var current *FileDiff
	for _, line := range lines {
		if strings.HasPrefix(line, "diff --git ") {
			if current != nil {
				files = append(files, *current)
			}
			current = &FileDiff{Path: parsePath(line)}
			continue
		}
		if current == nil {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			current.Additions++
		case strings.HasPrefix(line, "-"):
			current.Deletions++
		}
	}
	if current != nil {
		files = append(files, *current)
	}
	return files
}

func parsePath(line string) string {
	parts := strings.Split(line, " ")
	if len(parts) < 4 {
		return ""
	}
	return strings.TrimPrefix(parts[3], "b/")
}

// Summarize renders a one-line-per-file stat list for prompt context.
func Summarize(files []FileDiff) string {
	if len(files) == 0 {
		return "No files"
	}
	var b strings.Builder
	for _, f := range files {
		fmt.Fprintf(&b, "%s (+%d/-%d)\n", f.Path, f.Additions, f.Deletions)
	}
	return strings.TrimSpace(b.String())
}
