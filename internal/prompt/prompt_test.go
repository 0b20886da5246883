package prompt

import (
	"strings"
	"testing"
)

func TestBuildDeterministic(t *testing.T) {
	snap := Snapshot{
		Title:        "Fix race",
		Description:  "Serializes map access.",
		Author:       "ada",
		TargetBranch: "main",
		FileStats:    "a.go (+3/-1)",
		DiffText:     "diff --git a/a.go b/a.go\n+x\n",
	}
	first := Build(snap, DefaultDiffBudget)
	second := Build(snap, DefaultDiffBudget)
	if first != second {
		t.Fatalf("expected identical requests")
	}
	if first.Instructions != InstructionsV1 {
		t.Fatalf("expected fixed instructions")
	}
	if strings.Contains(first.Content, "{TITLE}") {
		t.Fatalf("placeholder left in content:\n%s", first.Content)
	}
}

func TestBuildDescriptionFallback(t *testing.T) {
	req := Build(Snapshot{Title: "t", Description: "   \n"}, DefaultDiffBudget)
	if !strings.Contains(req.Content, NoDescription) {
		t.Fatalf("expected description fallback:\n%s", req.Content)
	}
}

func TestTruncateDiffExactBudget(t *testing.T) {
	diff := strings.Repeat("x", 25)
	got := truncateDiff(diff, 10)
	if len(got) != 10 {
		t.Fatalf("expected exactly 10 chars, got %d", len(got))
	}
	if got != diff[:10] {
		t.Fatalf("expected a prefix cut")
	}
}

func TestTruncateDiffUnderBudget(t *testing.T) {
	diff := strings.Repeat("x", 10)
	if got := truncateDiff(diff, 10); got != diff {
		t.Fatalf("expected diff unchanged at budget")
	}
	if got := truncateDiff(diff, 100); got != diff {
		t.Fatalf("expected diff unchanged under budget")
	}
}

func TestBuildTruncatesOnlyDiff(t *testing.T) {
	longDiff := strings.Repeat("d", 50)
	snap := Snapshot{
		Title:       strings.Repeat("t", 50),
		Description: strings.Repeat("b", 50),
		DiffText:    longDiff,
	}
	req := Build(snap, 20)
	if !strings.Contains(req.Content, snap.Title) {
		t.Fatalf("title must not be truncated")
	}
	if !strings.Contains(req.Content, snap.Description) {
		t.Fatalf("description must not be truncated")
	}
	if strings.Contains(req.Content, longDiff) {
		t.Fatalf("diff should have been truncated")
	}
	if !strings.Contains(req.Content, longDiff[:20]) {
		t.Fatalf("expected truncated diff prefix")
	}
}
