package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkwain/reviewbot/internal/github"
)

// ChangeContext is the immutable snapshot of one reviewable change: its
// metadata plus the unified diff.
type ChangeContext struct {
	Title        string
	Description  string
	Author       string
	TargetBranch string
	DiffText     string
}

// Empty reports whether there is nothing to review. A whitespace-only diff
// counts as empty.
func (c ChangeContext) Empty() bool {
	return strings.TrimSpace(c.DiffText) == ""
}

// Retriever fetches change context from the review host.
type Retriever struct {
	gh *github.Client
}

func NewRetriever(gh *github.Client) *Retriever {
	return &Retriever{gh: gh}
}

// Fetch performs the two host reads. Either failing makes the whole context
// unusable, so both are fatal.
func (r *Retriever) Fetch(ctx context.Context, ref string) (ChangeContext, error) {
	view, err := r.gh.PRView(ctx, ref)
	if err != nil {
		return ChangeContext{}, fmt.Errorf("fetch metadata: %w", err)
	}
	diffText, err := r.gh.PRDiff(ctx, ref)
	if err != nil {
		return ChangeContext{}, fmt.Errorf("fetch diff: %w", err)
	}
	return ChangeContext{
		Title:        view.Title,
		Description:  view.Body,
		Author:       view.Author.Login,
		TargetBranch: view.BaseRefName,
		DiffText:     diffText,
	}, nil
}
