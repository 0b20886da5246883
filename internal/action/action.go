package action

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/nkwain/reviewbot/internal/github"
	"github.com/nkwain/reviewbot/internal/provider"
)

const (
	LabelNeedsRevision = "needs-revision"
	LabelApproved      = "ai-approved"
)

// Plan is the side effects decided from one assessment: at most one label,
// plus whether the process should signal failure to its caller.
type Plan struct {
	Label string
	Fail  bool
}

// Decide maps an assessment to a plan. The label and the failure signal are
// independent: only a CRITICAL overall severity fails the run, even when a
// label is applied for other reasons.
func Decide(a provider.Assessment) Plan {
	plan := Plan{Fail: a.Severity == provider.SeverityCritical}
	switch {
	case a.Severity == provider.SeverityCritical || a.RecommendedAction == provider.ActionRequestChanges:
		plan.Label = LabelNeedsRevision
	case a.RecommendedAction == provider.ActionApprove:
		plan.Label = LabelApproved
	}
	return plan
}

// Apply executes the plan's label side effect. A label the repository does
// not define is logged and swallowed; anything else propagates.
func Apply(ctx context.Context, gh *github.Client, ref string, plan Plan, log *zap.Logger) error {
	if plan.Label == "" {
		return nil
	}
	if err := gh.AddLabel(ctx, ref, plan.Label); err != nil {
		if errors.Is(err, github.ErrUnknownLabel) {
			log.Warn("repository rejected label",
				zap.String("label", plan.Label),
				zap.String("pr", ref),
				zap.Error(err))
			return nil
		}
		return err
	}
	return nil
}
