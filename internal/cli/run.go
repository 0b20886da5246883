package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nkwain/reviewbot/internal/action"
	"github.com/nkwain/reviewbot/internal/diff"
	"github.com/nkwain/reviewbot/internal/github"
	"github.com/nkwain/reviewbot/internal/prompt"
	"github.com/nkwain/reviewbot/internal/redact"
	"github.com/nkwain/reviewbot/internal/report"
	"github.com/nkwain/reviewbot/internal/review"
)

// ErrCriticalFindings signals the caller (usually CI) that the review found
// critical problems. The review itself still completed and was published.
var ErrCriticalFindings = errors.New("critical findings reported")

func NewRunCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run <pr-url|OWNER/REPO#123>",
		Short: "Review a pull request and publish the verdict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd.Context())
			if err != nil {
				return err
			}
			repo, number, err := github.ParsePR(args[0])
			if err != nil {
				return err
			}
			fullRef := fmt.Sprintf("%s#%d", repo, number)
			ctx := cmd.Context()

			change, err := review.NewRetriever(app.GH).Fetch(ctx, fullRef)
			if err != nil {
				return err
			}
			if change.Empty() {
				app.Log.Info("diff is empty, nothing to review", zap.String("pr", fullRef))
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to review: the diff is empty.")
				return nil
			}

			redactEnabled := app.Config.Redaction.Enabled
			files := diff.ParseUnified(change.DiffText)
			snap := prompt.Snapshot{
				Title:        redact.RedactOptional(change.Title, redactEnabled),
				Description:  redact.RedactOptional(change.Description, redactEnabled),
				Author:       change.Author,
				TargetBranch: change.TargetBranch,
				FileStats:    diff.Summarize(files),
				DiffText:     redact.RedactOptional(change.DiffText, redactEnabled),
			}
			req := prompt.Build(snap, app.Config.Review.DiffMaxChars)

			assessment, err := app.Reviewer.Review(ctx, req.Instructions, req.Content)
			if err != nil {
				return err
			}
			if assessment.Degraded {
				app.Log.Warn("provider output was not structured, publishing degraded report",
					zap.String("pr", fullRef))
			}

			rendered := report.Render(assessment, change)
			if dryRun {
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}

			if err := app.GH.PostComment(ctx, fullRef, rendered); err != nil {
				return err
			}
			plan := action.Decide(assessment)
			if err := action.Apply(ctx, app.GH, fullRef, plan, app.Log); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Review posted to %s\n", fullRef)
			if plan.Fail {
				fmt.Fprintln(cmd.OutOrStdout(), "Critical findings reported; signaling failure.")
				return ErrCriticalFindings
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the report instead of posting it")
	return cmd
}
