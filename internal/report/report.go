package report

import (
	"fmt"
	"strings"

	"github.com/nkwain/reviewbot/internal/provider"
	"github.com/nkwain/reviewbot/internal/review"
)

const disclaimer = "_This review was generated automatically. Findings are advisory and a human reviewer has the final say._\n"

var bands = []struct {
	severity provider.Severity
	heading  string
}{
	{provider.SeverityCritical, "🚨 Critical"},
	{provider.SeverityMajor, "⚠️ Major"},
	{provider.SeverityMinor, "🟡 Minor"},
}

// Render produces the published report. It is deterministic: the same
// assessment and change always yield byte-identical output. Issues appear
// grouped critical, major, minor, keeping their original order inside each
// band; issues with an out-of-range severity are not rendered.
func Render(a provider.Assessment, change review.ChangeContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s AI Code Review: %s\n\n", severityEmoji(a.Severity), change.Title)
	fmt.Fprintf(&b, "**Author:** @%s · **Target:** `%s`\n\n", change.Author, change.TargetBranch)

	b.WriteString("### Summary\n\n")
	summary := strings.TrimSpace(a.Summary)
	if summary == "" {
		summary = "No summary was provided."
	}
	b.WriteString(summary)
	b.WriteString("\n")

	writeIssues(&b, a.Issues)

	if len(a.PositiveObservations) > 0 {
		b.WriteString("\n### What looks good\n\n")
		for _, obs := range a.PositiveObservations {
			b.WriteString("- ")
			b.WriteString(obs)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n### Verdict\n\n")
	b.WriteString(verdictSentence(a.RecommendedAction))
	b.WriteString("\n\n---\n")
	b.WriteString(disclaimer)

	return b.String()
}

func writeIssues(b *strings.Builder, issues []provider.Issue) {
	renderable := false
	for _, band := range bands {
		for _, issue := range issues {
			if issue.Severity == band.severity {
				renderable = true
			}
		}
	}
	if !renderable {
		return
	}

	b.WriteString("\n### Issues\n")
	for _, band := range bands {
		n := 0
		for _, issue := range issues {
			if issue.Severity != band.severity {
				continue
			}
			if n == 0 {
				fmt.Fprintf(b, "\n#### %s\n\n", band.heading)
			}
			n++
			hint := strings.TrimSpace(issue.LineHint)
			if hint == "" {
				hint = "location unspecified"
			}
			fmt.Fprintf(b, "%d. `%s` (%s) [%s]\n", n, issue.File, hint, issue.Category)
			fmt.Fprintf(b, "   Problem: %s\n", issue.Description)
			if strings.TrimSpace(issue.Suggestion) != "" {
				fmt.Fprintf(b, "   Suggestion: %s\n", issue.Suggestion)
			}
		}
	}
}

func severityEmoji(s provider.Severity) string {
	switch s {
	case provider.SeverityCritical:
		return "🚨"
	case provider.SeverityMajor:
		return "⚠️"
	case provider.SeverityMinor:
		return "🟡"
	case provider.SeverityApproved:
		return "✅"
	default:
		return "ℹ️"
	}
}

func verdictSentence(a provider.Action) string {
	switch a {
	case provider.ActionApprove:
		return "This change looks good to merge."
	case provider.ActionRequestChanges:
		return "Changes are requested before this can merge."
	case provider.ActionComment:
		return "Review notes posted; no approval decision was made."
	default:
		return "No clear recommendation was produced; a human should take a look."
	}
}
