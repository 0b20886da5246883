package prompt

import "strings"

// InstructionsV1 is the review policy sent as the system message. Bump the
// suffix when the policy or the output contract changes.
const InstructionsV1 = `You are an experienced software engineer reviewing a pull request.

Assess the change for security problems, bugs, performance issues, design
concerns, style violations, and domain anti-patterns. Respond with a single
JSON object and nothing else, in this shape:

{
  "summary": "one-paragraph overall assessment",
  "severity": "CRITICAL | MAJOR | MINOR | APPROVED",
  "issues": [
    {
      "file": "path, or \"unknown\" if not tied to a file",
      "line_hint": "free-text locator, e.g. \"around line 40\"",
      "category": "SECURITY | BUG | PERFORMANCE | DESIGN | STYLE | DOMAIN_ANTIPATTERN",
      "severity": "CRITICAL | MAJOR | MINOR",
      "description": "what is wrong",
      "suggestion": "how to fix it"
    }
  ],
  "positive_observations": ["things done well"],
  "recommended_action": "APPROVE | REQUEST_CHANGES | COMMENT"
}

The overall severity reflects the worst issue found. Use APPROVED only when
there is nothing worth raising. Do not wrap the JSON in markdown fences.`

const contentTemplate = `# Pull request

Title: {TITLE}
Author: {AUTHOR}
Target branch: {TARGET_BRANCH}

## Description

{DESCRIPTION}

## Changed files

{FILE_STATS}

## Diff

{DIFF}
`

// DefaultDiffBudget caps how many characters of diff go into one request.
const DefaultDiffBudget = 12000

// NoDescription stands in for an empty PR description so the model never
// sees an ambiguous blank field.
const NoDescription = "No description provided"

// Request is the fully composed payload for the reasoning service.
type Request struct {
	Instructions string
	Content      string
}

// Snapshot carries the change fields the template interpolates. Callers are
// expected to have redacted anything sensitive already.
type Snapshot struct {
	Title        string
	Description  string
	Author       string
	TargetBranch string
	FileStats    string
	DiffText     string
}

// Build composes the request. It is pure: the same snapshot and budget
// always produce an identical request. Only the diff is truncated, and the
// cut is byte-granular, which can land mid-line.
func Build(snap Snapshot, diffBudget int) Request {
	description := strings.TrimSpace(snap.Description)
	if description == "" {
		description = NoDescription
	}

	out := contentTemplate
	out = strings.ReplaceAll(out, "{TITLE}", snap.Title)
	out = strings.ReplaceAll(out, "{AUTHOR}", snap.Author)
	out = strings.ReplaceAll(out, "{TARGET_BRANCH}", snap.TargetBranch)
	out = strings.ReplaceAll(out, "{DESCRIPTION}", description)
	out = strings.ReplaceAll(out, "{FILE_STATS}", snap.FileStats)
	out = strings.ReplaceAll(out, "{DIFF}", truncateDiff(snap.DiffText, diffBudget))

	return Request{Instructions: InstructionsV1, Content: out}
}

func truncateDiff(diff string, budget int) string {
	if budget <= 0 || len(diff) <= budget {
		return diff
	}
	return diff[:budget]
}
