package provider

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed review.schema.json
var reviewSchemaJSON string

// The schema checks structure only. Enum values are deliberately left open:
// an out-of-range value normalizes to a default instead of rejecting the
// whole response.
var reviewSchema = jsonschema.MustCompileString("review.schema.json", reviewSchemaJSON)

type wireAssessment struct {
	Summary              string      `json:"summary"`
	Severity             string      `json:"severity"`
	Issues               []wireIssue `json:"issues"`
	PositiveObservations []string    `json:"positive_observations"`
	RecommendedAction    string      `json:"recommended_action"`
}

type wireIssue struct {
	File        string `json:"file"`
	LineHint    string `json:"line_hint"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}

// ParseAssessment turns raw provider output into an Assessment. It never
// fails: output that is not a structurally valid assessment document falls
// back to a degraded assessment carrying the raw text as its summary, so the
// pipeline always has something to render.
func ParseAssessment(raw string) Assessment {
	text := stripFences(raw)

	var value interface{}
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return degradedAssessment(raw)
	}
	if err := reviewSchema.Validate(value); err != nil {
		return degradedAssessment(raw)
	}
	var wire wireAssessment
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return degradedAssessment(raw)
	}
	return normalize(wire)
}

func degradedAssessment(raw string) Assessment {
	return Assessment{
		Summary:           strings.TrimSpace(raw),
		Severity:          SeverityInfo,
		RecommendedAction: ActionComment,
		Degraded:          true,
	}
}

func normalize(wire wireAssessment) Assessment {
	severity := ParseSeverity(wire.Severity)
	if severity == SeverityUnknown {
		severity = SeverityMinor
	}
	action := ParseAction(wire.RecommendedAction)
	if action == ActionUnknown {
		action = ActionComment
	}

	issues := make([]Issue, 0, len(wire.Issues))
	for _, w := range wire.Issues {
		file := strings.TrimSpace(w.File)
		if file == "" {
			file = "unknown"
		}
		issues = append(issues, Issue{
			File:        file,
			LineHint:    w.LineHint,
			Category:    ParseCategory(w.Category),
			Severity:    ParseSeverity(w.Severity),
			Description: w.Description,
			Suggestion:  w.Suggestion,
		})
	}

	return Assessment{
		Summary:              wire.Summary,
		Severity:             severity,
		Issues:               issues,
		PositiveObservations: wire.PositiveObservations,
		RecommendedAction:    action,
	}
}

// stripFences removes one optional surrounding markdown code fence, with or
// without a language tag.
func stripFences(s string) string {
	text := strings.TrimSpace(s)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	rest := text[3:]
	newline := strings.Index(rest, "\n")
	if newline < 0 {
		return text
	}
	rest = rest[newline+1:]
	if end := strings.LastIndex(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}
