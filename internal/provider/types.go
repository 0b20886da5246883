package provider

import (
	"context"
	"strings"
)

// Invoker is one round trip to the reasoning service: instructions plus
// change content in, a validated assessment out. Transport failures are
// errors; unusable response content is not (see ParseAssessment).
type Invoker interface {
	Review(ctx context.Context, instructions, content string) (Assessment, error)
	Ping(ctx context.Context) error
}

// Severity is the overall or per-issue severity of review findings.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityCritical
	SeverityMajor
	SeverityMinor
	SeverityApproved
	// SeverityInfo marks a degraded assessment synthesized from
	// unstructured provider output. It never comes from parsing.
	SeverityInfo
)

func ParseSeverity(s string) Severity {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CRITICAL":
		return SeverityCritical
	case "MAJOR":
		return SeverityMajor
	case "MINOR":
		return SeverityMinor
	case "APPROVED":
		return SeverityApproved
	default:
		return SeverityUnknown
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	case SeverityApproved:
		return "APPROVED"
	case SeverityInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// Action is the reviewer's recommended disposition for the change.
type Action int

const (
	ActionUnknown Action = iota
	ActionApprove
	ActionRequestChanges
	ActionComment
)

func ParseAction(s string) Action {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "APPROVE":
		return ActionApprove
	case "REQUEST_CHANGES":
		return ActionRequestChanges
	case "COMMENT":
		return ActionComment
	default:
		return ActionUnknown
	}
}

func (a Action) String() string {
	switch a {
	case ActionApprove:
		return "APPROVE"
	case ActionRequestChanges:
		return "REQUEST_CHANGES"
	case ActionComment:
		return "COMMENT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies one finding.
type Category int

const (
	CategoryUnknown Category = iota
	CategorySecurity
	CategoryBug
	CategoryPerformance
	CategoryDesign
	CategoryStyle
	CategoryDomainAntipattern
)

func ParseCategory(s string) Category {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SECURITY":
		return CategorySecurity
	case "BUG":
		return CategoryBug
	case "PERFORMANCE":
		return CategoryPerformance
	case "DESIGN":
		return CategoryDesign
	case "STYLE":
		return CategoryStyle
	case "DOMAIN_ANTIPATTERN":
		return CategoryDomainAntipattern
	default:
		return CategoryUnknown
	}
}

func (c Category) String() string {
	switch c {
	case CategorySecurity:
		return "SECURITY"
	case CategoryBug:
		return "BUG"
	case CategoryPerformance:
		return "PERFORMANCE"
	case CategoryDesign:
		return "DESIGN"
	case CategoryStyle:
		return "STYLE"
	case CategoryDomainAntipattern:
		return "DOMAIN ANTIPATTERN"
	default:
		return "OTHER"
	}
}

// Assessment is the normalized judgment for one change. Enum fields are
// always in-range after parsing: an out-of-enum overall severity becomes
// Minor and an out-of-enum action becomes Comment.
type Assessment struct {
	Summary              string
	Severity             Severity
	Issues               []Issue
	PositiveObservations []string
	RecommendedAction    Action
	// Degraded reports that the provider response was not structured and
	// Summary holds the raw text.
	Degraded bool
}

// Issue is one finding. Issue severities keep SeverityUnknown when the
// provider sent something out of range; rendering skips those.
type Issue struct {
	File        string
	LineHint    string
	Category    Category
	Severity    Severity
	Description string
	Suggestion  string
}
