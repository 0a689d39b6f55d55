package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownQuestion is returned when a report is requested for a question
// identifier that is not part of the questionnaire.
var ErrUnknownQuestion = errors.New("unknown question")

// Validation issue reasons.
const (
	ReasonMissingAnswer  = "missing answer"
	ReasonUnknownField   = "not part of the questionnaire"
	ReasonUnknownChoice  = "unknown choice code"
	ReasonEmptyCustom    = "custom text required when Other is selected"
	ReasonMissingSession = "session id required"
)

// ValidationIssue names one incomplete or malformed part of a submission.
type ValidationIssue struct {
	Field  string `json:"field"` // question ID, or "session_id"
	Reason string `json:"reason"`
}

// ValidationError reports why a submission was rejected. When returned,
// nothing has been persisted.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = fmt.Sprintf("%s: %s", issue.Field, issue.Reason)
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}
