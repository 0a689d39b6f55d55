package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionIDLength is the number of UUID characters kept for a session token.
const SessionIDLength = 8

// NewSessionID returns a short anonymous token labeling one survey-taking
// instance. Tokens are generated at form-render time and are not guaranteed
// unique; the collision probability is non-zero and accepted.
func NewSessionID() string {
	return uuid.NewString()[:SessionIDLength]
}

// SurveyResponse is one submitted set of answers plus metadata. A record is
// persisted atomically by a successful submit and is immutable afterwards:
// there is no update or delete path.
type SurveyResponse struct {
	SessionID     string            `json:"sessionId" bson:"session_id"`
	Timestamp     time.Time         `json:"timestamp" bson:"timestamp"`
	Answers       map[string]string `json:"answers" bson:"answers"`                                   // question ID -> choice code, or "Other"
	CustomAnswers map[string]string `json:"customAnswers,omitempty" bson:"custom_answers,omitempty"` // question ID -> free text, only where "Other" was chosen
	SurveyVersion string            `json:"surveyVersion" bson:"survey_version"`
}

// CustomText returns the free-text answer for a question, if any.
func (r SurveyResponse) CustomText(questionID string) (string, bool) {
	text, ok := r.CustomAnswers[questionID]
	if !ok || text == "" {
		return "", false
	}
	return text, true
}
