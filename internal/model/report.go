package model

import "time"

// Filter narrows the response set before any aggregate is computed.
// The zero value keeps every row.
type Filter struct {
	SessionIDs []string   // keep rows whose session id is in the set; empty keeps all
	From       *time.Time // inclusive lower bound on Timestamp
	To         *time.Time // inclusive upper bound on Timestamp
}

// Matches reports whether a row with the given session id and timestamp
// passes the filter.
func (f Filter) Matches(sessionID string, ts time.Time) bool {
	if len(f.SessionIDs) > 0 {
		found := false
		for _, id := range f.SessionIDs {
			if id == sessionID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.From != nil && ts.Before(*f.From) {
		return false
	}
	if f.To != nil && ts.After(*f.To) {
		return false
	}
	return true
}

// FlatRow is the tabular projection of one response record: session id,
// timestamp, one column per question, and a custom-text column wherever
// non-empty free text exists.
type FlatRow struct {
	SessionID string            `json:"sessionId"`
	Timestamp time.Time         `json:"timestamp"`
	Answers   map[string]string `json:"answers"`
	Custom    map[string]string `json:"custom,omitempty"`
}

// QuestionDistribution is the answer breakdown for one question.
type QuestionDistribution struct {
	QuestionID  string             `json:"questionId"`
	Prompt      string             `json:"prompt"`
	Answered    int                `json:"answered"` // rows holding a value for this question
	Counts      map[string]int     `json:"counts"`
	Percentages map[string]float64 `json:"percentages"` // count / Answered * 100; 0 when Answered is 0
	CustomTexts []string           `json:"customTexts,omitempty"`
}

// ConcernScore ranks one question by the share of concerning answers.
type ConcernScore struct {
	Rank       int     `json:"rank"` // 1-based, after the stable descending sort
	QuestionID string  `json:"questionId"`
	Prompt     string  `json:"prompt"`
	Score      float64 `json:"score"` // percent of answered rows choosing C or D
}

// SentimentClass buckets a question by its dominant answer tier.
type SentimentClass string

const (
	SentimentPositive SentimentClass = "positive"
	SentimentNeutral  SentimentClass = "neutral"
	SentimentConcern  SentimentClass = "concern"
)

// QuestionSentiment classifies one question by comparing positive (A/B)
// against concerning (C/D) answer counts.
type QuestionSentiment struct {
	QuestionID    string         `json:"questionId"`
	PositiveCount int            `json:"positiveCount"`
	ConcernCount  int            `json:"concernCount"`
	Class         SentimentClass `json:"class"`
}

// SentimentSummary aggregates per-question classifications into area counts.
type SentimentSummary struct {
	Questions     []QuestionSentiment `json:"questions"`
	PositiveAreas int                 `json:"positiveAreas"`
	NeutralAreas  int                 `json:"neutralAreas"`
	ConcernAreas  int                 `json:"concernAreas"`
}

// TrendPoint is one calendar day of submissions.
type TrendPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// Overview carries the headline metrics of the dashboard.
type Overview struct {
	TotalResponses   int     `json:"totalResponses"`
	RetentionConcern float64 `json:"retentionConcernPct"` // concern score of the retention question
	HighStress       float64 `json:"highStressPct"`       // concern score of the workload question
	Satisfaction     float64 `json:"satisfactionPct"`     // A answers / (rows * questions) * 100
}

// Report is the full aggregate view over the filtered response set. With
// zero records every field holds a defined empty value and NoData is set;
// an empty dataset is a state, not an error.
type Report struct {
	GeneratedAt   time.Time              `json:"generatedAt"`
	NoData        bool                   `json:"noData"`
	Overview      Overview               `json:"overview"`
	Distributions []QuestionDistribution `json:"distributions"`
	Concerns      []ConcernScore         `json:"concerns"`
	Sentiment     SentimentSummary       `json:"sentiment"`
	Trend         []TrendPoint           `json:"trend"`
}
