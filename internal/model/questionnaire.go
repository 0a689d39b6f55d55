package model

// ChoiceOther is the sentinel code recorded when a respondent supplies
// free text instead of one of the predefined options.
const ChoiceOther = "Other"

// Choice codes follow the two-tier scheme: A and B read as positive,
// C and D as concerning.
const (
	ChoiceA = "A"
	ChoiceB = "B"
	ChoiceC = "C"
	ChoiceD = "D"
)

// IsPositiveCode reports whether code is in the upper-sentiment option set.
func IsPositiveCode(code string) bool {
	return code == ChoiceA || code == ChoiceB
}

// IsConcernCode reports whether code is in the lower-sentiment option set.
func IsConcernCode(code string) bool {
	return code == ChoiceC || code == ChoiceD
}

// Choice is one predefined answer option.
type Choice struct {
	Code string `json:"code"` // single letter, "A".."D"
	Text string `json:"text"`
}

// Question is a static questionnaire entry. Choices keep their definition
// order.
type Question struct {
	ID      string   `json:"id"` // e.g. "Q1_Retention_Transformation"
	Prompt  string   `json:"prompt"`
	Choices []Choice `json:"choices"`
}

// Choice returns the option with the given code.
func (q Question) Choice(code string) (Choice, bool) {
	for _, c := range q.Choices {
		if c.Code == code {
			return c, true
		}
	}
	return Choice{}, false
}

// Questionnaire is the fixed ordered question list presented to every
// respondent. It is built once at startup and injected into both the
// intake and reporting components; nothing mutates it afterwards.
type Questionnaire struct {
	Version   string     `json:"version"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question returns the question with the given identifier.
func (qn Questionnaire) Question(id string) (Question, bool) {
	for _, q := range qn.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// QuestionIDs returns the question identifiers in definition order.
func (qn Questionnaire) QuestionIDs() []string {
	ids := make([]string, len(qn.Questions))
	for i, q := range qn.Questions {
		ids[i] = q.ID
	}
	return ids
}
