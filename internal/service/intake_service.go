package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"myvoice/internal/cache"
	"myvoice/internal/model"
	"myvoice/internal/repository"
)

// IntakeService validates survey submissions and hands them to storage.
type IntakeService struct {
	questions model.Questionnaire
	store     repository.ResponseStore
	cache     cache.ResponseCache // optional, may be nil
	logger    *zap.Logger
}

// NewIntakeService creates a new intake service.
func NewIntakeService(questions model.Questionnaire, store repository.ResponseStore, cache cache.ResponseCache, logger *zap.Logger) *IntakeService {
	return &IntakeService{
		questions: questions,
		store:     store,
		cache:     cache,
		logger:    logger,
	}
}

// Questionnaire returns the static question list served to respondents.
func (s *IntakeService) Questionnaire() model.Questionnaire {
	return s.questions
}

// NewSession returns a fresh session identifier for one form instance.
func (s *IntakeService) NewSession() string {
	return model.NewSessionID()
}

// Submit validates a submission, stamps it, and persists it. Exactly one
// insert happens per successful call; a failed insert is reported to the
// caller and never retried — a manual resubmit creates an independent
// record.
func (s *IntakeService) Submit(ctx context.Context, response *model.SurveyResponse) error {
	if err := s.validate(response); err != nil {
		return err
	}

	normalizeCustomAnswers(response)
	response.Timestamp = time.Now()
	response.SurveyVersion = s.questions.Version

	if err := s.store.Insert(ctx, response); err != nil {
		return err
	}

	s.logger.Info("response recorded",
		zap.String("sessionId", response.SessionID),
		zap.Int("answers", len(response.Answers)),
		zap.Int("customAnswers", len(response.CustomAnswers)))

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("dataset cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}

// validate checks a submission against the questionnaire: every question
// answered, every answer a known question with a known code, and non-empty
// free text wherever "Other" was selected. Issues come back in
// questionnaire order so callers can report them inline.
func (s *IntakeService) validate(response *model.SurveyResponse) error {
	var issues []model.ValidationIssue

	if strings.TrimSpace(response.SessionID) == "" {
		issues = append(issues, model.ValidationIssue{Field: "session_id", Reason: model.ReasonMissingSession})
	}

	for _, q := range s.questions.Questions {
		code, ok := response.Answers[q.ID]
		if !ok {
			issues = append(issues, model.ValidationIssue{Field: q.ID, Reason: model.ReasonMissingAnswer})
			continue
		}
		if code == model.ChoiceOther {
			if strings.TrimSpace(response.CustomAnswers[q.ID]) == "" {
				issues = append(issues, model.ValidationIssue{Field: q.ID, Reason: model.ReasonEmptyCustom})
			}
			continue
		}
		if _, ok := q.Choice(code); !ok {
			issues = append(issues, model.ValidationIssue{Field: q.ID, Reason: model.ReasonUnknownChoice})
		}
	}

	var unknown []string
	for id := range response.Answers {
		if _, ok := s.questions.Question(id); !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	for _, id := range unknown {
		issues = append(issues, model.ValidationIssue{Field: id, Reason: model.ReasonUnknownField})
	}

	if len(issues) > 0 {
		return &model.ValidationError{Issues: issues}
	}
	return nil
}

// normalizeCustomAnswers trims free-text entries and drops any that are
// empty or not paired with an "Other" selection, so persisted records carry
// custom text only where it applies.
func normalizeCustomAnswers(response *model.SurveyResponse) {
	if len(response.CustomAnswers) == 0 {
		response.CustomAnswers = nil
		return
	}
	cleaned := make(map[string]string, len(response.CustomAnswers))
	for id, text := range response.CustomAnswers {
		text = strings.TrimSpace(text)
		if text == "" || response.Answers[id] != model.ChoiceOther {
			continue
		}
		cleaned[id] = text
	}
	if len(cleaned) == 0 {
		response.CustomAnswers = nil
		return
	}
	response.CustomAnswers = cleaned
}
