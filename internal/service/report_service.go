package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"myvoice/internal/cache"
	"myvoice/internal/model"
	"myvoice/internal/repository"
)

// ReportService computes aggregate views over the stored response set. All
// aggregation runs on demand against the full dataset; nothing is
// precomputed at submission time.
type ReportService struct {
	questions model.Questionnaire
	store     repository.ResponseStore
	cache     cache.ResponseCache // optional, may be nil
	logger    *zap.Logger
}

// NewReportService creates a new report service.
func NewReportService(questions model.Questionnaire, store repository.ResponseStore, cache cache.ResponseCache, logger *zap.Logger) *ReportService {
	return &ReportService{
		questions: questions,
		store:     store,
		cache:     cache,
		logger:    logger,
	}
}

// fetch returns every stored record, through the dataset cache when one is
// configured. Cache trouble is logged and falls through to the store, so a
// broken cache degrades latency, never correctness.
func (s *ReportService) fetch(ctx context.Context) ([]model.SurveyResponse, error) {
	if s.cache != nil {
		records, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("dataset cache read failed", zap.Error(err))
		} else if hit {
			return records, nil
		}
	}

	records, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, records); err != nil {
			s.logger.Warn("dataset cache write failed", zap.Error(err))
		}
	}
	return records, nil
}

// Rows returns the flattened row set with the filter applied. Every
// reporting operation (report, breakdown, listing, export) starts here, so
// they all agree on which rows are in scope.
func (s *ReportService) Rows(ctx context.Context, filter model.Filter) ([]model.FlatRow, error) {
	records, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return filterRows(flattenRecords(records), filter), nil
}

// BuildReport computes the full aggregate report over the filtered rows.
func (s *ReportService) BuildReport(ctx context.Context, filter model.Filter) (*model.Report, error) {
	rows, err := s.Rows(ctx, filter)
	if err != nil {
		return nil, err
	}
	return buildReport(s.questions, rows, time.Now()), nil
}

// QuestionBreakdown returns the answer distribution for a single question.
// Unknown question IDs report model.ErrUnknownQuestion.
func (s *ReportService) QuestionBreakdown(ctx context.Context, questionID string, filter model.Filter) (*model.QuestionDistribution, error) {
	question, ok := s.questions.Question(questionID)
	if !ok {
		return nil, model.ErrUnknownQuestion
	}

	rows, err := s.Rows(ctx, filter)
	if err != nil {
		return nil, err
	}

	dist := distributionFor(question, rows)
	return &dist, nil
}

// WarmCache refreshes the dataset cache straight from the store. The
// scheduled warmer calls this; without a cache it is a no-op.
func (s *ReportService) WarmCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	records, err := s.store.FindAll(ctx)
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, records); err != nil {
		return err
	}

	s.logger.Debug("dataset cache warmed", zap.Int("records", len(records)))
	return nil
}
