package service

import (
	"context"

	"myvoice/internal/model"
)

// fakeStore is an in-memory ResponseStore for service tests.
type fakeStore struct {
	records   []model.SurveyResponse
	insertErr error
	findErr   error
	findCalls int
	pingErr   error
}

func (f *fakeStore) Insert(ctx context.Context, response *model.SurveyResponse) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.records = append(f.records, *response)
	return nil
}

func (f *fakeStore) FindAll(ctx context.Context) ([]model.SurveyResponse, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]model.SurveyResponse, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.pingErr
}

// fakeCache is an in-memory ResponseCache for service tests.
type fakeCache struct {
	data        []model.SurveyResponse
	hasData     bool
	getErr      error
	setErr      error
	invErr      error
	setCalls    int
	invalidated int
}

func (f *fakeCache) Get(ctx context.Context) ([]model.SurveyResponse, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	if !f.hasData {
		return nil, false, nil
	}
	return f.data, true, nil
}

func (f *fakeCache) Set(ctx context.Context, records []model.SurveyResponse) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.data = records
	f.hasData = true
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context) error {
	f.invalidated++
	if f.invErr != nil {
		return f.invErr
	}
	f.data = nil
	f.hasData = false
	return nil
}

func (f *fakeCache) Ping(ctx context.Context) error {
	return nil
}
