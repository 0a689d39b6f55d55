package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"myvoice/internal/model"
)

// ErrUnavailable marks storage connectivity failures: endpoint unreachable,
// misconfigured, or not configured at all. Callers report it and degrade;
// nothing retries automatically.
var ErrUnavailable = errors.New("response store unavailable")

// ResponseStore persists and retrieves survey responses. The backing
// collection is an opaque document store: one insert per submission, a full
// scan for reporting, no update or delete path.
type ResponseStore interface {
	Insert(ctx context.Context, response *model.SurveyResponse) error
	FindAll(ctx context.Context) ([]model.SurveyResponse, error)
	Ping(ctx context.Context) error
}

type responseStore struct {
	collection *mongo.Collection
}

// NewResponseStore creates a Mongo-backed response store on the "responses"
// collection.
func NewResponseStore(db *mongo.Database) ResponseStore {
	return &responseStore{
		collection: db.Collection("responses"),
	}
}

func (r *responseStore) Insert(ctx context.Context, response *model.SurveyResponse) error {
	// Set creation timestamp if not set
	if response.Timestamp.IsZero() {
		response.Timestamp = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, response); err != nil {
		return fmt.Errorf("%w: insert: %v", ErrUnavailable, err)
	}
	return nil
}

func (r *responseStore) FindAll(ctx context.Context) ([]model.SurveyResponse, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: find: %v", ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	var responses []model.SurveyResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, fmt.Errorf("decode responses: %w", err)
	}
	return responses, nil
}

func (r *responseStore) Ping(ctx context.Context) error {
	if err := r.collection.Database().Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// unavailableStore fails every operation with ErrUnavailable. It stands in
// for the Mongo store when MONGO_URI is missing or the client cannot be
// built, so the process starts and serves in a degraded state instead of
// exiting.
type unavailableStore struct {
	reason string
}

// NewUnavailableStore returns a store whose operations always report a
// connectivity error carrying the boot-time reason.
func NewUnavailableStore(reason string) ResponseStore {
	return &unavailableStore{reason: reason}
}

func (s *unavailableStore) Insert(ctx context.Context, response *model.SurveyResponse) error {
	return s.err()
}

func (s *unavailableStore) FindAll(ctx context.Context) ([]model.SurveyResponse, error) {
	return nil, s.err()
}

func (s *unavailableStore) Ping(ctx context.Context) error {
	return s.err()
}

func (s *unavailableStore) err() error {
	if s.reason == "" {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %s", ErrUnavailable, s.reason)
}
