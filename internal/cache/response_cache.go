package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"myvoice/internal/model"
)

// datasetKey holds the JSON-encoded full response set.
const datasetKey = "survey:responses"

// ResponseCache keeps the fetched response set in Redis. It is a
// performance optimization only: reporting falls back to the store on any
// miss or error, and a successful submit invalidates the key.
type ResponseCache interface {
	Get(ctx context.Context) ([]model.SurveyResponse, bool, error)
	Set(ctx context.Context, responses []model.SurveyResponse) error
	Invalidate(ctx context.Context) error
	Ping(ctx context.Context) error
}

type responseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a Redis-backed dataset cache. Entries expire
// after ttl; inserts invalidate eagerly.
func NewResponseCache(client *redis.Client, ttl time.Duration) ResponseCache {
	return &responseCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *responseCache) Get(ctx context.Context) ([]model.SurveyResponse, bool, error) {
	data, err := c.client.Get(ctx, datasetKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var responses []model.SurveyResponse
	if err := json.Unmarshal([]byte(data), &responses); err != nil {
		return nil, false, err
	}
	return responses, true, nil
}

func (c *responseCache) Set(ctx context.Context, responses []model.SurveyResponse) error {
	data, err := json.Marshal(responses)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, datasetKey, data, c.ttl).Err()
}

func (c *responseCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, datasetKey).Err()
}

func (c *responseCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
