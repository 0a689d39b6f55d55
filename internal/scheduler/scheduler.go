// Package scheduler runs the periodic dataset cache warmer.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler drives a warm function on a cron spec, in UTC.
type Scheduler struct {
	cron     *cron.Cron
	ctx      context.Context
	cancel   context.CancelFunc
	warmFunc func(ctx context.Context) error
	logger   *zap.Logger
}

// New creates a stopped scheduler around the given warm function.
func New(warmFunc func(ctx context.Context) error, logger *zap.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		ctx:      ctx,
		cancel:   cancel,
		warmFunc: warmFunc,
		logger:   logger,
	}
}

// Start registers the warm job under the cron spec and launches the loop.
// A warm failure is logged and waits for the next tick; there is no retry.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		if err := s.warmFunc(s.ctx); err != nil {
			s.logger.Warn("scheduled cache warm failed", zap.Error(err))
			return
		}
		s.logger.Debug("scheduled cache warm finished")
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cache warmer started", zap.String("spec", spec))
	return nil
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cancel()
	s.logger.Info("cache warmer stopped")
}
