package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// defaultTimeout bounds a sweep run when no positive timeout is configured
const defaultTimeout = 10 * time.Second

// Sweeper evicts participants idle for at least threshold
type Sweeper interface {
	Sweep(ctx context.Context, threshold time.Duration) (int, error)
}

// Scheduler runs the inactivity sweep on a fixed period. A participant that
// goes silent is evicted within Interval + Threshold, not exactly at Threshold.
type Scheduler struct {
	cron      *cron.Cron
	Presence  Sweeper
	Interval  time.Duration
	Threshold time.Duration
	Timeout   time.Duration
}

// NewScheduler creates a new scheduler instance. Runs never overlap: a tick
// that fires while the previous sweep is still going is skipped. A
// non-positive timeout falls back to defaultTimeout.
func NewScheduler(presence Sweeper, interval, threshold, timeout time.Duration) *Scheduler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := cron.PrintfLogger(zap.NewStdLog(zap.L()))

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		Presence:  presence,
		Interval:  interval,
		Threshold: threshold,
		Timeout:   timeout,
	}
}

// Start registers the sweep job and begins ticking
func (s *Scheduler) Start() error {
	// cron rounds sub-second and negative delays up to one second
	if s.Interval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %s", s.Interval)
	}
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.Interval), s.sweepInactive)
	if err != nil {
		zap.S().Errorw("failed to register inactivity sweep job", "error", err)
		return err
	}

	s.cron.Start()
	zap.S().Infow("Inactivity sweep scheduler started",
		"interval", s.Interval,
		"threshold", s.Threshold,
	)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sweep to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Inactivity sweep scheduler stopped")
}

// sweepInactive runs one sweep. Failures are logged and the next tick retries.
func (s *Scheduler) sweepInactive() {
	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()

	evicted, err := s.Presence.Sweep(ctx, s.Threshold)
	if err != nil {
		zap.S().Errorw("inactivity sweep failed", "evicted", evicted, "error", err)
		return
	}
	if evicted > 0 {
		zap.S().Infow("removed inactive participants", "evicted", evicted)
		return
	}
	zap.S().Debug("no inactive participants")
}
