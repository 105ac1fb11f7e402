// Package worker holds the background jobs: the leaderboard warmer and the
// asynq task that persists chat transcripts.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"dri_index/internal/domain/service/company"
	"dri_index/pkg/logx"
)

const defaultWarmInterval = 25 * time.Second

// LeaderboardWarmer periodically refreshes the company leaderboard memo so
// that the first request after a quiet period does not pay for the full
// recomputation.
type LeaderboardWarmer struct {
	companies *company.Service
	interval  time.Duration

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewLeaderboardWarmer(companies *company.Service) *LeaderboardWarmer {
	return &LeaderboardWarmer{
		companies: companies,
		interval:  defaultWarmInterval,
	}
}

func (w *LeaderboardWarmer) WithInterval(interval time.Duration) *LeaderboardWarmer {
	if interval > 0 {
		w.interval = interval
	}
	return w
}

func (w *LeaderboardWarmer) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("warmer is already running")
	}

	warmCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(warmCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(warmCtx).Error("leaderboard warmer stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *LeaderboardWarmer) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *LeaderboardWarmer) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// Run refreshes once immediately, then on every tick until the context is
// cancelled.
func (w *LeaderboardWarmer) Run(ctx context.Context) error {
	logger(ctx).Info("leaderboard warmer started", "interval", w.interval.String())

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("leaderboard warmer stopped")
			return ctx.Err()
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *LeaderboardWarmer) refresh(ctx context.Context) {
	board, err := w.companies.RefreshLeaderboard(ctx)
	if err != nil {
		logger(ctx).Error("leaderboard refresh failed", logx.Error(err))
		return
	}

	logger(ctx).Debug("leaderboard refreshed", "companies", len(board))
}
