package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"trustbites/config"
	"trustbites/internal/domain/repository"
	"trustbites/internal/domain/service"

	"go.uber.org/fx"
)

// SessionReaper periodically closes idle sessions.
type SessionReaper struct {
	manager     repository.SessionManager
	metrics     service.Metrics
	logger      *slog.Logger
	idleTimeout time.Duration
	interval    time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ReaperParams holds dependencies for the session reaper, injected by Fx.
type ReaperParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Manager repository.SessionManager
	Metrics service.Metrics
}

// NewSessionReaper creates the reaper and ties it to the application lifecycle.
func NewSessionReaper(params ReaperParams) *SessionReaper {
	r := &SessionReaper{
		manager:     params.Manager,
		metrics:     params.Metrics,
		logger:      params.Logger,
		idleTimeout: params.Cfg.Session.IdleTimeout,
		interval:    params.Cfg.Session.SweepInterval,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			r.Start()

			return nil
		},
		OnStop: func(context.Context) error {
			r.Stop()

			return nil
		},
	})

	return r
}

// Start launches the sweep loop.
func (r *SessionReaper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
}

// Stop ends the sweep loop and waits for it to return.
func (r *SessionReaper) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *SessionReaper) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("Session reaper started",
		slog.Duration("idle_timeout", r.idleTimeout),
		slog.Duration("interval", r.interval))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Session reaper stopped")

			return
		case now := <-ticker.C:
			r.SweepOnce(ctx, now)
		}
	}
}

// SweepOnce closes every session idle since before now minus the idle timeout.
func (r *SessionReaper) SweepOnce(ctx context.Context, now time.Time) int {
	closed, err := r.manager.Sweep(ctx, now.Add(-r.idleTimeout))
	if err != nil {
		r.logger.Error("Failed to sweep idle sessions", slog.Any("error", err))

		return 0
	}

	if closed > 0 {
		r.metrics.SessionsClosed("expired", closed)
		r.logger.Info("Closed idle sessions", slog.Int("count", closed))
	}
	r.metrics.SetLiveSessions(r.manager.Count())

	return closed
}
