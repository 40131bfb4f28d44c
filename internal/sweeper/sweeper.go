package sweeper

import (
	"context"
	"log/slog"
	"time"

	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/metrics"
	post_service "lostnfound-board/internal/service/post"
)

// Sweeper periodically transitions stale open posts to urgent. It sweeps
// once immediately on start, then on every tick.
type Sweeper struct {
	service  post_service.Service
	interval time.Duration
	log      *logger.Logger
	metrics  metrics.Provider
}

const defaultInterval = 24 * time.Hour

func New(service post_service.Service, interval time.Duration, log *logger.Logger, metricsProvider metrics.Provider) *Sweeper {
	if interval <= 0 {
		log.Warn("Invalid sweep interval, falling back to default",
			slog.Duration("interval", interval),
			slog.Duration("default", defaultInterval))
		interval = defaultInterval
	}
	return &Sweeper{
		service:  service,
		interval: interval,
		log:      log,
		metrics:  metricsProvider,
	}
}

func (s *Sweeper) Run(ctx context.Context) error {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Sweeper stopped")
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	swept, err := s.service.SweepExpired(ctx)
	if err != nil {
		s.log.Error("Sweep failed", slog.String("error", err.Error()))
		return
	}

	s.metrics.AddSweptPosts(swept)
	s.log.Info("Sweep completed", slog.Int64("swept", swept))
}
