package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler periodically removes sessions older than their TTL.
type Scheduler struct {
	sessionService sessionPurger
	interval       time.Duration
	logger         logger.Logger
}

func New(
	sessionService sessionPurger,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sessionService: sessionService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	n, err := s.sessionService.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("failed to purge expired sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	if n > 0 {
		s.logger.Debug("sessions purged", logger.Int64("count", n))
	}
}
