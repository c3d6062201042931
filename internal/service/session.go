package service

import (
	"context"
	"fmt"
	"time"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SessionService struct {
	repo   ports.SessionRepo
	ttl    time.Duration
	logger logger.Logger
}

func NewSessionService(repo ports.SessionRepo, ttl time.Duration, logger logger.Logger) *SessionService {
	return &SessionService{repo: repo, ttl: ttl, logger: logger}
}

// Authenticate accepts a token only while the session that issued it exists.
func (s *SessionService) Authenticate(ctx context.Context, userID int, token string) error {
	if userID <= 0 || token == "" {
		return domain.ErrInvalidSession
	}

	ok, err := s.repo.Exists(ctx, userID, token)
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if !ok {
		return domain.ErrInvalidSession
	}

	return nil
}

func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, s.ttl)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	if n > 0 {
		s.logger.Info("expired sessions purged",
			logger.Int64("count", n),
			logger.Duration("ttl", s.ttl),
		)
	}

	return n, nil
}
