package ports

import (
	"context"
	"time"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
)

type UserRepo interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
}

type SessionRepo interface {
	Exists(ctx context.Context, userID int, token string) (bool, error)
	DeleteExpired(ctx context.Context, ttl time.Duration) (int64, error)
}
