package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT id, email, telegram_chat_id, created_at
			  FROM users
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Email, &u.TelegramChatID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *SessionRepository) Exists(ctx context.Context, userID int, token string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM sessions WHERE user_id = $1 AND token = $2)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, token)
	if err != nil {
		return false, fmt.Errorf("get session: %w", err)
	}

	var ok bool
	if err = row.Scan(&ok); err != nil {
		return false, fmt.Errorf("scan session: %w", err)
	}

	return ok, nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, ttl time.Duration) (int64, error) {
	query := `DELETE FROM sessions WHERE created_at < $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, time.Now().UTC().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sessions rows affected: %w", err)
	}

	return n, nil
}
