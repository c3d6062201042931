package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Authenticate_Success(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, time.Hour, newTestLogger(t))

	repo.EXPECT().Exists(mock.Anything, 1, "tok").Return(true, nil)

	require.NoError(t, svc.Authenticate(context.Background(), 1, "tok"))
}

func TestSessionService_Authenticate_NoSession(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, time.Hour, newTestLogger(t))

	repo.EXPECT().Exists(mock.Anything, 1, "tok").Return(false, nil)

	err := svc.Authenticate(context.Background(), 1, "tok")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionService_Authenticate_InvalidInput(t *testing.T) {
	svc := NewSessionService(nil, time.Hour, newTestLogger(t))

	assert.ErrorIs(t, svc.Authenticate(context.Background(), 0, "tok"), domain.ErrInvalidSession)
	assert.ErrorIs(t, svc.Authenticate(context.Background(), 1, ""), domain.ErrInvalidSession)
}

func TestSessionService_Authenticate_RepoError(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, time.Hour, newTestLogger(t))

	dbErr := errors.New("db error")
	repo.EXPECT().Exists(mock.Anything, 1, "tok").Return(false, dbErr)

	err := svc.Authenticate(context.Background(), 1, "tok")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionService_PurgeExpired(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, 24*time.Hour, newTestLogger(t))

	repo.EXPECT().DeleteExpired(mock.Anything, 24*time.Hour).Return(int64(3), nil)

	n, err := svc.PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestSessionService_PurgeExpired_RepoError(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, 24*time.Hour, newTestLogger(t))

	repo.EXPECT().DeleteExpired(mock.Anything, 24*time.Hour).Return(int64(0), errors.New("db error"))

	_, err := svc.PurgeExpired(context.Background())

	require.Error(t, err)
}
