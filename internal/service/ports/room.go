package ports

import (
	"context"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
)

type RoomRepo interface {
	GetWithBookings(ctx context.Context, roomID int) (*domain.Room, error)
}
