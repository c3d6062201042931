package ports

import (
	"context"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
)

type BookingRepo interface {
	// Create inserts b and sets b.ID.
	Create(ctx context.Context, b *domain.Booking) error
	GetByUser(ctx context.Context, userID int) (*domain.BookingWithRoom, error)
	UpdateRoom(ctx context.Context, bookingID, roomID int) error
}

type BookingCache interface {
	Get(ctx context.Context, userID int) (*domain.BookingWithRoom, bool)
	// Generation changes on every Invalidate of userID.
	Generation(ctx context.Context, userID int) int64
	// Set stores b only if userID is still at gen.
	Set(ctx context.Context, userID int, gen int64, b *domain.BookingWithRoom)
	Invalidate(ctx context.Context, userID int)
}
