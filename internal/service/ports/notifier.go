package ports

import (
	"context"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, room *domain.Room)
	NotifyBookingChanged(ctx context.Context, user *domain.User, room *domain.Room)
}
