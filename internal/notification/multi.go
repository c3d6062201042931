package notification

import (
	"context"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
)

type bookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, room *domain.Room)
	NotifyBookingChanged(ctx context.Context, user *domain.User, room *domain.Room)
}

// Multi fans every notification out to all notifiers in order.
type Multi []bookingNotifier

func (m Multi) NotifyBookingCreated(ctx context.Context, user *domain.User, room *domain.Room) {
	for _, n := range m {
		n.NotifyBookingCreated(ctx, user, room)
	}
}

func (m Multi) NotifyBookingChanged(ctx context.Context, user *domain.User, room *domain.Room) {
	for _, n := range m {
		n.NotifyBookingChanged(ctx, user, room)
	}
}
