package notification

import (
	"context"
	"testing"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type recordingNotifier struct {
	created []int
	changed []int
}

func (r *recordingNotifier) NotifyBookingCreated(_ context.Context, _ *domain.User, room *domain.Room) {
	r.created = append(r.created, room.ID)
}

func (r *recordingNotifier) NotifyBookingChanged(_ context.Context, _ *domain.User, room *domain.Room) {
	r.changed = append(r.changed, room.ID)
}

func TestMulti_FansOut(t *testing.T) {
	a, b := &recordingNotifier{}, &recordingNotifier{}
	m := Multi{a, b}

	user := &domain.User{ID: 1}
	m.NotifyBookingCreated(context.Background(), user, &domain.Room{ID: 10})
	m.NotifyBookingChanged(context.Background(), user, &domain.Room{ID: 20})

	assert.Equal(t, []int{10}, a.created)
	assert.Equal(t, []int{10}, b.created)
	assert.Equal(t, []int{20}, a.changed)
	assert.Equal(t, []int{20}, b.changed)
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(42)
	user := &domain.User{ID: 1, TelegramChatID: &chatID}

	assert.NotPanics(t, func() {
		n.NotifyBookingCreated(context.Background(), user, &domain.Room{ID: 1, Name: "101"})
		n.NotifyBookingChanged(context.Background(), user, &domain.Room{ID: 2, Name: "102"})
	})
}

func TestRabbitPublisher_DisabledWithoutURL(t *testing.T) {
	p, err := NewRabbitPublisher("", "booking.events", newTestLogger(t))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		p.NotifyBookingCreated(context.Background(), &domain.User{ID: 1}, &domain.Room{ID: 1})
	})
	assert.NoError(t, p.Close())
}

func TestNewBookingEvent(t *testing.T) {
	e := newBookingEvent(EventBookingChanged, &domain.User{ID: 3}, &domain.Room{ID: 5, HotelID: 9})

	assert.Equal(t, EventBookingChanged, e.Type)
	assert.Equal(t, 3, e.UserID)
	assert.Equal(t, 5, e.RoomID)
	assert.Equal(t, 9, e.HotelID)
	assert.False(t, e.OccurredAt.IsZero())
}
