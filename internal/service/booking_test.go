package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	smocks "github.com/EricoBruner/drivent-back-fourth-sprint/internal/service/mocks"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

type bookingDeps struct {
	checker     *smocks.MockEligibility
	bookingRepo *mocks.MockBookingRepo
	roomRepo    *mocks.MockRoomRepo
	userRepo    *mocks.MockUserRepo
	cache       *mocks.MockBookingCache
	notifier    *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingDeps) {
	t.Helper()
	d := bookingDeps{
		checker:     smocks.NewMockEligibility(t),
		bookingRepo: mocks.NewMockBookingRepo(t),
		roomRepo:    mocks.NewMockRoomRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		cache:       mocks.NewMockBookingCache(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(d.checker, d.bookingRepo, d.roomRepo, d.userRepo, d.cache, d.notifier, newTestLogger(t))
	return svc, d
}

func waitNotified(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, d := newBookingService(t)

	user := &domain.User{ID: 1}
	room := &domain.Room{ID: 10, Name: "101", Capacity: 1}
	notified := make(chan struct{})

	d.checker.EXPECT().Check(mock.Anything, 1, 10).Return(nil)
	d.bookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(_ context.Context, b *domain.Booking) { b.ID = 77 }).
		Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, 1).Return()
	d.userRepo.EXPECT().GetByID(mock.Anything, 1).Return(user, nil)
	d.roomRepo.EXPECT().GetWithBookings(mock.Anything, 10).Return(room, nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, room).
		Run(func(context.Context, *domain.User, *domain.Room) { close(notified) }).
		Return()

	id, err := svc.Create(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 77, id)
	waitNotified(t, notified)
}

func TestBookingService_Create_WritesUserAndRoom(t *testing.T) {
	svc, d := newBookingService(t)

	var stored *domain.Booking
	lookedUp := make(chan struct{})
	d.checker.EXPECT().Check(mock.Anything, 1, 10).Return(nil)
	d.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, b *domain.Booking) {
			b.ID = 1
			stored = b
		}).
		Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, 1).Return()
	d.userRepo.EXPECT().GetByID(mock.Anything, 1).
		Run(func(context.Context, int) { close(lookedUp) }).
		Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), 1, 10)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.UserID)
	assert.Equal(t, 10, stored.RoomID)
	assert.False(t, stored.CreatedAt.IsZero())
	waitNotified(t, lookedUp)
}

func TestBookingService_Create_CheckFails(t *testing.T) {
	for _, checkErr := range []error{
		domain.ErrEnrollmentNotFound,
		domain.ErrTicketNotFound,
		domain.ErrRoomNotFound,
		domain.ErrRoomFull,
		domain.ErrTicketNotPaid,
	} {
		t.Run(checkErr.Error(), func(t *testing.T) {
			svc, d := newBookingService(t)

			d.checker.EXPECT().Check(mock.Anything, 1, 10).Return(checkErr)

			_, err := svc.Create(context.Background(), 1, 10)

			assert.ErrorIs(t, err, checkErr)
			d.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestBookingService_Create_RepoError(t *testing.T) {
	svc, d := newBookingService(t)

	d.checker.EXPECT().Check(mock.Anything, 1, 10).Return(nil)
	d.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrRoomFull)

	_, err := svc.Create(context.Background(), 1, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCannotBook)
}

func TestBookingService_Find_FromRepo(t *testing.T) {
	svc, d := newBookingService(t)

	b := &domain.BookingWithRoom{ID: 7, Room: domain.Room{ID: 10}}
	d.cache.EXPECT().Get(mock.Anything, 1).Return(nil, false)
	mock.InOrder(
		d.cache.EXPECT().Generation(mock.Anything, 1).Return(int64(4)).Call,
		d.bookingRepo.EXPECT().GetByUser(mock.Anything, 1).Return(b, nil).Call,
		d.cache.EXPECT().Set(mock.Anything, 1, int64(4), b).Return().Call,
	)

	got, err := svc.Find(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestBookingService_Find_FromCache(t *testing.T) {
	svc, d := newBookingService(t)

	b := &domain.BookingWithRoom{ID: 7, Room: domain.Room{ID: 10}}
	d.cache.EXPECT().Get(mock.Anything, 1).Return(b, true)

	got, err := svc.Find(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)
}

func TestBookingService_Find_NotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.cache.EXPECT().Get(mock.Anything, 1).Return(nil, false)
	d.cache.EXPECT().Generation(mock.Anything, 1).Return(int64(0))
	d.bookingRepo.EXPECT().GetByUser(mock.Anything, 1).Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Find(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_Update_Success(t *testing.T) {
	svc, d := newBookingService(t)

	user := &domain.User{ID: 1}
	newRoom := &domain.Room{ID: 20, Name: "202", Capacity: 2}
	notified := make(chan struct{})

	d.checker.EXPECT().Check(mock.Anything, 1, 20).Return(nil)
	d.bookingRepo.EXPECT().GetByUser(mock.Anything, 1).Return(&domain.BookingWithRoom{ID: 7, Room: domain.Room{ID: 10}}, nil)
	d.bookingRepo.EXPECT().UpdateRoom(mock.Anything, 7, 20).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, 1).Return()
	d.userRepo.EXPECT().GetByID(mock.Anything, 1).Return(user, nil)
	d.roomRepo.EXPECT().GetWithBookings(mock.Anything, 20).Return(newRoom, nil)
	d.notifier.EXPECT().NotifyBookingChanged(mock.Anything, user, newRoom).
		Run(func(context.Context, *domain.User, *domain.Room) { close(notified) }).
		Return()

	id, err := svc.Update(context.Background(), 1, 20, 7)

	require.NoError(t, err)
	assert.Equal(t, 7, id)
	waitNotified(t, notified)
}

func TestBookingService_Update_NotOwner(t *testing.T) {
	svc, d := newBookingService(t)

	d.checker.EXPECT().Check(mock.Anything, 1, 20).Return(nil)
	d.bookingRepo.EXPECT().GetByUser(mock.Anything, 1).Return(&domain.BookingWithRoom{ID: 8}, nil)

	_, err := svc.Update(context.Background(), 1, 20, 7)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	d.bookingRepo.AssertNotCalled(t, "UpdateRoom", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Update_NoCurrentBooking(t *testing.T) {
	svc, d := newBookingService(t)

	d.checker.EXPECT().Check(mock.Anything, 1, 20).Return(nil)
	d.bookingRepo.EXPECT().GetByUser(mock.Anything, 1).Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Update(context.Background(), 1, 20, 7)

	assert.ErrorIs(t, err, domain.ErrBookingNotOwned)
}

func TestBookingService_Update_CheckFails(t *testing.T) {
	svc, d := newBookingService(t)

	d.checker.EXPECT().Check(mock.Anything, 1, 20).Return(domain.ErrRoomFull)

	_, err := svc.Update(context.Background(), 1, 20, 7)

	assert.ErrorIs(t, err, domain.ErrCannotBook)
	d.bookingRepo.AssertNotCalled(t, "GetByUser", mock.Anything, mock.Anything)
}

func TestBookingService_Update_RepoError(t *testing.T) {
	svc, d := newBookingService(t)

	dbErr := errors.New("db error")
	d.checker.EXPECT().Check(mock.Anything, 1, 20).Return(nil)
	d.bookingRepo.EXPECT().GetByUser(mock.Anything, 1).Return(&domain.BookingWithRoom{ID: 7}, nil)
	d.bookingRepo.EXPECT().UpdateRoom(mock.Anything, 7, 20).Return(dbErr)

	_, err := svc.Update(context.Background(), 1, 20, 7)

	assert.ErrorIs(t, err, dbErr)
}

func TestBookingService_Notify_UserLookupFails(t *testing.T) {
	svc, d := newBookingService(t)

	d.userRepo.EXPECT().GetByID(mock.Anything, 1).Return(nil, domain.ErrUserNotFound)

	svc.notify(context.Background(), 1, 10, false)

	d.notifier.AssertNotCalled(t, "NotifyBookingCreated", mock.Anything, mock.Anything, mock.Anything)
}
