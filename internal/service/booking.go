package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type eligibility interface {
	Check(ctx context.Context, userID, roomID int) error
}

type BookingService struct {
	checker     eligibility
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	userRepo    ports.UserRepo
	cache       ports.BookingCache
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	checker eligibility,
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	userRepo ports.UserRepo,
	cache ports.BookingCache,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		checker:     checker,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		cache:       cache,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *BookingService) Create(ctx context.Context, userID, roomID int) (int, error) {
	if err := s.checker.Check(ctx, userID, roomID); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		UserID:    userID,
		RoomID:    roomID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return 0, fmt.Errorf("create booking: %w", err)
	}

	s.cache.Invalidate(ctx, userID)

	s.logger.Info("booking created",
		logger.Int("booking_id", booking.ID),
		logger.Int("room_id", roomID),
		logger.Int("user_id", userID),
	)

	go s.notify(context.WithoutCancel(ctx), userID, roomID, false)

	return booking.ID, nil
}

func (s *BookingService) Find(ctx context.Context, userID int) (*domain.BookingWithRoom, error) {
	if b, ok := s.cache.Get(ctx, userID); ok {
		return b, nil
	}

	// read before storage so a concurrent Invalidate makes Set a no-op
	gen := s.cache.Generation(ctx, userID)

	b, err := s.bookingRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, userID, gen, b)

	return b, nil
}

func (s *BookingService) Update(ctx context.Context, userID, roomID, bookingID int) (int, error) {
	if err := s.checker.Check(ctx, userID, roomID); err != nil {
		return 0, err
	}

	// ownership: the user's only booking must be the one being changed
	current, err := s.bookingRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return 0, domain.ErrBookingNotOwned
		}
		return 0, fmt.Errorf("get current booking: %w", err)
	}
	if current.ID != bookingID {
		return 0, domain.ErrBookingNotOwned
	}

	if err = s.bookingRepo.UpdateRoom(ctx, bookingID, roomID); err != nil {
		return 0, fmt.Errorf("update booking: %w", err)
	}

	s.cache.Invalidate(ctx, userID)

	s.logger.Info("booking changed",
		logger.Int("booking_id", bookingID),
		logger.Int("from_room_id", current.Room.ID),
		logger.Int("to_room_id", roomID),
		logger.Int("user_id", userID),
	)

	go s.notify(context.WithoutCancel(ctx), userID, roomID, true)

	return bookingID, nil
}

func (s *BookingService) notify(ctx context.Context, userID, roomID int, changed bool) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.Int("user_id", userID),
			logger.String("error", err.Error()),
		)
		return
	}

	room, err := s.roomRepo.GetWithBookings(ctx, roomID)
	if err != nil {
		s.logger.Error("failed to get room for notification",
			logger.Int("room_id", roomID),
			logger.String("error", err.Error()),
		)
		return
	}

	if changed {
		s.notifier.NotifyBookingChanged(ctx, user, room)
		return
	}
	s.notifier.NotifyBookingCreated(ctx, user, room)
}
