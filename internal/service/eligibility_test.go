package service

import (
	"context"
	"errors"
	"testing"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkerDeps struct {
	enrollmentRepo *mocks.MockEnrollmentRepo
	ticketRepo     *mocks.MockTicketRepo
	roomRepo       *mocks.MockRoomRepo
}

func newChecker(t *testing.T) (*EligibilityChecker, checkerDeps) {
	t.Helper()
	d := checkerDeps{
		enrollmentRepo: mocks.NewMockEnrollmentRepo(t),
		ticketRepo:     mocks.NewMockTicketRepo(t),
		roomRepo:       mocks.NewMockRoomRepo(t),
	}
	return NewEligibilityChecker(d.enrollmentRepo, d.ticketRepo, d.roomRepo), d
}

func paidHotelTicket() *domain.Ticket {
	return &domain.Ticket{
		ID:           5,
		EnrollmentID: 3,
		Status:       domain.TicketStatusPaid,
		Type:         domain.TicketType{IsRemote: false, IncludesHotel: true},
	}
}

func roomWith(capacity, bookings int) *domain.Room {
	r := &domain.Room{ID: 10, Name: "101", Capacity: capacity, HotelID: 1}
	for i := 0; i < bookings; i++ {
		r.Bookings = append(r.Bookings, domain.Booking{ID: 100 + i, UserID: 50 + i, RoomID: r.ID})
	}
	return r
}

func TestEligibilityChecker_Check_Success(t *testing.T) {
	c, d := newChecker(t)

	d.enrollmentRepo.EXPECT().GetByUserID(mock.Anything, 1).Return(&domain.Enrollment{ID: 3, UserID: 1}, nil)
	d.ticketRepo.EXPECT().GetByEnrollmentID(mock.Anything, 3).Return(paidHotelTicket(), nil)
	d.roomRepo.EXPECT().GetWithBookings(mock.Anything, 10).Return(roomWith(1, 0), nil)

	require.NoError(t, c.Check(context.Background(), 1, 10))
}

func TestEligibilityChecker_Check_EnrollmentNotFound(t *testing.T) {
	c, d := newChecker(t)

	d.enrollmentRepo.EXPECT().GetByUserID(mock.Anything, 1).Return(nil, domain.ErrEnrollmentNotFound)

	err := c.Check(context.Background(), 1, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEligibilityChecker_Check_TicketNotFound(t *testing.T) {
	c, d := newChecker(t)

	d.enrollmentRepo.EXPECT().GetByUserID(mock.Anything, 1).Return(&domain.Enrollment{ID: 3}, nil)
	d.ticketRepo.EXPECT().GetByEnrollmentID(mock.Anything, 3).Return(nil, domain.ErrTicketNotFound)

	err := c.Check(context.Background(), 1, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEligibilityChecker_Check_RoomNotFound(t *testing.T) {
	c, d := newChecker(t)

	d.enrollmentRepo.EXPECT().GetByUserID(mock.Anything, 1).Return(&domain.Enrollment{ID: 3}, nil)
	d.ticketRepo.EXPECT().GetByEnrollmentID(mock.Anything, 3).Return(paidHotelTicket(), nil)
	d.roomRepo.EXPECT().GetWithBookings(mock.Anything, 10).Return(nil, domain.ErrRoomNotFound)

	err := c.Check(context.Background(), 1, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// A missing room wins over an ineligible ticket: existence checks come first.
func TestEligibilityChecker_Check_NotFoundBeforeCannotBook(t *testing.T) {
	c, d := newChecker(t)

	ticket := paidHotelTicket()
	ticket.Status = domain.TicketStatusReserved

	d.enrollmentRepo.EXPECT().GetByUserID(mock.Anything, 1).Return(&domain.Enrollment{ID: 3}, nil)
	d.ticketRepo.EXPECT().GetByEnrollmentID(mock.Anything, 3).Return(ticket, nil)
	d.roomRepo.EXPECT().GetWithBookings(mock.Anything, 10).Return(nil, domain.ErrRoomNotFound)

	err := c.Check(context.Background(), 1, 10)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrCannotBook)
}

func TestEligibilityChecker_Check_Capacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		bookings int
		wantErr  error
	}{
		{name: "empty room", capacity: 3, bookings: 0},
		{name: "one place left", capacity: 3, bookings: 2},
		{name: "full room", capacity: 3, bookings: 3, wantErr: domain.ErrRoomFull},
		{name: "zero capacity", capacity: 0, bookings: 0, wantErr: domain.ErrRoomFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, d := newChecker(t)

			d.enrollmentRepo.EXPECT().GetByUserID(mock.Anything, 1).Return(&domain.Enrollment{ID: 3}, nil)
			d.ticketRepo.EXPECT().GetByEnrollmentID(mock.Anything, 3).Return(paidHotelTicket(), nil)
			d.roomRepo.EXPECT().GetWithBookings(mock.Anything, 10).Return(roomWith(tt.capacity, tt.bookings), nil)

			err := c.Check(context.Background(), 1, 10)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrCannotBook)
		})
	}
}

func TestEligibilityChecker_Check_Ticket(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Ticket)
		wantErr error
	}{
		{
			name:    "reserved ticket",
			mutate:  func(tk *domain.Ticket) { tk.Status = domain.TicketStatusReserved },
			wantErr: domain.ErrTicketNotPaid,
		},
		{
			name:    "remote ticket",
			mutate:  func(tk *domain.Ticket) { tk.Type.IsRemote = true },
			wantErr: domain.ErrTicketRemote,
		},
		{
			name:    "ticket without hotel",
			mutate:  func(tk *domain.Ticket) { tk.Type.IncludesHotel = false },
			wantErr: domain.ErrTicketWithoutHotel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, d := newChecker(t)

			ticket := paidHotelTicket()
			tt.mutate(ticket)

			d.enrollmentRepo.EXPECT().GetByUserID(mock.Anything, 1).Return(&domain.Enrollment{ID: 3}, nil)
			d.ticketRepo.EXPECT().GetByEnrollmentID(mock.Anything, 3).Return(ticket, nil)
			// plenty of room: the ticket alone must decide
			d.roomRepo.EXPECT().GetWithBookings(mock.Anything, 10).Return(roomWith(100, 0), nil)

			err := c.Check(context.Background(), 1, 10)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrCannotBook)
		})
	}
}

func TestEligibilityChecker_Check_RepoError(t *testing.T) {
	c, d := newChecker(t)

	dbErr := errors.New("db error")
	d.enrollmentRepo.EXPECT().GetByUserID(mock.Anything, 1).Return(nil, dbErr)

	err := c.Check(context.Background(), 1, 10)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
