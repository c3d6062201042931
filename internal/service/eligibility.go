package service

import (
	"context"
	"fmt"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/service/ports"
)

// EligibilityChecker decides whether a user may put a booking on a room.
// It only reads.
type EligibilityChecker struct {
	enrollmentRepo ports.EnrollmentRepo
	ticketRepo     ports.TicketRepo
	roomRepo       ports.RoomRepo
}

func NewEligibilityChecker(
	enrollmentRepo ports.EnrollmentRepo,
	ticketRepo ports.TicketRepo,
	roomRepo ports.RoomRepo,
) *EligibilityChecker {
	return &EligibilityChecker{
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
		roomRepo:       roomRepo,
	}
}

// Check runs the existence lookups first so that a missing record is
// reported as not found before any business rule is evaluated.
func (c *EligibilityChecker) Check(ctx context.Context, userID, roomID int) error {
	enrollment, err := c.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("check enrollment: %w", err)
	}

	ticket, err := c.ticketRepo.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return fmt.Errorf("check ticket: %w", err)
	}

	room, err := c.roomRepo.GetWithBookings(ctx, roomID)
	if err != nil {
		return fmt.Errorf("check room: %w", err)
	}

	if !room.HasVacancy() {
		return domain.ErrRoomFull
	}

	return checkTicket(ticket)
}

func checkTicket(t *domain.Ticket) error {
	switch {
	case t.Status == domain.TicketStatusReserved:
		return domain.ErrTicketNotPaid
	case t.Type.IsRemote:
		return domain.ErrTicketRemote
	case !t.Type.IncludesHotel:
		return domain.ErrTicketWithoutHotel
	}
	return nil
}
