package ports

import (
	"context"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
)

type EnrollmentRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Enrollment, error)
}

type TicketRepo interface {
	GetByEnrollmentID(ctx context.Context, enrollmentID int) (*domain.Ticket, error)
}
