package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EnrollmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEnrollmentRepo(db *dbpg.DB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// GetByUserID returns the enrollment together with its address. An
// enrollment without an address row comes back with a zero Address.
func (r *EnrollmentRepository) GetByUserID(ctx context.Context, userID int) (*domain.Enrollment, error) {
	query := `SELECT e.id, e.user_id, e.name, e.cpf, e.birthday, e.phone, e.created_at,
					 COALESCE(a.id, 0), COALESCE(a.cep, ''), COALESCE(a.street, ''),
					 COALESCE(a.city, ''), COALESCE(a.state, ''), COALESCE(a.number, ''),
					 COALESCE(a.neighborhood, ''), COALESCE(a.address_detail, '')
			  FROM enrollments e
			  LEFT JOIN addresses a ON a.enrollment_id = e.id
			  WHERE e.user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}

	var e domain.Enrollment
	if err = row.Scan(
		&e.ID, &e.UserID, &e.Name, &e.CPF, &e.Birthday, &e.Phone, &e.CreatedAt,
		&e.Address.ID, &e.Address.CEP, &e.Address.Street,
		&e.Address.City, &e.Address.State, &e.Address.Number,
		&e.Address.Neighborhood, &e.Address.AddressDetail,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("scan enrollment: %w", err)
	}
	e.Address.EnrollmentID = e.ID

	return &e, nil
}

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *TicketRepository) GetByEnrollmentID(ctx context.Context, enrollmentID int) (*domain.Ticket, error) {
	query := `SELECT t.id, t.ticket_type_id, t.enrollment_id, t.status, t.created_at, t.updated_at,
					 tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
			  FROM tickets t
			  JOIN ticket_types tt ON tt.id = t.ticket_type_id
			  WHERE t.enrollment_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	var t domain.Ticket
	if err = row.Scan(
		&t.ID, &t.TicketTypeID, &t.EnrollmentID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		&t.Type.ID, &t.Type.Name, &t.Type.Price, &t.Type.IsRemote, &t.Type.IncludesHotel,
		&t.Type.CreatedAt, &t.Type.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}
