package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const uniqueViolation = "23505"

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockVacancy(ctx, tx, b.RoomID, 0); err != nil {
		return err
	}

	query := `INSERT INTO bookings (user_id, room_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	err = tx.QueryRowContext(ctx, query, b.UserID, b.RoomID, b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByUser(ctx context.Context, userID int) (*domain.BookingWithRoom, error) {
	query := `SELECT b.id, r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
			  FROM bookings b
			  JOIN rooms r ON r.id = b.room_id
			  WHERE b.user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.BookingWithRoom
	if err = row.Scan(
		&b.ID, &b.Room.ID, &b.Room.Name, &b.Room.Capacity,
		&b.Room.HotelID, &b.Room.CreatedAt, &b.Room.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockVacancy(ctx, tx, roomID, bookingID); err != nil {
		return err
	}

	query := `UPDATE bookings
			  SET room_id = $1, updated_at = now()
			  WHERE id = $2`
	res, err := tx.ExecContext(ctx, query, roomID, bookingID)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return tx.Commit()
}

// lockVacancy locks the room row until tx ends and fails when the room
// cannot take one more booking. exceptBookingID is left out of the count.
func lockVacancy(ctx context.Context, tx rowQuerier, roomID, exceptBookingID int) error {
	var capacity int
	capacityQuery := `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, capacityQuery, roomID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("get room capacity: %w", err)
	}

	var reserved int
	countQuery := `SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND id <> $2`
	if err := tx.QueryRowContext(ctx, countQuery, roomID, exceptBookingID).Scan(&reserved); err != nil {
		return fmt.Errorf("count bookings: %w", err)
	}

	if reserved >= capacity {
		return domain.ErrRoomFull
	}

	return nil
}
