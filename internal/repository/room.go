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

type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *RoomRepository) GetWithBookings(ctx context.Context, roomID int) (*domain.Room, error) {
	query := `SELECT id, name, capacity, hotel_id, created_at, updated_at
			  FROM rooms
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	var room domain.Room
	if err = row.Scan(
		&room.ID, &room.Name, &room.Capacity,
		&room.HotelID, &room.CreatedAt, &room.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	bookings, err := r.listBookings(ctx, roomID)
	if err != nil {
		return nil, err
	}
	room.Bookings = bookings

	return &room, nil
}

func (r *RoomRepository) listBookings(ctx context.Context, roomID int) ([]domain.Booking, error) {
	query := `SELECT id, user_id, room_id, created_at, updated_at
			  FROM bookings
			  WHERE room_id = $1
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by room: %w", err)
	}
	defer rows.Close()

	res := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan booking by room: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
