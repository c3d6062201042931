package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	lockRoomQuery     = `SELECT capacity FROM rooms WHERE id = \$1 FOR UPDATE`
	countBookingQuery = `SELECT COUNT\(\*\) FROM bookings WHERE room_id = \$1 AND id <> \$2`
)

var noRetry = retry.Strategy{Attempts: 1}

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &dbpg.DB{Master: db}, m
}

func newTestBookingRepo(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, m := newMockDB(t)
	r := NewBookingRepo(db)
	r.strategy = noRetry
	return r, m
}

func expectVacancy(m sqlmock.Sqlmock, roomID, exceptBookingID, capacity, reserved int) {
	m.ExpectQuery(lockRoomQuery).
		WithArgs(roomID).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(capacity))
	m.ExpectQuery(countBookingQuery).
		WithArgs(roomID, exceptBookingID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(reserved))
}

func newBooking() *domain.Booking {
	now := time.Now().UTC()
	return &domain.Booking{UserID: 1, RoomID: 10, CreatedAt: now, UpdatedAt: now}
}

// --- Create ---

func TestBookingRepository_Create_Success(t *testing.T) {
	r, m := newTestBookingRepo(t)

	m.ExpectBegin()
	expectVacancy(m, 10, 0, 2, 1)
	m.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(1, 10, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(55))
	m.ExpectCommit()

	b := newBooking()
	err := r.Create(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, 55, b.ID)
	require.NoError(t, m.ExpectationsWereMet())
}

func TestBookingRepository_Create_RoomFull(t *testing.T) {
	for name, tc := range map[string]struct{ capacity, reserved int }{
		"at capacity":   {capacity: 2, reserved: 2},
		"zero capacity": {capacity: 0, reserved: 0},
	} {
		t.Run(name, func(t *testing.T) {
			r, m := newTestBookingRepo(t)

			m.ExpectBegin()
			expectVacancy(m, 10, 0, tc.capacity, tc.reserved)
			m.ExpectRollback()

			err := r.Create(context.Background(), newBooking())

			assert.ErrorIs(t, err, domain.ErrRoomFull)
			assert.ErrorIs(t, err, domain.ErrCannotBook)
			require.NoError(t, m.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_Create_RoomMissing(t *testing.T) {
	r, m := newTestBookingRepo(t)

	m.ExpectBegin()
	m.ExpectQuery(lockRoomQuery).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}))
	m.ExpectRollback()

	err := r.Create(context.Background(), newBooking())

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	require.NoError(t, m.ExpectationsWereMet())
}

func TestBookingRepository_Create_UserAlreadyBooked(t *testing.T) {
	r, m := newTestBookingRepo(t)

	m.ExpectBegin()
	expectVacancy(m, 10, 0, 3, 1)
	m.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: uniqueViolation})
	m.ExpectRollback()

	err := r.Create(context.Background(), newBooking())

	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
	assert.ErrorIs(t, err, domain.ErrCannotBook)
	require.NoError(t, m.ExpectationsWereMet())
}

func TestBookingRepository_Create_OtherInsertError(t *testing.T) {
	r, m := newTestBookingRepo(t)

	m.ExpectBegin()
	expectVacancy(m, 10, 0, 3, 1)
	m.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "23503"})
	m.ExpectRollback()

	err := r.Create(context.Background(), newBooking())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadyBooked)
	require.NoError(t, m.ExpectationsWereMet())
}

// --- UpdateRoom ---

func TestBookingRepository_UpdateRoom_Success(t *testing.T) {
	r, m := newTestBookingRepo(t)

	m.ExpectBegin()
	expectVacancy(m, 20, 7, 2, 1)
	m.ExpectExec(`UPDATE bookings`).
		WithArgs(20, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	m.ExpectCommit()

	err := r.UpdateRoom(context.Background(), 7, 20)

	require.NoError(t, err)
	require.NoError(t, m.ExpectationsWereMet())
}

func TestBookingRepository_UpdateRoom_SameRoomExcludesOwnBooking(t *testing.T) {
	r, m := newTestBookingRepo(t)

	// room of capacity 1 already holding booking 7: the count leaves 7 out
	m.ExpectBegin()
	expectVacancy(m, 10, 7, 1, 0)
	m.ExpectExec(`UPDATE bookings`).
		WithArgs(10, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	m.ExpectCommit()

	err := r.UpdateRoom(context.Background(), 7, 10)

	require.NoError(t, err)
	require.NoError(t, m.ExpectationsWereMet())
}

func TestBookingRepository_UpdateRoom_RoomFull(t *testing.T) {
	r, m := newTestBookingRepo(t)

	m.ExpectBegin()
	expectVacancy(m, 20, 7, 2, 2)
	m.ExpectRollback()

	err := r.UpdateRoom(context.Background(), 7, 20)

	assert.ErrorIs(t, err, domain.ErrRoomFull)
	require.NoError(t, m.ExpectationsWereMet())
}

func TestBookingRepository_UpdateRoom_BookingMissing(t *testing.T) {
	r, m := newTestBookingRepo(t)

	m.ExpectBegin()
	expectVacancy(m, 20, 7, 2, 0)
	m.ExpectExec(`UPDATE bookings`).
		WithArgs(20, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	m.ExpectRollback()

	err := r.UpdateRoom(context.Background(), 7, 20)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	require.NoError(t, m.ExpectationsWereMet())
}

func TestBookingRepository_UpdateRoom_RoomMissing(t *testing.T) {
	r, m := newTestBookingRepo(t)

	m.ExpectBegin()
	m.ExpectQuery(lockRoomQuery).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}))
	m.ExpectRollback()

	err := r.UpdateRoom(context.Background(), 7, 99)

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	require.NoError(t, m.ExpectationsWereMet())
}

// --- GetByUser ---

func TestBookingRepository_GetByUser_Success(t *testing.T) {
	r, m := newTestBookingRepo(t)

	now := time.Now().UTC()
	m.ExpectQuery(`FROM bookings b`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "room_id", "name", "capacity", "hotel_id", "created_at", "updated_at",
		}).AddRow(7, 10, "101", 3, 2, now, now))

	b, err := r.GetByUser(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 7, b.ID)
	assert.Equal(t, 10, b.Room.ID)
	assert.Equal(t, "101", b.Room.Name)
	assert.Equal(t, 2, b.Room.HotelID)
	require.NoError(t, m.ExpectationsWereMet())
}

func TestBookingRepository_GetByUser_NotFound(t *testing.T) {
	r, m := newTestBookingRepo(t)

	m.ExpectQuery(`FROM bookings b`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := r.GetByUser(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	require.NoError(t, m.ExpectationsWereMet())
}
