package domain

import (
	"errors"
	"fmt"
)

// Kinds. Handlers map these to status codes; everything below wraps one of them.
var (
	ErrNotFound     = errors.New("no result for this search")
	ErrCannotBook   = errors.New("cannot book this room")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrUserNotFound       = fmt.Errorf("user: %w", ErrNotFound)
	ErrEnrollmentNotFound = fmt.Errorf("enrollment: %w", ErrNotFound)
	ErrTicketNotFound     = fmt.Errorf("ticket: %w", ErrNotFound)
	ErrRoomNotFound       = fmt.Errorf("room: %w", ErrNotFound)
	ErrBookingNotFound    = fmt.Errorf("booking: %w", ErrNotFound)
)

var (
	ErrRoomFull           = fmt.Errorf("room is full: %w", ErrCannotBook)
	ErrTicketNotPaid      = fmt.Errorf("ticket is not paid: %w", ErrCannotBook)
	ErrTicketRemote       = fmt.Errorf("ticket is remote: %w", ErrCannotBook)
	ErrTicketWithoutHotel = fmt.Errorf("ticket does not include hotel: %w", ErrCannotBook)
	ErrAlreadyBooked      = fmt.Errorf("user already has a booking: %w", ErrCannotBook)
)

var (
	ErrBookingNotOwned = fmt.Errorf("booking belongs to another user: %w", ErrUnauthorized)
	ErrInvalidSession  = fmt.Errorf("invalid session: %w", ErrUnauthorized)
)

var (
	ErrValidation = errors.New("validation error")
)
