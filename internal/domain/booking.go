package domain

import "time"

type Booking struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	RoomID    int       `json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingWithRoom is what a user sees when asking for their booking.
type BookingWithRoom struct {
	ID   int  `json:"id"`
	Room Room `json:"Room"`
}
