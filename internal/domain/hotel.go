package domain

import "time"

type Hotel struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Room struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int       `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Bookings is only filled by lookups that need to count occupancy.
	Bookings []Booking `json:"-"`
}

// HasVacancy reports whether one more booking fits into the room.
func (r *Room) HasVacancy() bool {
	reserved := len(r.Bookings) + 1
	return reserved <= r.Capacity
}
