package dto

import (
	"time"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
)

type BookingIDResponse struct {
	BookingID int `json:"bookingId"`
}

type RoomResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	HotelID   int    `json:"hotelId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type BookingResponse struct {
	ID   int          `json:"id"`
	Room RoomResponse `json:"Room"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		HotelID:   r.HotelID,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.BookingWithRoom) BookingResponse {
	return BookingResponse{
		ID:   b.ID,
		Room: ToRoomResponse(&b.Room),
	}
}
