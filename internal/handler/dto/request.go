package dto

type BookingRequest struct {
	RoomID int `json:"roomId" binding:"required,gt=0"`
}
