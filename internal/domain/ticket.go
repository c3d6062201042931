package domain

import "time"

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	IsRemote      bool      `json:"isRemote"`
	IncludesHotel bool      `json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Ticket struct {
	ID           int          `json:"id"`
	TicketTypeID int          `json:"ticketTypeId"`
	EnrollmentID int          `json:"enrollmentId"`
	Status       TicketStatus `json:"status"`
	Type         TicketType   `json:"TicketType"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
