package domain

import "time"

type User struct {
	ID             int       `json:"id"`
	Email          string    `json:"email"`
	TelegramChatID *int64    `json:"telegramChatId"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Session struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}

type Address struct {
	ID            int    `json:"id"`
	EnrollmentID  int    `json:"enrollmentId"`
	CEP           string `json:"cep"`
	Street        string `json:"street"`
	City          string `json:"city"`
	State         string `json:"state"`
	Number        string `json:"number"`
	Neighborhood  string `json:"neighborhood"`
	AddressDetail string `json:"addressDetail"`
}

type Enrollment struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Birthday  time.Time `json:"birthday"`
	Phone     string    `json:"phone"`
	Address   Address   `json:"Address"`
	CreatedAt time.Time `json:"createdAt"`
}
