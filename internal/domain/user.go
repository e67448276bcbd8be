package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserStats is a user row with aggregate counts, as shown in the admin panel.
type UserStats struct {
	User
	EventCount  int `json:"event_count"`
	TicketCount int `json:"ticket_count"`
}

type SignUpInput struct {
	Email    string
	Name     string
	Password string
	Phone    string
}

type UpdateProfileInput struct {
	Name  *string
	Phone *string
}
