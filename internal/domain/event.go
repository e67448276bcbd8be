package domain

import "time"

type EventStatus string

const (
	EventStatusDrafted   EventStatus = "drafted"
	EventStatusPublished EventStatus = "published"
)

type Event struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	DateTime    time.Time   `json:"date_time"`
	Location    string      `json:"location"`
	Image       string      `json:"image,omitempty"`
	Category    string      `json:"category"`
	Status      EventStatus `json:"status"`
	Quantity    int         `json:"quantity"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type CreateEventInput struct {
	Title       string
	Description string
	DateTime    time.Time
	Location    string
	Image       string
	Category    string
	Status      EventStatus
	Quantity    int
}

// UpdateEventInput carries a partial update; nil fields keep their value.
type UpdateEventInput struct {
	Title       *string
	Description *string
	DateTime    *time.Time
	Location    *string
	Image       *string
	Category    *string
	Status      *EventStatus
	Quantity    *int
}

// Attendee is a ticket holder as listed on the event page.
type Attendee struct {
	TicketID  string     `json:"ticket_id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	CheckIn   bool       `json:"check_in"`
	CheckInAt *time.Time `json:"check_in_at,omitempty"`
}
