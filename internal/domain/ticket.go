package domain

import "time"

type Ticket struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	UserID     string     `json:"user_id"`
	CheckIn    bool       `json:"check_in"`
	CheckInAt  *time.Time `json:"check_in_at,omitempty"`
	RemindedAt *time.Time `json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TicketDetails is a ticket joined with its event and holder, the shape
// needed to render a QR payload, a PDF and a confirmation email.
type TicketDetails struct {
	Ticket Ticket `json:"ticket"`
	Event  Event  `json:"event"`
	User   User   `json:"user"`
}
