package dto

import (
	"time"

	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
)

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type UserStatsResponse struct {
	UserResponse
	EventCount  int `json:"event_count"`
	TicketCount int `json:"ticket_count"`
}

type EventResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DateTime    string `json:"date_time"`
	Location    string `json:"location"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Quantity    int    `json:"quantity"`
	CreatedAt   string `json:"created_at"`
}

type TicketResponse struct {
	ID        string     `json:"id"`
	EventID   string     `json:"event_id"`
	UserID    string     `json:"user_id"`
	CheckIn   bool       `json:"check_in"`
	CheckInAt *time.Time `json:"check_in_at,omitempty"`
	CreatedAt string     `json:"created_at"`
}

type TicketDetailsResponse struct {
	Ticket TicketResponse `json:"ticket"`
	Event  EventResponse  `json:"event"`
}

type AttendeeResponse struct {
	TicketID  string     `json:"ticket_id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	CheckIn   bool       `json:"check_in"`
	CheckInAt *time.Time `json:"check_in_at,omitempty"`
}

type QRCodeResponse struct {
	QRCode string         `json:"qr_code"`
	Ticket TicketResponse `json:"ticket"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserStatsResponse(s *domain.UserStats) UserStatsResponse {
	return UserStatsResponse{
		UserResponse: ToUserResponse(&s.User),
		EventCount:   s.EventCount,
		TicketCount:  s.TicketCount,
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Title:       e.Title,
		Description: e.Description,
		DateTime:    e.DateTime.Format(time.RFC3339),
		Location:    e.Location,
		Image:       e.Image,
		Category:    e.Category,
		Status:      string(e.Status),
		Quantity:    e.Quantity,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:        t.ID,
		EventID:   t.EventID,
		UserID:    t.UserID,
		CheckIn:   t.CheckIn,
		CheckInAt: t.CheckInAt,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func ToTicketDetailsResponse(d *domain.TicketDetails) TicketDetailsResponse {
	return TicketDetailsResponse{
		Ticket: ToTicketResponse(&d.Ticket),
		Event:  ToEventResponse(&d.Event),
	}
}

func ToAttendeeResponse(a *domain.Attendee) AttendeeResponse {
	return AttendeeResponse{
		TicketID:  a.TicketID,
		UserID:    a.UserID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		CheckIn:   a.CheckIn,
		CheckInAt: a.CheckInAt,
	}
}
