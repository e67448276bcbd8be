package dto

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DateTime    string `json:"date_time" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Image       string `json:"image"`
	Category    string `json:"category" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=drafted published"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DateTime    *string `json:"date_time"`
	Location    *string `json:"location"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
	Status      *string `json:"status" binding:"omitempty,oneof=drafted published"`
	Quantity    *int    `json:"quantity"`
}

type BookTicketRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
}
