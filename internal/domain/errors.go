package domain

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrTicketNotFound = errors.New("ticket not found")
)

var (
	ErrEventNotPublished = errors.New("event is not published")
	ErrSoldOut           = errors.New("event is sold out")
	ErrAlreadyBooked     = errors.New("user already has a ticket for this event")
	ErrAlreadyCheckedIn  = errors.New("ticket has already been checked in")
	ErrForbidden         = errors.New("permission denied")
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrValidation = errors.New("validation error")
)
