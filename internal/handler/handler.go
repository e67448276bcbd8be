package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/rahmedalmosd25-ux/eventhub/internal/handler/dto"
	"github.com/rahmedalmosd25-ux/eventhub/internal/middleware"
	"github.com/rahmedalmosd25-ux/eventhub/internal/ticketdoc"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	UpdateProfile(ctx context.Context, userID string, input domain.UpdateProfileInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.UserStats, error)
}

type EventSvc interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreateEventInput) (*domain.Event, error)
	ListPublished(ctx context.Context) ([]*domain.Event, error)
	ListForActor(ctx context.Context, actor domain.Actor) ([]*domain.Event, error)
	ListAll(ctx context.Context) ([]*domain.Event, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error)
	Update(ctx context.Context, actor domain.Actor, id string, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	Attendees(ctx context.Context, eventID string) ([]*domain.Attendee, error)
}

type TicketSvc interface {
	Book(ctx context.Context, eventID, userID string) (*domain.TicketDetails, error)
	Cancel(ctx context.Context, ticketID, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.TicketDetails, error)
	GetForOwner(ctx context.Context, ticketID, userID string) (*domain.TicketDetails, error)
}

type Handler struct {
	authService   AuthSvc
	eventService  EventSvc
	ticketService TicketSvc
}

func NewHandler(authService AuthSvc, eventService EventSvc, ticketService TicketSvc) *Handler {
	return &Handler{
		authService:   authService,
		eventService:  eventService,
		ticketService: ticketService,
	}
}

func (h *Handler) actor(c *ginext.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			dto.ErrorResponse{Error: "authentication required"},
		)
	}
	return actor, ok
}

// Auth

func (h *Handler) SignUp(c *ginext.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.authService.SignUp(c.Request.Context(), domain.SignUpInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	})
}

// Logout is client-side with stateless tokens; the endpoint exists so the
// frontend has something to call.
func (h *Handler) Logout(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), actor.ID, domain.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date_time format, expected RFC3339",
		})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), actor, domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		DateTime:    dateTime,
		Location:    req.Location,
		Image:       req.Image,
		Category:    req.Category,
		Status:      domain.EventStatus(req.Status),
		Quantity:    req.Quantity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) ListPublishedEvents(c *ginext.Context) {
	events, err := h.eventService.ListPublished(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventResponses(events))
}

func (h *Handler) ListUserEvents(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListForActor(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventResponses(events))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Image:       req.Image,
		Category:    req.Category,
		Quantity:    req.Quantity,
	}
	if req.DateTime != nil {
		dateTime, err := time.Parse(time.RFC3339, *req.DateTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date_time format, expected RFC3339",
			})
			return
		}
		input.DateTime = &dateTime
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		input.Status = &status
	}

	event, err := h.eventService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), actor, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ListEventAttendees(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	attendees, err := h.eventService.Attendees(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendeeResponse, 0, len(attendees))
	for _, a := range attendees {
		resp = append(resp, dto.ToAttendeeResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

// Tickets

func (h *Handler) BookTicket(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.BookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	details, err := h.ticketService.Book(c.Request.Context(), req.EventID, actor.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketDetailsResponse(details))
}

func (h *Handler) ListUserTickets(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	tickets, err := h.ticketService.ListByUser(c.Request.Context(), actor.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketDetailsResponse, 0, len(tickets))
	for _, d := range tickets {
		resp = append(resp, dto.ToTicketDetailsResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelTicket(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	if err := h.ticketService.Cancel(c.Request.Context(), id, actor.ID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) GetTicketQRCode(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	details, err := h.ticketService.GetForOwner(c.Request.Context(), id, actor.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	qr, err := ticketdoc.QRDataURL(details)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QRCodeResponse{
		QRCode: qr,
		Ticket: dto.ToTicketResponse(&details.Ticket),
	})
}

func (h *Handler) DownloadTicketPDF(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	details, err := h.ticketService.GetForOwner(c.Request.Context(), id, actor.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	pdf, err := ticketdoc.PDF(details)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "ticket-"+details.Ticket.ID+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Admin

func (h *Handler) ListAllUsers(c *ginext.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserStatsResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserStatsResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListAllEvents(c *ginext.Context) {
	events, err := h.eventService.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventResponses(events))
}

func toEventResponses(events []*domain.Event) []dto.EventResponse {
	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSoldOut),
		errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEventNotPublished):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
