package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/rahmedalmosd25-ux/eventhub/internal/handler/dto"
	hmocks "github.com/rahmedalmosd25-ux/eventhub/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

// asActor stands in for the auth middleware in tests.
func asActor(actor domain.Actor) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set("actor", actor)
		c.Next()
	}
}

func setupRouter(t *testing.T, actor domain.Actor) (*hmocks.MockAuthSvc, *hmocks.MockEventSvc, *hmocks.MockTicketSvc, http.Handler) {
	t.Helper()
	authSvc := hmocks.NewMockAuthSvc(t)
	eventSvc := hmocks.NewMockEventSvc(t)
	ticketSvc := hmocks.NewMockTicketSvc(t)

	h := NewHandler(authSvc, eventSvc, ticketSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/login", h.Login)

		api.GET("/events/published", h.ListPublishedEvents)

		authed := api.Group("", asActor(actor))
		{
			authed.PUT("/auth/profile", h.UpdateProfile)
			authed.POST("/events", h.CreateEvent)
			authed.PUT("/events/:id", h.UpdateEvent)
			authed.DELETE("/events/:id", h.DeleteEvent)
			authed.POST("/tickets", h.BookTicket)
			authed.GET("/tickets/user", h.ListUserTickets)
			authed.DELETE("/tickets/:id", h.CancelTicket)
			authed.GET("/tickets/:id/qrcode", h.GetTicketQRCode)
			authed.GET("/tickets/:id/pdf", h.DownloadTicketPDF)
		}
	}

	return authSvc, eventSvc, ticketSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_SignUp_Success(t *testing.T) {
	authSvc, _, _, r := setupRouter(t, domain.Actor{})

	user := &domain.User{ID: uuid.New().String(), Email: "alice@example.com", Name: "Alice", Role: domain.RoleUser}
	authSvc.EXPECT().SignUp(mock.Anything, mock.Anything).Return(user, "signed-token", nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", dto.SignUpRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "secret123",
		Phone:    "+10000000000",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestHandler_SignUp_EmailTaken(t *testing.T) {
	authSvc, _, _, r := setupRouter(t, domain.Actor{})

	authSvc.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, "", domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", dto.SignUpRequest{
		Email:    "taken@example.com",
		Name:     "Alice",
		Password: "secret123",
		Phone:    "+10000000000",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	authSvc, _, _, r := setupRouter(t, domain.Actor{})

	authSvc.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").
		Return(nil, "", domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	_, eventSvc, _, r := setupRouter(t, domain.Actor{ID: "owner"})

	event := &domain.Event{ID: uuid.New().String(), OwnerID: "owner", Title: "Concert", Status: domain.EventStatusDrafted, Quantity: 100}
	eventSvc.EXPECT().Create(mock.Anything, domain.Actor{ID: "owner"}, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:    "Concert",
		DateTime: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		Location: "Main Hall",
		Category: "music",
		Quantity: 100,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Concert", resp.Title)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t, domain.Actor{ID: "owner"})

	w := doJSON(t, r, http.MethodPost, "/api/events", ginext.H{
		"title":     "Concert",
		"date_time": "not-a-date",
		"location":  "Main Hall",
		"category":  "music",
		"quantity":  100,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateEvent_Forbidden(t *testing.T) {
	_, eventSvc, _, r := setupRouter(t, domain.Actor{ID: "intruder"})

	id := uuid.New().String()
	eventSvc.EXPECT().Update(mock.Anything, domain.Actor{ID: "intruder"}, id, mock.Anything).
		Return(nil, domain.ErrForbidden)

	title := "hijacked"
	w := doJSON(t, r, http.MethodPut, "/api/events/"+id, dto.UpdateEventRequest{Title: &title})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteEvent_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t, domain.Actor{ID: "owner"})

	w := doJSON(t, r, http.MethodDelete, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Tickets ---

func TestHandler_BookTicket_Success(t *testing.T) {
	_, _, ticketSvc, r := setupRouter(t, domain.Actor{ID: "u1"})

	eventID := uuid.New().String()
	details := &domain.TicketDetails{
		Ticket: domain.Ticket{ID: uuid.New().String(), EventID: eventID, UserID: "u1"},
		Event:  domain.Event{ID: eventID, Title: "Concert"},
		User:   domain.User{ID: "u1", Email: "alice@example.com"},
	}
	ticketSvc.EXPECT().Book(mock.Anything, eventID, "u1").Return(details, nil)

	w := doJSON(t, r, http.MethodPost, "/api/tickets", dto.BookTicketRequest{EventID: eventID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TicketDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, eventID, resp.Ticket.EventID)
}

func TestHandler_BookTicket_SoldOut(t *testing.T) {
	_, _, ticketSvc, r := setupRouter(t, domain.Actor{ID: "u1"})

	eventID := uuid.New().String()
	ticketSvc.EXPECT().Book(mock.Anything, eventID, "u1").Return(nil, domain.ErrSoldOut)

	w := doJSON(t, r, http.MethodPost, "/api/tickets", dto.BookTicketRequest{EventID: eventID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BookTicket_AlreadyBooked(t *testing.T) {
	_, _, ticketSvc, r := setupRouter(t, domain.Actor{ID: "u1"})

	eventID := uuid.New().String()
	ticketSvc.EXPECT().Book(mock.Anything, eventID, "u1").Return(nil, domain.ErrAlreadyBooked)

	w := doJSON(t, r, http.MethodPost, "/api/tickets", dto.BookTicketRequest{EventID: eventID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BookTicket_NotPublished(t *testing.T) {
	_, _, ticketSvc, r := setupRouter(t, domain.Actor{ID: "u1"})

	eventID := uuid.New().String()
	ticketSvc.EXPECT().Book(mock.Anything, eventID, "u1").Return(nil, domain.ErrEventNotPublished)

	w := doJSON(t, r, http.MethodPost, "/api/tickets", dto.BookTicketRequest{EventID: eventID})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookTicket_EventNotFound(t *testing.T) {
	_, _, ticketSvc, r := setupRouter(t, domain.Actor{ID: "u1"})

	eventID := uuid.New().String()
	ticketSvc.EXPECT().Book(mock.Anything, eventID, "u1").Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/tickets", dto.BookTicketRequest{EventID: eventID})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelTicket_AlreadyCheckedIn(t *testing.T) {
	_, _, ticketSvc, r := setupRouter(t, domain.Actor{ID: "u1"})

	id := uuid.New().String()
	ticketSvc.EXPECT().Cancel(mock.Anything, id, "u1").Return(domain.ErrAlreadyCheckedIn)

	w := doJSON(t, r, http.MethodDelete, "/api/tickets/"+id, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetTicketQRCode_Success(t *testing.T) {
	_, _, ticketSvc, r := setupRouter(t, domain.Actor{ID: "u1"})

	id := uuid.New().String()
	details := &domain.TicketDetails{
		Ticket: domain.Ticket{ID: id, EventID: uuid.New().String(), UserID: "u1"},
		Event:  domain.Event{Title: "Concert"},
	}
	ticketSvc.EXPECT().GetForOwner(mock.Anything, id, "u1").Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/tickets/"+id+"/qrcode", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QRCodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.QRCode, "data:image/png;base64,"))
	assert.Equal(t, id, resp.Ticket.ID)
}

func TestHandler_DownloadTicketPDF_Success(t *testing.T) {
	_, _, ticketSvc, r := setupRouter(t, domain.Actor{ID: "u1"})

	id := uuid.New().String()
	details := &domain.TicketDetails{
		Ticket: domain.Ticket{ID: id, EventID: uuid.New().String(), UserID: "u1"},
		Event:  domain.Event{Title: "Concert", Location: "Main Hall", DateTime: time.Now().Add(24 * time.Hour)},
		User:   domain.User{Name: "Alice", Email: "alice@example.com"},
	}
	ticketSvc.EXPECT().GetForOwner(mock.Anything, id, "u1").Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/tickets/"+id+"/pdf", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), id)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestHandler_GetTicketQRCode_Forbidden(t *testing.T) {
	_, _, ticketSvc, r := setupRouter(t, domain.Actor{ID: "intruder"})

	id := uuid.New().String()
	ticketSvc.EXPECT().GetForOwner(mock.Anything, id, "intruder").Return(nil, domain.ErrForbidden)

	w := doJSON(t, r, http.MethodGet, "/api/tickets/"+id+"/qrcode", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListPublishedEvents(t *testing.T) {
	_, eventSvc, _, r := setupRouter(t, domain.Actor{})

	events := []*domain.Event{
		{ID: uuid.New().String(), Title: "Concert", Status: domain.EventStatusPublished},
		{ID: uuid.New().String(), Title: "Meetup", Status: domain.EventStatusPublished},
	}
	eventSvc.EXPECT().ListPublished(mock.Anything).Return(events, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/published", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
