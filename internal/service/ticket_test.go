package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/rahmedalmosd25-ux/eventhub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTicketService(t *testing.T) (*mocks.MockTicketRepo, *mocks.MockTicketNotifier, *TicketService) {
	t.Helper()
	ticketRepo := mocks.NewMockTicketRepo(t)
	notifier := mocks.NewMockTicketNotifier(t)
	svc := NewTicketService(ticketRepo, notifier, 24*time.Hour, newTestLogger(t))
	return ticketRepo, notifier, svc
}

func TestTicketService_Book_Success(t *testing.T) {
	ticketRepo, notifier, svc := newTicketService(t)

	details := &domain.TicketDetails{
		Event: domain.Event{ID: "e1", Title: "Concert", Status: domain.EventStatusPublished},
		User:  domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"},
	}

	ticketRepo.EXPECT().Reserve(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, ticket *domain.Ticket) error {
			details.Ticket = *ticket
			return nil
		})
	ticketRepo.EXPECT().GetDetails(mock.Anything, mock.Anything).Return(details, nil)
	notifier.EXPECT().NotifyTicketBooked(mock.Anything, details).Return()

	got, err := svc.Book(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "e1", got.Ticket.EventID)
	assert.Equal(t, "u1", got.Ticket.UserID)
	assert.False(t, got.Ticket.CheckIn)
	assert.NotEmpty(t, got.Ticket.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestTicketService_Book_SoldOut(t *testing.T) {
	ticketRepo, _, svc := newTicketService(t)

	ticketRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(domain.ErrSoldOut)

	_, err := svc.Book(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSoldOut)
}

func TestTicketService_Book_AlreadyBooked(t *testing.T) {
	ticketRepo, _, svc := newTicketService(t)

	ticketRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(domain.ErrAlreadyBooked)

	_, err := svc.Book(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestTicketService_Book_NotPublished(t *testing.T) {
	ticketRepo, _, svc := newTicketService(t)

	ticketRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(domain.ErrEventNotPublished)

	_, err := svc.Book(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotPublished)
}

func TestTicketService_Book_EventNotFound(t *testing.T) {
	ticketRepo, _, svc := newTicketService(t)

	ticketRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(domain.ErrEventNotFound)

	_, err := svc.Book(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestTicketService_Book_DetailsFetchFails(t *testing.T) {
	ticketRepo, notifier, svc := newTicketService(t)

	details := &domain.TicketDetails{
		Event: domain.Event{ID: "e1", Title: "Concert"},
		User:  domain.User{ID: "u1", Email: "alice@example.com"},
	}

	ticketRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil)
	ticketRepo.EXPECT().GetDetails(mock.Anything, mock.Anything).
		Return(nil, errors.New("db error")).Once()
	ticketRepo.EXPECT().GetDetails(mock.Anything, mock.Anything).
		Return(details, nil).Once()
	notifier.EXPECT().NotifyTicketBooked(mock.Anything, details).Return()

	// The reservation committed, so booking still succeeds with bare details;
	// the read is retried off-request and the email goes out then.
	got, err := svc.Book(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "e1", got.Ticket.EventID)
	assert.Empty(t, got.Event.ID)

	time.Sleep(200 * time.Millisecond) // retried read + notify
}

func TestTicketService_Cancel_Success(t *testing.T) {
	ticketRepo, _, svc := newTicketService(t)

	ticketRepo.EXPECT().Cancel(mock.Anything, "t1", "u1").Return(nil)

	err := svc.Cancel(context.Background(), "t1", "u1")

	require.NoError(t, err)
}

func TestTicketService_Cancel_Forbidden(t *testing.T) {
	ticketRepo, _, svc := newTicketService(t)

	ticketRepo.EXPECT().Cancel(mock.Anything, "t1", "intruder").Return(domain.ErrForbidden)

	err := svc.Cancel(context.Background(), "t1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTicketService_Cancel_AlreadyCheckedIn(t *testing.T) {
	ticketRepo, _, svc := newTicketService(t)

	ticketRepo.EXPECT().Cancel(mock.Anything, "t1", "u1").Return(domain.ErrAlreadyCheckedIn)

	err := svc.Cancel(context.Background(), "t1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

func TestTicketService_CheckIn_Repeat(t *testing.T) {
	ticketRepo, _, svc := newTicketService(t)

	ticketRepo.EXPECT().CheckIn(mock.Anything, "t1").Return(domain.ErrAlreadyCheckedIn)

	err := svc.CheckIn(context.Background(), "t1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

func TestTicketService_GetForOwner_Forbidden(t *testing.T) {
	ticketRepo, _, svc := newTicketService(t)

	details := &domain.TicketDetails{
		Ticket: domain.Ticket{ID: "t1", UserID: "owner"},
	}
	ticketRepo.EXPECT().GetDetails(mock.Anything, "t1").Return(details, nil)

	_, err := svc.GetForOwner(context.Background(), "t1", "someone-else")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTicketService_SendDueReminders(t *testing.T) {
	ticketRepo, notifier, svc := newTicketService(t)

	due := []*domain.TicketDetails{
		{Ticket: domain.Ticket{ID: "t1"}, User: domain.User{Email: "a@example.com"}},
		{Ticket: domain.Ticket{ID: "t2"}, User: domain.User{Email: "b@example.com"}},
	}
	ticketRepo.EXPECT().MarkDueReminders(mock.Anything, 24*time.Hour).Return(due, nil)
	notifier.EXPECT().NotifyEventReminder(mock.Anything, due[0]).Return()
	notifier.EXPECT().NotifyEventReminder(mock.Anything, due[1]).Return()

	sent, err := svc.SendDueReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	time.Sleep(50 * time.Millisecond)
}

func TestTicketService_SendDueReminders_NoneDue(t *testing.T) {
	ticketRepo, _, svc := newTicketService(t)

	ticketRepo.EXPECT().MarkDueReminders(mock.Anything, 24*time.Hour).Return(nil, nil)

	sent, err := svc.SendDueReminders(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sent)
}
