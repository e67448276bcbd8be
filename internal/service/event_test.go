package service

import (
	"context"
	"testing"
	"time"

	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/rahmedalmosd25-ux/eventhub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEventService(t *testing.T) (*mocks.MockEventRepo, *EventService) {
	t.Helper()
	repo := mocks.NewMockEventRepo(t)
	return repo, NewEventService(repo)
}

func validCreateInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:    "Concert",
		DateTime: time.Now().Add(48 * time.Hour),
		Location: "Main Hall",
		Category: "music",
		Quantity: 100,
	}
}

func TestEventService_Create_DefaultsToDrafted(t *testing.T) {
	repo, svc := newEventService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), domain.Actor{ID: "owner"}, validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusDrafted, event.Status)
	assert.Equal(t, "owner", event.OwnerID)
	assert.NotEmpty(t, event.ID)
}

func TestEventService_Create_InvalidQuantity(t *testing.T) {
	_, svc := newEventService(t)

	input := validCreateInput()
	input.Quantity = 0

	_, err := svc.Create(context.Background(), domain.Actor{ID: "owner"}, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_InvalidStatus(t *testing.T) {
	_, svc := newEventService(t)

	input := validCreateInput()
	input.Status = "archived"

	_, err := svc.Create(context.Background(), domain.Actor{ID: "owner"}, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_OwnerAllowed(t *testing.T) {
	repo, svc := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID:       "e1",
		OwnerID:  "owner",
		Title:    "Concert",
		Quantity: 100,
	}, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	title := "Concert (rescheduled)"
	event, err := svc.Update(context.Background(), domain.Actor{ID: "owner"}, "e1", domain.UpdateEventInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Concert (rescheduled)", event.Title)
	assert.Equal(t, 100, event.Quantity)
}

func TestEventService_Update_AdminAllowed(t *testing.T) {
	repo, svc := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID:      "e1",
		OwnerID: "owner",
	}, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	status := domain.EventStatusPublished
	admin := domain.Actor{ID: "admin", Role: domain.RoleAdmin}
	event, err := svc.Update(context.Background(), admin, "e1", domain.UpdateEventInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusPublished, event.Status)
}

func TestEventService_Update_Forbidden(t *testing.T) {
	repo, svc := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID:      "e1",
		OwnerID: "owner",
	}, nil)

	title := "hijacked"
	_, err := svc.Update(context.Background(), domain.Actor{ID: "intruder"}, "e1", domain.UpdateEventInput{Title: &title})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Update_NotFound(t *testing.T) {
	repo, svc := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	title := "x"
	_, err := svc.Update(context.Background(), domain.Actor{ID: "owner"}, "missing", domain.UpdateEventInput{Title: &title})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Delete_Forbidden(t *testing.T) {
	repo, svc := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID:      "e1",
		OwnerID: "owner",
	}, nil)

	err := svc.Delete(context.Background(), domain.Actor{ID: "intruder"}, "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_ListForActor(t *testing.T) {
	repo, svc := newEventService(t)

	own := []*domain.Event{{ID: "e1", OwnerID: "owner"}}
	all := []*domain.Event{{ID: "e1"}, {ID: "e2"}}

	repo.EXPECT().ListByOwner(mock.Anything, "owner").Return(own, nil)
	repo.EXPECT().ListAll(mock.Anything).Return(all, nil)

	got, err := svc.ListForActor(context.Background(), domain.Actor{ID: "owner"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.ListForActor(context.Background(), domain.Actor{ID: "admin", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestEventService_Attendees_EventNotFound(t *testing.T) {
	repo, svc := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Attendees(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
