package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/rahmedalmosd25-ux/eventhub/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) Create(ctx context.Context, actor domain.Actor, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" || input.Location == "" || input.Category == "" {
		return nil, fmt.Errorf("%w: title, location and category are required", domain.ErrValidation)
	}
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", domain.ErrValidation)
	}
	if input.DateTime.IsZero() {
		return nil, fmt.Errorf("%w: date_time is required", domain.ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = domain.EventStatusDrafted
	}
	if status != domain.EventStatusDrafted && status != domain.EventStatusPublished {
		return nil, fmt.Errorf("%w: status must be drafted or published", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		OwnerID:     actor.ID,
		Title:       input.Title,
		Description: input.Description,
		DateTime:    input.DateTime,
		Location:    input.Location,
		Image:       input.Image,
		Category:    input.Category,
		Status:      status,
		Quantity:    input.Quantity,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) ListPublished(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListPublished(ctx)
}

// ListForActor returns the actor's own events; admins see every event.
func (s *EventService) ListForActor(ctx context.Context, actor domain.Actor) ([]*domain.Event, error) {
	if actor.IsAdmin() {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByOwner(ctx, actor.ID)
}

func (s *EventService) ListAll(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListAll(ctx)
}

func (s *EventService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanModify(actor, event.OwnerID) {
		return nil, domain.ErrForbidden
	}

	return event, nil
}

func (s *EventService) Update(ctx context.Context, actor domain.Actor, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanModify(actor, event.OwnerID) {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.DateTime != nil {
		event.DateTime = *input.DateTime
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.Image != nil {
		event.Image = *input.Image
	}
	if input.Category != nil {
		event.Category = *input.Category
	}
	if input.Status != nil {
		if *input.Status != domain.EventStatusDrafted && *input.Status != domain.EventStatusPublished {
			return nil, fmt.Errorf("%w: status must be drafted or published", domain.ErrValidation)
		}
		event.Status = *input.Status
	}
	if input.Quantity != nil {
		// Lowering quantity never revokes issued tickets; further reserves
		// just fail until attrition brings the count back under the cap.
		if *input.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be greater than 0", domain.ErrValidation)
		}
		event.Quantity = *input.Quantity
	}

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CanModify(actor, event.OwnerID) {
		return domain.ErrForbidden
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return nil
}

func (s *EventService) Attendees(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.repo.ListAttendees(ctx, eventID)
}
