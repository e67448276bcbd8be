package ports

import (
	"context"

	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListPublished(ctx context.Context) ([]*domain.Event, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Event, error)
	ListAll(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	ListAttendees(ctx context.Context, eventID string) ([]*domain.Attendee, error)
}
