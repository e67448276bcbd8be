package ports

import (
	"context"

	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ListWithStats(ctx context.Context) ([]*domain.UserStats, error)
}
