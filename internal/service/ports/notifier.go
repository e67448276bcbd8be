package ports

import (
	"context"

	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
)

type TicketNotifier interface {
	NotifyTicketBooked(ctx context.Context, d *domain.TicketDetails)
	NotifyEventReminder(ctx context.Context, d *domain.TicketDetails)
}
