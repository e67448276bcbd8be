package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, user_id, title, COALESCE(description, ''), date_time, location,
		COALESCE(image, ''), category, status, quantity, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Title, &e.Description, &e.DateTime, &e.Location,
		&e.Image, &e.Category, &e.Status, &e.Quantity, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, user_id, title, description, date_time, location, image, category, status, quantity, created_at, updated_at)
			  VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.OwnerID, e.Title, e.Description, e.DateTime, e.Location,
		e.Image, e.Category, e.Status, e.Quantity, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) ListPublished(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE status = $1
			  ORDER BY date_time ASC`
	return r.list(ctx, query, domain.EventStatusPublished)
}

func (r *EventRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE user_id = $1
			  ORDER BY date_time ASC`
	return r.list(ctx, query, ownerID)
}

func (r *EventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY date_time ASC`
	return r.list(ctx, query)
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = NULLIF($3, ''), date_time = $4, location = $5,
				  image = NULLIF($6, ''), category = $7, status = $8, quantity = $9, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.DateTime, e.Location,
		e.Image, e.Category, e.Status, e.Quantity,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// Delete removes the event; tickets go with it via ON DELETE CASCADE.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) ListAttendees(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	query := `SELECT t.id, u.id, u.name, u.email, COALESCE(u.phone, ''), t.check_in, t.check_in_at
			  FROM tickets t
			  JOIN users u ON u.id = t.user_id
			  WHERE t.event_id = $1
			  ORDER BY t.created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	var res []*domain.Attendee
	for rows.Next() {
		var a domain.Attendee
		if err = rows.Scan(&a.TicketID, &a.UserID, &a.Name, &a.Email, &a.Phone, &a.CheckIn, &a.CheckInAt); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
