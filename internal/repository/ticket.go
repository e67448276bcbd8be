package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Reserve issues one ticket for (event, user) or fails with a domain error.
// The event row is locked for the duration of the transaction, so the
// capacity check and the insert are atomic across processes. The unique
// index on (event_id, user_id) backstops the per-user check.
func (r *TicketRepository) Reserve(ctx context.Context, t *domain.Ticket) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	eventQuery := `SELECT quantity, status FROM events WHERE id = $1 FOR UPDATE`
	var quantity int
	var status string
	if err = tx.QueryRowContext(ctx, eventQuery, t.EventID).Scan(&quantity, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if status != string(domain.EventStatusPublished) {
		return domain.ErrEventNotPublished
	}

	var booked bool
	bookedQuery := `SELECT EXISTS (SELECT 1 FROM tickets WHERE event_id = $1 AND user_id = $2)`
	if err = tx.QueryRowContext(ctx, bookedQuery, t.EventID, t.UserID).Scan(&booked); err != nil {
		return fmt.Errorf("check existing ticket: %w", err)
	}
	if booked {
		return domain.ErrAlreadyBooked
	}

	var issued int
	countQuery := `SELECT COUNT(*) FROM tickets WHERE event_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, t.EventID).Scan(&issued); err != nil {
		return fmt.Errorf("count tickets: %w", err)
	}
	if issued >= quantity {
		return domain.ErrSoldOut
	}

	insert := `INSERT INTO tickets (id, event_id, user_id, check_in, created_at)
			   VALUES ($1, $2, $3, FALSE, $4)`
	if _, err = tx.ExecContext(ctx, insert, t.ID, t.EventID, t.UserID, t.CreatedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert ticket: %w", err)
	}

	return tx.Commit()
}

// Cancel deletes the ticket while it has not been checked in. The row lock
// keeps the delete atomic with respect to concurrent capacity counts.
func (r *TicketRepository) Cancel(ctx context.Context, ticketID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT user_id, check_in FROM tickets WHERE id = $1 FOR UPDATE`
	var ownerID string
	var checkIn bool
	if err = tx.QueryRowContext(ctx, query, ticketID).Scan(&ownerID, &checkIn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTicketNotFound
		}
		return fmt.Errorf("get ticket: %w", err)
	}

	if ownerID != userID {
		return domain.ErrForbidden
	}
	if checkIn {
		return domain.ErrAlreadyCheckedIn
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM tickets WHERE id = $1`, ticketID); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}

	return tx.Commit()
}

func (r *TicketRepository) CheckIn(ctx context.Context, ticketID string) error {
	query := `UPDATE tickets
			  SET check_in = TRUE, check_in_at = now()
			  WHERE id = $1 AND check_in = FALSE`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, ticketID)
	if err != nil {
		return fmt.Errorf("check in ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check in rows affected: %w", err)
	}
	if rows == 0 {
		// Missing row or already redeemed, tell them apart.
		var exists bool
		existsQuery := `SELECT EXISTS (SELECT 1 FROM tickets WHERE id = $1)`
		row, scanErr := r.db.QueryRowWithRetry(ctx, r.strategy, existsQuery, ticketID)
		if scanErr != nil {
			return domain.ErrTicketNotFound
		}
		if scanErr = row.Scan(&exists); scanErr != nil || !exists {
			return domain.ErrTicketNotFound
		}
		return domain.ErrAlreadyCheckedIn
	}

	return nil
}

const ticketDetailsColumns = `
		t.id, t.event_id, t.user_id, t.check_in, t.check_in_at, t.created_at,
		e.id, e.user_id, e.title, COALESCE(e.description, ''), e.date_time,
		e.location, COALESCE(e.image, ''), e.category, e.status, e.quantity,
		e.created_at, e.updated_at,
		u.id, u.email, u.name, COALESCE(u.phone, ''), u.role, u.created_at`

func scanTicketDetails(row interface{ Scan(...any) error }) (*domain.TicketDetails, error) {
	var d domain.TicketDetails
	err := row.Scan(
		&d.Ticket.ID, &d.Ticket.EventID, &d.Ticket.UserID,
		&d.Ticket.CheckIn, &d.Ticket.CheckInAt, &d.Ticket.CreatedAt,
		&d.Event.ID, &d.Event.OwnerID, &d.Event.Title, &d.Event.Description,
		&d.Event.DateTime, &d.Event.Location, &d.Event.Image, &d.Event.Category,
		&d.Event.Status, &d.Event.Quantity, &d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.User.ID, &d.User.Email, &d.User.Name, &d.User.Phone,
		&d.User.Role, &d.User.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *TicketRepository) GetDetails(ctx context.Context, ticketID string) (*domain.TicketDetails, error) {
	query := `SELECT ` + ticketDetailsColumns + `
			  FROM tickets t
			  JOIN events e ON e.id = t.event_id
			  JOIN users u ON u.id = t.user_id
			  WHERE t.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket details: %w", err)
	}

	d, err := scanTicketDetails(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket details: %w", err)
	}

	return d, nil
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID string) ([]*domain.TicketDetails, error) {
	query := `SELECT ` + ticketDetailsColumns + `
			  FROM tickets t
			  JOIN events e ON e.id = t.event_id
			  JOIN users u ON u.id = t.user_id
			  WHERE t.user_id = $1
			  ORDER BY e.date_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tickets by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.TicketDetails
	for rows.Next() {
		d, err := scanTicketDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

// MarkDueReminders stamps reminded_at on every unsent ticket whose published
// event starts within the window and returns those tickets with event and
// holder joined, so each holder is reminded exactly once.
func (r *TicketRepository) MarkDueReminders(ctx context.Context, window time.Duration) ([]*domain.TicketDetails, error) {
	query := `
		WITH due AS (
			UPDATE tickets t
			SET reminded_at = now()
			FROM events e
			WHERE t.event_id = e.id
			  AND t.reminded_at IS NULL
			  AND e.status = $1
			  AND e.date_time > now()
			  AND e.date_time <= now() + make_interval(secs => $2)
			RETURNING t.id, t.event_id, t.user_id, t.check_in, t.check_in_at, t.created_at
		)
		SELECT
			t.id, t.event_id, t.user_id, t.check_in, t.check_in_at, t.created_at,
			e.id, e.user_id, e.title, COALESCE(e.description, ''), e.date_time,
			e.location, COALESCE(e.image, ''), e.category, e.status, e.quantity,
			e.created_at, e.updated_at,
			u.id, u.email, u.name, COALESCE(u.phone, ''), u.role, u.created_at
		FROM due t
		JOIN events e ON e.id = t.event_id
		JOIN users u ON u.id = t.user_id`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.EventStatusPublished, window.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("mark due reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.TicketDetails
	for rows.Next() {
		d, err := scanTicketDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}
