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

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, name, password_hash, phone, role, created_at)
			  VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Email, user.Name, user.PasswordHash,
		user.Phone, user.Role, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

const userColumns = `id, email, name, password_hash, COALESCE(phone, ''), role, created_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Phone, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users
			  SET name = $2, phone = NULLIF($3, '')
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, user.ID, user.Name, user.Phone)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) ListWithStats(ctx context.Context) ([]*domain.UserStats, error) {
	query := `SELECT u.id, u.email, u.name, u.password_hash, COALESCE(u.phone, ''), u.role, u.created_at,
					 (SELECT COUNT(*) FROM events e WHERE e.user_id = u.id),
					 (SELECT COUNT(*) FROM tickets t WHERE t.user_id = u.id)
			  FROM users u
			  ORDER BY u.name ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.UserStats
	for rows.Next() {
		var s domain.UserStats
		if err = rows.Scan(
			&s.ID, &s.Email, &s.Name, &s.PasswordHash, &s.Phone, &s.Role, &s.CreatedAt,
			&s.EventCount, &s.TicketCount,
		); err != nil {
			return nil, fmt.Errorf("scan user stats: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
