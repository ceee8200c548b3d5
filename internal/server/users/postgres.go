package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, email string, hashedPassword []byte) (*User, error) {

	query :=
		`INSERT INTO users (email, hashed_password)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	user := &User{Email: email, HashedPassword: hashedPassword}
	err := r.db.QueryRowContext(ctx, query, email, hashedPassword).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrorAlreadyRegistered
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query :=
		`SELECT id, email, hashed_password, session_id, created_at FROM users
		 WHERE email = $1
		 `
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	query :=
		`SELECT id, email, hashed_password, session_id, created_at FROM users
		 WHERE id = $1
		 `
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) FindBySessionID(ctx context.Context, sessionID string) (*User, error) {
	query :=
		`SELECT id, email, hashed_password, session_id, created_at FROM users
		 WHERE session_id = $1
		 `
	return r.scanUser(r.db.QueryRowContext(ctx, query, sessionID))
}

func (r *PostgresRepository) UpdateSessionID(ctx context.Context, id int64, sessionID string) error {
	query :=
		`UPDATE users SET session_id = $2
		 WHERE id = $1
		 `
	return r.execForUser(ctx, query, id, sessionID)
}

func (r *PostgresRepository) ClearSessionID(ctx context.Context, id int64) error {
	query :=
		`UPDATE users SET session_id = NULL
		 WHERE id = $1
		 `
	return r.execForUser(ctx, query, id)
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*User, error) {
	user := &User{}
	err := row.Scan(&user.ID, &user.Email, &user.HashedPassword, &user.SessionID, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) execForUser(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
