package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	repoer interface {
		GetUserByEmail(ctx context.Context, email string) (*User, error)
		SaveResetCode(ctx context.Context, userID uuid.UUID, codeHash string, expiresAt time.Time) error
		GetActiveResetCode(ctx context.Context, userID uuid.UUID) (*ResetCode, error)
		ConsumeResetCode(ctx context.Context, id uuid.UUID) error
	}

	repo struct {
		pool *pgxpool.Pool
	}
)

func NewRepo(pool *pgxpool.Pool) repoer {
	return &repo{pool: pool}
}

func (r *repo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	user := new(User)

	stmt := `
	SELECT id, name, email, role, branch_id, password_hash
	FROM users
	WHERE email = $1`

	err := r.pool.QueryRow(ctx, stmt, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.BranchID,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SaveResetCode invalidates any outstanding codes for the user before
// storing the new one, so at most one code is active per account.
func (r *repo) SaveResetCode(ctx context.Context, userID uuid.UUID, codeHash string, expiresAt time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `UPDATE password_resets SET used = TRUE WHERE user_id = $1 AND NOT used`, userID)
	if err != nil {
		return err
	}

	stmt := `
	INSERT INTO password_resets (
		user_id, code_hash, expires_at
	)
	VALUES (
		$1, $2, $3
	)`

	_, err = tx.Exec(ctx, stmt, userID, codeHash, expiresAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *repo) GetActiveResetCode(ctx context.Context, userID uuid.UUID) (*ResetCode, error) {
	code := new(ResetCode)

	stmt := `
	SELECT id, user_id, code_hash, expires_at, used
	FROM password_resets
	WHERE user_id = $1 AND NOT used
	ORDER BY created_at DESC
	LIMIT 1`

	err := r.pool.QueryRow(ctx, stmt, userID).Scan(
		&code.ID,
		&code.UserID,
		&code.CodeHash,
		&code.ExpiresAt,
		&code.Used,
	)
	if err != nil {
		return nil, err
	}
	return code, nil
}

func (r *repo) ConsumeResetCode(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE password_resets SET used = TRUE WHERE id = $1`, id)
	return err
}
