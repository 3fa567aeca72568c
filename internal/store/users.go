package store

import (
	"context"
	"fmt"

	"github.com/roach88/ward/internal/model"
)

// CreateUser inserts an account. The id is chosen by the caller (auth
// generates a UUID); a duplicate username returns a ConstraintError.
func (s *Store) CreateUser(ctx context.Context, u model.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash)
		VALUES (?, ?, ?)
	`, u.ID, u.Username, u.PasswordHash)
	if err != nil {
		return fmt.Errorf("create user: %w", classify("users", err))
	}
	return nil
}

// GetUserByUsername returns the account with the given username.
// Returns ErrNotFound if absent.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash FROM users WHERE username = ?
	`, username)
	u, err := scanUser(row)
	if err != nil {
		return model.User{}, notFound("get user", username, err)
	}
	return u, nil
}

// GetUser returns the account with the given id.
// Returns ErrNotFound if absent.
func (s *Store) GetUser(ctx context.Context, id string) (model.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash FROM users WHERE id = ?
	`, id)
	u, err := scanUser(row)
	if err != nil {
		return model.User{}, notFound("get user", id, err)
	}
	return u, nil
}

// CountUsers returns the number of accounts.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	return s.Count(ctx, "users")
}

func scanUser(row scanner) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash)
	return u, err
}
