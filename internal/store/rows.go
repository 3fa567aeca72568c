package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// optString converts a nullable column into an optional value.
func optString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

// notFound maps sql.ErrNoRows to ErrNotFound with context.
func notFound(op string, id any, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", op, id, ErrNotFound)
	}
	return fmt.Errorf("%s %v: %w", op, id, err)
}

// execOne runs a single UPDATE/DELETE addressed by id and reports
// ErrNotFound when no row matched.
func (s *Store) execOne(ctx context.Context, op, table string, id int64, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s %d: %w", op, id, classify(table, err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d: rows affected: %w", op, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", op, id, ErrNotFound)
	}
	return nil
}

// insert runs an INSERT and returns the generated id.
func (s *Store) insert(ctx context.Context, op, table, query string, args ...any) (int64, error) {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, classify(table, err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}
	return id, nil
}

// exists reports whether a row with the given id exists in table.
func (s *Store) exists(ctx context.Context, table string, id int64) (bool, error) {
	if !knownTables[table] {
		return false, fmt.Errorf("exists: unknown table %q", table)
	}
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup %s %d: %w", table, id, err)
	}
	return true, nil
}

// dependents counts rows in table whose column references id.
func (s *Store) dependents(ctx context.Context, table, column string, id int64) (int, error) {
	if !knownTables[table] {
		return 0, fmt.Errorf("dependents: unknown table %q", table)
	}
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+" WHERE "+column+" = ?", id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s for %d: %w", table, id, err)
	}
	return n, nil
}

// collect drains rows through scan, returning an empty (non-nil) slice when
// there are no rows.
func collect[T any](rows *sql.Rows, what string, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", what, err)
	}
	return out, nil
}
