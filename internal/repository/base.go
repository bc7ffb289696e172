package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// BaseRepository provides common read operations on a single table using sqlx.
// Queries are written with ? placeholders and rebound for the active driver.
type BaseRepository[T any] struct {
	q         Queryable
	tableName string
}

// NewBaseRepository creates a new base repository for the given table.
// q may be a *sqlx.DB or a *sqlx.Tx.
func NewBaseRepository[T any](q Queryable, tableName string) *BaseRepository[T] {
	return &BaseRepository[T]{
		q:         q,
		tableName: tableName,
	}
}

// GetByID retrieves a record by its ID.
func (r *BaseRepository[T]) GetByID(ctx context.Context, id any) (*T, error) {
	return r.GetBy(ctx, "id = ?", id)
}

// GetBy retrieves the single record matching condition.
// The condition should be a valid SQL WHERE clause fragment (e.g., "name = ?").
func (r *BaseRepository[T]) GetBy(ctx context.Context, condition string, args ...any) (*T, error) {
	var result T
	query := r.q.Rebind(fmt.Sprintf("SELECT * FROM %s WHERE %s", r.tableName, condition))

	if err := r.q.GetContext(ctx, &result, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, ParseDBError(err)
	}

	return &result, nil
}

// SelectColumn returns one column of every record, ordered by orderBy.
// Both column and orderBy must be trusted identifiers.
func (r *BaseRepository[T]) SelectColumn(ctx context.Context, column, orderBy string) ([]string, error) {
	values := []string{}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", column, r.tableName, orderBy)

	if err := r.q.SelectContext(ctx, &values, query); err != nil {
		return nil, ParseDBError(err)
	}

	return values, nil
}
