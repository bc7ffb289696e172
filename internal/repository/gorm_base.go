package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormRepository provides common GORM operations for any model type.
type GormRepository[T any] struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM repository instance.
func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

// DB returns the session for ctx: the transaction stored by TxManager if
// there is one, otherwise the repository's connection.
func (r *GormRepository[T]) DB(ctx context.Context) *gorm.DB {
	if tx := GormTxFromContext(ctx); tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

// GetByID retrieves a record by its primary key, applying scopes first.
func (r *GormRepository[T]) GetByID(ctx context.Context, id any, scopes ...func(*gorm.DB) *gorm.DB) (*T, error) {
	var result T
	err := r.DB(ctx).Scopes(scopes...).Where("id = ?", id).First(&result).Error
	if err != nil {
		return nil, ParseDBError(err)
	}
	return &result, nil
}

// First retrieves the first record matching condition in the given order.
func (r *GormRepository[T]) First(ctx context.Context, order string, condition string, args []any, scopes ...func(*gorm.DB) *gorm.DB) (*T, error) {
	var result T
	err := r.DB(ctx).Scopes(scopes...).Where(condition, args...).Order(order).First(&result).Error
	if err != nil {
		return nil, ParseDBError(err)
	}
	return &result, nil
}

// Find retrieves every record selected by scopes.
func (r *GormRepository[T]) Find(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	results := []T{}
	if err := r.DB(ctx).Scopes(scopes...).Find(&results).Error; err != nil {
		return nil, ParseDBError(err)
	}
	return results, nil
}

// Save updates an existing record or creates it if it doesn't exist.
func (r *GormRepository[T]) Save(ctx context.Context, entity *T) error {
	return ParseDBError(r.DB(ctx).Save(entity).Error)
}
