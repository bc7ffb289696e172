// Package repository provides data access abstractions for the Dotflik catalog.
// It implements the Repository pattern to separate data access concerns from business logic.
package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// Queryable defines the common interface between *sqlx.DB and *sqlx.Tx.
// This allows repositories to work seamlessly with both direct queries and transactions.
type Queryable interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	Rebind(query string) string
}

// Compile-time verification that sqlx.DB and sqlx.Tx implement Queryable
var (
	_ Queryable = (*sqlx.DB)(nil)
	_ Queryable = (*sqlx.Tx)(nil)
)

// gormTxContextKey is the context key for storing GORM transactions
type gormTxContextKey struct{}

// ContextWithGormTx stores a GORM transaction in the context.
func ContextWithGormTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, gormTxContextKey{}, tx)
}

// GormTxFromContext retrieves a GORM transaction from context, or nil if not present.
func GormTxFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(gormTxContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return nil
}
