package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dotflik/dotflik/pkg/logger"
)

// TxManager defines the transaction management interface.
type TxManager interface {
	// WithTransaction executes a function within a transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function panics, the transaction is rolled back and the panic is re-raised.
	// If the function succeeds, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// txManager implements TxManager using GORM.
type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager.
func NewTxManager(db *gorm.DB) TxManager {
	return &txManager{db: db}
}

// WithTransaction executes fn within a GORM transaction. GORM repositories
// called with the derived context join it through GormTxFromContext.
func (m *txManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		defer func() {
			if p := recover(); p != nil {
				logger.Error("Panic in transaction: %v", p)
				panic(p)
			}
		}()

		if err := fn(ContextWithGormTx(ctx, tx)); err != nil {
			return fmt.Errorf("transaction failed: %w", err)
		}
		return nil
	})
}
