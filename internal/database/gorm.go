package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dotflik/dotflik/internal/config"
	pkglogger "github.com/dotflik/dotflik/pkg/logger"
)

// Dialector returns the GORM dialector for driver, reusing the pool of db.
func Dialector(driver config.Driver, db *sqlx.DB) (gorm.Dialector, error) {
	switch driver {
	case config.DriverMySQL:
		return mysql.New(mysql.Config{Conn: db.DB}), nil
	case config.DriverPostgres:
		return postgres.New(postgres.Config{Conn: db.DB}), nil
	case config.DriverSQLite:
		return &sqlite.Dialector{DriverName: sqlite.DriverName, Conn: db.DB}, nil
	default:
		return nil, fmt.Errorf("database driver %q is not supported", driver)
	}
}

// NewGormDB opens a GORM session on top of an existing sqlx connection so
// both share one pool.
func NewGormDB(db *sqlx.DB, cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.Database.DatabaseDriver(), db)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Silent
	if cfg.Env() == config.EnvDevelopment {
		logLevel = logger.Info
	}

	gormLogger := logger.New(pkglogger.Logger(), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logLevel,
		IgnoreRecordNotFoundError: true,
	})

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true, // Better performance for read operations
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm session: %w", err)
	}

	pkglogger.Info("GORM database connection established (%s)", cfg.Database.Driver)

	return gdb, nil
}
