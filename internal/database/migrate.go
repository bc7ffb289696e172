package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/dotflik/dotflik/internal/config"
	"github.com/dotflik/dotflik/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Direction selects which way migrations run.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Migrate applies the embedded schema migrations to db. The migrator takes
// ownership of db and closes it when done.
func Migrate(db *sqlx.DB, driver config.Driver, dir Direction) error {
	target, err := migrationDriver(db, driver)
	if err != nil {
		_ = db.Close()
		return err
	}

	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, string(driver), target)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Error("Failed to close migrator: source=%v database=%v", srcErr, dbErr)
		}
	}()

	switch dir {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", dir)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("Database schema is up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", dir, err)
	}

	version, dirty, verr := m.Version()
	if verr == nil {
		logger.Info("Migrated %s to version %d (dirty=%t)", dir, version, dirty)
	}
	return nil
}

func migrationDriver(db *sqlx.DB, driver config.Driver) (database.Driver, error) {
	switch driver {
	case config.DriverMySQL:
		return migratemysql.WithInstance(db.DB, &migratemysql.Config{})
	case config.DriverPostgres:
		return migratepgx.WithInstance(db.DB, &migratepgx.Config{})
	case config.DriverSQLite:
		return migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	default:
		return nil, fmt.Errorf("database driver %q is not supported", driver)
	}
}
