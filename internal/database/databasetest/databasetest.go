// Package databasetest opens migrated SQLite catalogs for tests.
package databasetest

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dotflik/dotflik/internal/config"
	"github.com/dotflik/dotflik/internal/database"
	"github.com/dotflik/dotflik/internal/models"
)

// DB bundles both handles onto one migrated catalog.
type DB struct {
	SQL  *sqlx.DB
	Gorm *gorm.DB
}

// Open creates a fresh SQLite catalog in a temp dir with the schema applied.
func Open(t testing.TB) *DB {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: string(config.DriverSQLite),
			Path:   filepath.Join(t.TempDir(), "catalog.db"),
		},
		Environment: string(config.EnvProduction),
	}

	db, err := database.Connect(cfg.Database)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, config.DriverSQLite, database.Up))

	db, err = database.Connect(cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := database.NewGormDB(db, cfg)
	require.NoError(t, err)

	return &DB{SQL: db, Gorm: gdb}
}

// Seed inserts the rows directly, links included.
func (d *DB) Seed(t testing.TB, genres []models.Genre, stars []models.Star, movies []models.Movie) {
	t.Helper()

	for i := range genres {
		require.NoError(t, d.Gorm.Create(&genres[i]).Error)
	}
	for i := range stars {
		require.NoError(t, d.Gorm.Omit("Movies").Create(&stars[i]).Error)
	}
	for i := range movies {
		m := movies[i]
		require.NoError(t, d.Gorm.Omit("Genres", "Stars").Create(&m).Error)
		for _, g := range m.Genres {
			_, err := d.SQL.Exec("INSERT INTO genres_in_movies (genre_id, movie_id) VALUES (?, ?)", g.ID, m.ID)
			require.NoError(t, err)
		}
		for _, s := range m.Stars {
			_, err := d.SQL.Exec("INSERT INTO stars_in_movies (star_id, movie_id) VALUES (?, ?)", s.ID, m.ID)
			require.NoError(t, err)
		}
	}
}

// SeedCatalog inserts the Catalog fixture.
func (d *DB) SeedCatalog(t testing.TB) {
	t.Helper()
	genres, stars, movies := Catalog()
	d.Seed(t, genres, stars, movies)
}

// Catalog returns a small fixture: 3 genres, 3 stars and 7 movies with ids
// tt01..tt07 released 1990..1996.
func Catalog() ([]models.Genre, []models.Star, []models.Movie) {
	genres := []models.Genre{
		{ID: 1, Name: "Drama"},
		{ID: 2, Name: "Action"},
		{ID: 3, Name: "Comedy"},
	}
	stars := []models.Star{
		{ID: "nm01", Name: "Ada Reel"},
		{ID: "nm02", Name: "Bo Frame"},
		{ID: "nm03", Name: "Cy Take"},
	}
	movies := make([]models.Movie, 0, 7)
	for i := 1; i <= 7; i++ {
		movies = append(movies, models.Movie{
			ID:       "tt0" + string(rune('0'+i)),
			Title:    "Movie " + string(rune('A'+i-1)),
			Year:     1989 + i,
			Director: "Director " + string(rune('A'+i-1)),
			Genres:   []models.Genre{genres[i%3]},
			Stars:    []models.Star{stars[i%3], stars[(i+1)%3]},
		})
	}
	return genres, stars, movies
}
