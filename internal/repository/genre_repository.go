package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/dotflik/dotflik/internal/models"
)

// GenreRepository defines the interface for genre data access.
type GenreRepository interface {
	// Names returns every genre name in alphabetical order.
	Names(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int) (*models.Genre, error)
	GetByName(ctx context.Context, name string) (*models.Genre, error)
}

// genreRepository implements GenreRepository on top of sqlx.
type genreRepository struct {
	*BaseRepository[models.Genre]
}

// NewGenreRepository creates a new genre repository.
func NewGenreRepository(db *sqlx.DB) GenreRepository {
	return &genreRepository{
		BaseRepository: NewBaseRepository[models.Genre](db, "genres"),
	}
}

func (r *genreRepository) Names(ctx context.Context) ([]string, error) {
	return r.SelectColumn(ctx, "name", "name ASC")
}

func (r *genreRepository) GetByID(ctx context.Context, id int) (*models.Genre, error) {
	return r.BaseRepository.GetByID(ctx, id)
}

func (r *genreRepository) GetByName(ctx context.Context, name string) (*models.Genre, error) {
	return r.GetBy(ctx, "name = ?", name)
}
