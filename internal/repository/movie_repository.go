package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dotflik/dotflik/internal/models"
)

// MovieRepository defines the interface for movie data access.
type MovieRepository interface {
	// List returns one page of movies ordered by id.
	List(ctx context.Context, limit, offset int) ([]models.Movie, error)
	// ListByYear returns one page of movies released in [from, to], ordered
	// by year then id.
	ListByYear(ctx context.Context, from, to int, ascending bool, limit, offset int) ([]models.Movie, error)
	GetByID(ctx context.Context, id string) (*models.Movie, error)
	// GetByTitle returns the first movie (by id) with an exact title match.
	GetByTitle(ctx context.Context, title string) (*models.Movie, error)
	Save(ctx context.Context, movie *models.Movie) error
}

// movieRepository implements MovieRepository using GORM.
type movieRepository struct {
	*GormRepository[models.Movie]
}

// NewMovieRepository creates a new movie repository.
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{
		GormRepository: NewGormRepository[models.Movie](db),
	}
}

var movieAssociations = []string{"Genres", "Stars"}

func (r *movieRepository) List(ctx context.Context, limit, offset int) ([]models.Movie, error) {
	return r.Find(ctx,
		OrderScope("id ASC"),
		PaginationScope(limit, offset),
		PreloadScope(movieAssociations...),
	)
}

func (r *movieRepository) ListByYear(ctx context.Context, from, to int, ascending bool, limit, offset int) ([]models.Movie, error) {
	order := "year ASC"
	if !ascending {
		order = "year DESC"
	}
	return r.Find(ctx,
		YearRangeScope(from, to),
		OrderScope(order, "id ASC"),
		PaginationScope(limit, offset),
		PreloadScope(movieAssociations...),
	)
}

func (r *movieRepository) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	return r.GormRepository.GetByID(ctx, id, PreloadScope(movieAssociations...))
}

func (r *movieRepository) GetByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return r.First(ctx, "id ASC", "title = ?", []any{title}, PreloadScope(movieAssociations...))
}

// Save upserts the movie row and replaces its genre and star links.
func (r *movieRepository) Save(ctx context.Context, movie *models.Movie) error {
	db := r.DB(ctx)
	genres, stars := movie.Genres, movie.Stars

	if err := db.Omit("Genres", "Stars").Save(movie).Error; err != nil {
		return ParseDBError(err)
	}
	if err := replaceLinks(db, movie, "Genres", genres); err != nil {
		return err
	}
	return replaceLinks(db, movie, "Stars", stars)
}

func replaceLinks[T any](db *gorm.DB, movie *models.Movie, association string, values []T) error {
	assoc := db.Model(movie).Association(association)
	var err error
	if len(values) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(values)
	}
	return ParseDBError(err)
}
