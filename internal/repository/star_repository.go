package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dotflik/dotflik/internal/models"
)

// StarRepository defines the interface for star data access.
type StarRepository interface {
	// List returns one page of stars ordered by id.
	List(ctx context.Context, limit, offset int) ([]models.Star, error)
	// GetByID returns the star with its movies.
	GetByID(ctx context.Context, id string) (*models.Star, error)
	Save(ctx context.Context, star *models.Star) error
}

// starRepository implements StarRepository using GORM.
type starRepository struct {
	*GormRepository[models.Star]
}

// NewStarRepository creates a new star repository.
func NewStarRepository(db *gorm.DB) StarRepository {
	return &starRepository{
		GormRepository: NewGormRepository[models.Star](db),
	}
}

func (r *starRepository) List(ctx context.Context, limit, offset int) ([]models.Star, error) {
	return r.Find(ctx, OrderScope("id ASC"), PaginationScope(limit, offset))
}

func (r *starRepository) GetByID(ctx context.Context, id string) (*models.Star, error) {
	return r.GormRepository.GetByID(ctx, id, PreloadScope("Movies"))
}

func (r *starRepository) Save(ctx context.Context, star *models.Star) error {
	return ParseDBError(r.DB(ctx).Omit("Movies").Save(star).Error)
}
