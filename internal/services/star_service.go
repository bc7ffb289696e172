package services

import (
	"context"

	"github.com/dotflik/dotflik/internal/apperrors"
	"github.com/dotflik/dotflik/internal/models"
	"github.com/dotflik/dotflik/internal/pagination"
	"github.com/dotflik/dotflik/internal/repository"
)

// StarService handles star-related business logic.
type StarService struct {
	repo  repository.StarRepository
	pages pager
}

// NewStarService creates a new star service instance.
func NewStarService(repo repository.StarRepository, factory *pagination.Factory, maxPageSize int) *StarService {
	return &StarService{
		repo:  repo,
		pages: newPager(factory, maxPageSize),
	}
}

// List returns a page of stars ordered by id.
func (s *StarService) List(ctx context.Context, pageSize int, pageToken string) (*Page[models.Star], error) {
	const op = "StarService.List"

	return fetchPage(op, s.pages, pageSize, pageToken, func(limit, offset int) ([]models.Star, error) {
		return s.repo.List(ctx, limit, offset)
	})
}

// GetByID retrieves a star with the movies they appear in.
func (s *StarService) GetByID(ctx context.Context, id string) (*models.Star, error) {
	const op = "StarService.GetByID"

	star, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.TranslateRepoError(op, err)
	}
	return star, nil
}
