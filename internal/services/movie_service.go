// Package services provides business logic for the Dotflik catalog.
package services

import (
	"context"
	"fmt"

	"github.com/dotflik/dotflik/internal/apperrors"
	"github.com/dotflik/dotflik/internal/models"
	"github.com/dotflik/dotflik/internal/pagination"
	"github.com/dotflik/dotflik/internal/repository"
)

// MovieService handles movie-related business logic.
type MovieService struct {
	repo  repository.MovieRepository
	pages pager
}

// NewMovieService creates a new movie service instance.
// A nil factory selects the default token registry.
func NewMovieService(repo repository.MovieRepository, factory *pagination.Factory, maxPageSize int) *MovieService {
	return &MovieService{
		repo:  repo,
		pages: newPager(factory, maxPageSize),
	}
}

// MaxPageSize returns the largest page the service hands out.
func (s *MovieService) MaxPageSize() int {
	return s.pages.max
}

// List returns a page of movies ordered by id.
func (s *MovieService) List(ctx context.Context, pageSize int, pageToken string) (*Page[models.Movie], error) {
	const op = "MovieService.List"

	return fetchPage(op, s.pages, pageSize, pageToken, func(limit, offset int) ([]models.Movie, error) {
		return s.repo.List(ctx, limit, offset)
	})
}

// ListByYear returns a page of movies released between from and to inclusive.
func (s *MovieService) ListByYear(ctx context.Context, pageSize int, pageToken string, from, to int, ascending bool) (*Page[models.Movie], error) {
	const op = "MovieService.ListByYear"

	if from > to {
		return nil, fmt.Errorf("%s: %w", op,
			apperrors.InvalidInput(fmt.Sprintf("year range start %d is after end %d", from, to)).WithField("from"))
	}

	return fetchPage(op, s.pages, pageSize, pageToken, func(limit, offset int) ([]models.Movie, error) {
		return s.repo.ListByYear(ctx, from, to, ascending, limit, offset)
	})
}

// GetByID retrieves a movie with its genres and stars.
func (s *MovieService) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	const op = "MovieService.GetByID"

	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.TranslateRepoError(op, err)
	}
	return movie, nil
}

// GetByTitle retrieves the movie with exactly this title.
func (s *MovieService) GetByTitle(ctx context.Context, title string) (*models.Movie, error) {
	const op = "MovieService.GetByTitle"

	if title == "" {
		return nil, fmt.Errorf("%s: %w", op, apperrors.InvalidInput("title is required").WithField("title"))
	}

	movie, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		return nil, apperrors.TranslateRepoError(op, err)
	}
	return movie, nil
}
