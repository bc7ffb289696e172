package services

import (
	"context"

	"github.com/dotflik/dotflik/internal/apperrors"
	"github.com/dotflik/dotflik/internal/models"
	"github.com/dotflik/dotflik/internal/repository"
)

// GenreService handles genre lookups.
type GenreService struct {
	repo repository.GenreRepository
}

// NewGenreService creates a new genre service instance.
func NewGenreService(repo repository.GenreRepository) *GenreService {
	return &GenreService{repo: repo}
}

// Names returns all genre names ordered alphabetically.
func (s *GenreService) Names(ctx context.Context) ([]string, error) {
	const op = "GenreService.Names"

	names, err := s.repo.Names(ctx)
	if err != nil {
		return nil, apperrors.TranslateRepoError(op, err)
	}
	return names, nil
}

func (s *GenreService) GetByID(ctx context.Context, id int) (*models.Genre, error) {
	const op = "GenreService.GetByID"

	genre, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.TranslateRepoError(op, err)
	}
	return genre, nil
}

func (s *GenreService) GetByName(ctx context.Context, name string) (*models.Genre, error) {
	const op = "GenreService.GetByName"

	genre, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, apperrors.TranslateRepoError(op, err)
	}
	return genre, nil
}
