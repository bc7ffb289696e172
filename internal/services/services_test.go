package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotflik/dotflik/internal/apperrors"
	"github.com/dotflik/dotflik/internal/database/databasetest"
	"github.com/dotflik/dotflik/internal/models"
	"github.com/dotflik/dotflik/internal/pagination"
	"github.com/dotflik/dotflik/internal/repository"
)

func newMovieService(t *testing.T, maxPageSize int) *MovieService {
	t.Helper()
	db := databasetest.Open(t)
	db.SeedCatalog(t)
	return NewMovieService(repository.NewMovieRepository(db.Gorm), nil, maxPageSize)
}

func ids(movies []models.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func TestMovieServiceWalksAllPages(t *testing.T) {
	svc := newMovieService(t, 50)
	ctx := context.Background()

	var seen []string
	token := ""
	for i := 0; i < 10; i++ {
		page, err := svc.List(ctx, 3, token)
		require.NoError(t, err)
		assert.Equal(t, 3, page.PageSize)
		seen = append(seen, ids(page.Items)...)

		if page.NextPageToken == "" {
			break
		}
		tok, err := pagination.DecodeLimitOffset(page.NextPageToken)
		require.NoError(t, err)
		require.NoError(t, pagination.Validate(tok, 3))
		token = page.NextPageToken
	}

	assert.Equal(t, []string{"tt01", "tt02", "tt03", "tt04", "tt05", "tt06", "tt07"}, seen)
}

func TestMovieServiceNextTokenOnFullPage(t *testing.T) {
	svc := newMovieService(t, 50)
	ctx := context.Background()

	page, err := svc.List(ctx, 7, "")
	require.NoError(t, err)
	assert.Len(t, page.Items, 7)
	assert.Equal(t, "limit=7&offset=7", page.NextPageToken)

	page, err = svc.List(ctx, 7, page.NextPageToken)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Empty(t, page.NextPageToken)
}

func TestMovieServiceClampsPageSize(t *testing.T) {
	svc := newMovieService(t, 2)
	ctx := context.Background()
	assert.Equal(t, 2, svc.MaxPageSize())

	for _, size := range []int{0, 2, 99} {
		page, err := svc.List(ctx, size, "")
		require.NoError(t, err)
		assert.Equal(t, 2, page.PageSize)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, "limit=2&offset=2", page.NextPageToken)
	}
}

func TestMovieServicePageErrors(t *testing.T) {
	svc := newMovieService(t, 50)
	ctx := context.Background()

	_, err := svc.List(ctx, -1, "")
	assert.ErrorIs(t, err, apperrors.ErrPagination)
	assert.ErrorIs(t, err, pagination.ErrNegativePageSize)

	_, err = svc.List(ctx, 5, "limit=5&offset=x")
	assert.ErrorIs(t, err, apperrors.ErrPagination)
	assert.ErrorIs(t, err, pagination.ErrTokenFormat)

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "page_token", appErr.Field)
}

func TestMovieServiceListByYear(t *testing.T) {
	svc := newMovieService(t, 50)
	ctx := context.Background()

	page, err := svc.ListByYear(ctx, 2, "", 1992, 1995, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"tt06", "tt05"}, ids(page.Items))
	assert.Equal(t, "limit=2&offset=2", page.NextPageToken)

	page, err = svc.ListByYear(ctx, 2, page.NextPageToken, 1992, 1995, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"tt04", "tt03"}, ids(page.Items))

	_, err = svc.ListByYear(ctx, 2, "", 2000, 1990, true)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestMovieServiceLookups(t *testing.T) {
	svc := newMovieService(t, 50)
	ctx := context.Background()

	m, err := svc.GetByID(ctx, "tt03")
	require.NoError(t, err)
	assert.Equal(t, "Movie C", m.Title)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	m, err = svc.GetByTitle(ctx, "Movie G")
	require.NoError(t, err)
	assert.Equal(t, "tt07", m.ID)

	_, err = svc.GetByTitle(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestGenreAndStarServices(t *testing.T) {
	db := databasetest.Open(t)
	db.SeedCatalog(t)
	ctx := context.Background()

	genres := NewGenreService(repository.NewGenreRepository(db.SQL))
	names, err := genres.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Action", "Comedy", "Drama"}, names)

	g, err := genres.GetByName(ctx, "Drama")
	require.NoError(t, err)
	assert.Equal(t, 1, g.ID)

	_, err = genres.GetByID(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	stars := NewStarService(repository.NewStarRepository(db.Gorm), pagination.NewFactory(), 2)
	page, err := stars.List(ctx, 0, "")
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "limit=2&offset=2", page.NextPageToken)

	page, err = stars.List(ctx, 2, page.NextPageToken)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Empty(t, page.NextPageToken)

	star, err := stars.GetByID(ctx, "nm02")
	require.NoError(t, err)
	assert.NotEmpty(t, star.Movies)
}
