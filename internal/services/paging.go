package services

import (
	"fmt"

	"github.com/dotflik/dotflik/internal/apperrors"
	"github.com/dotflik/dotflik/internal/pagination"
)

// DefaultMaxPageSize applies when no maximum is configured.
const DefaultMaxPageSize = 50

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items         []T
	NextPageToken string // empty on the last page
	PageSize      int    // size the next request must declare alongside NextPageToken
}

// pager turns a (page size, page token) pair into LIMIT/OFFSET arguments and
// mints the token for the following page.
type pager struct {
	factory *pagination.Factory
	max     int
}

func newPager(f *pagination.Factory, maxPageSize int) pager {
	if f == nil {
		f = pagination.NewFactory()
	}
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}
	return pager{factory: f, max: maxPageSize}
}

// effective clamps the declared page size to (0, max].
func (p pager) effective(pageSize int) int {
	if pageSize <= 0 || pageSize > p.max {
		return p.max
	}
	return pageSize
}

// fetchPage decodes the token, runs fetch with the resolved window and fills
// in the next page token when the page came back full.
func fetchPage[T any](op string, p pager, pageSize int, pageToken string, fetch func(limit, offset int) ([]T, error)) (*Page[T], error) {
	if pageSize < 0 {
		return nil, apperrors.TranslatePageError(op, pagination.ErrNegativePageSize)
	}

	tok, err := p.factory.LimitOffset(pagination.RawArgs(pageToken))
	if err != nil {
		return nil, apperrors.TranslatePageError(op, err)
	}

	size := p.effective(pageSize)
	items, err := fetch(size, tok.Offset())
	if err != nil {
		return nil, apperrors.TranslateRepoError(op, err)
	}

	page := &Page[T]{Items: items, PageSize: size}
	if len(items) >= size {
		next, err := p.factory.LimitOffset(pagination.LimitOffsetArgs{Limit: size, Offset: tok.Offset() + size})
		if err != nil {
			return nil, fmt.Errorf("%s: failed to mint next page token: %w", op, err)
		}
		page.NextPageToken = next.String()
	}
	return page, nil
}
