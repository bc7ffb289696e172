package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dotflik/dotflik/internal/utils"
)

// MaxPageSizeResponse reports the largest page a listing returns.
type MaxPageSizeResponse struct {
	MaxPageSize int `json:"max_page_size"`
}

// MoviesByYearQuery holds the query parameters of GET /movies/by-year.
type MoviesByYearQuery struct {
	From  int    `form:"from" binding:"required,gte=1870"`
	To    int    `form:"to" binding:"required,gte=1870"`
	Order string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// MovieByTitleQuery holds the query parameters of GET /movies/by-title.
type MovieByTitleQuery struct {
	Title string `form:"title" binding:"required,notblank"`
}

// ListMovies returns a page of movies.
func (h *Handlers) ListMovies(c *gin.Context) {
	q, ok := pageQuery(c)
	if !ok {
		return
	}

	page, err := h.movieSvc.List(c.Request.Context(), q.PageSize, q.PageToken)
	if err != nil {
		handleServiceError(c, err, "Movies")
		return
	}

	utils.Paginated(c, page.Items, page.NextPageToken, page.PageSize)
}

// GetMaxPageSize returns the configured page size ceiling.
func (h *Handlers) GetMaxPageSize(c *gin.Context) {
	utils.Success(c, MaxPageSizeResponse{MaxPageSize: h.movieSvc.MaxPageSize()})
}

// ListMoviesByYear returns a page of movies released within a year range.
func (h *Handlers) ListMoviesByYear(c *gin.Context) {
	var req MoviesByYearQuery
	if !utils.BindQuery(c, &req) {
		return
	}
	q, ok := pageQuery(c)
	if !ok {
		return
	}

	page, err := h.movieSvc.ListByYear(c.Request.Context(), q.PageSize, q.PageToken, req.From, req.To, req.Order != "desc")
	if err != nil {
		handleServiceError(c, err, "Movies")
		return
	}

	utils.Paginated(c, page.Items, page.NextPageToken, page.PageSize)
}

// GetMovieByTitle returns the movie whose title matches exactly.
func (h *Handlers) GetMovieByTitle(c *gin.Context) {
	var req MovieByTitleQuery
	if !utils.BindQuery(c, &req) {
		return
	}

	movie, err := h.movieSvc.GetByTitle(c.Request.Context(), req.Title)
	if err != nil {
		handleServiceError(c, err, "Movie")
		return
	}
	utils.Success(c, movie)
}

// GetMovie returns a single movie with its genres and stars.
func (h *Handlers) GetMovie(c *gin.Context) {
	movie, err := h.movieSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Movie")
		return
	}
	utils.Success(c, movie)
}
