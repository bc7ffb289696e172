// Package handlers provides HTTP request handlers for all API endpoints.
package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/dotflik/dotflik/internal/apperrors"
	"github.com/dotflik/dotflik/internal/services"
	"github.com/dotflik/dotflik/internal/utils"
	"github.com/dotflik/dotflik/pkg/logger"
)

// Handlers contains all the dependencies needed by the API handlers.
type Handlers struct {
	db       *sqlx.DB
	movieSvc *services.MovieService
	genreSvc *services.GenreService
	starSvc  *services.StarService
}

// NewHandlers creates a new Handlers instance with all required dependencies.
func NewHandlers(
	db *sqlx.DB,
	movieSvc *services.MovieService,
	genreSvc *services.GenreService,
	starSvc *services.StarService,
) *Handlers {
	return &Handlers{
		db:       db,
		movieSvc: movieSvc,
		genreSvc: genreSvc,
		starSvc:  starSvc,
	}
}

// handleServiceError converts apperrors.Error to appropriate HTTP responses.
// Internal error details are logged but never exposed to clients.
func handleServiceError(c *gin.Context, err error, resource string) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		logger.Error("Unhandled error for %s: %v", resource, err)
		utils.ProblemInternalServer(c, fmt.Sprintf("Failed to process %s", resource))
		return
	}

	if appErr.Internal != "" {
		logger.Error("%s error: %s (internal: %s)", resource, appErr.Message, appErr.Internal)
	}

	switch appErr.Code {
	case apperrors.CodeNotFound:
		utils.ProblemNotFound(c, resource)
	case apperrors.CodePagination:
		utils.ProblemPage(c, err)
	case apperrors.CodeInvalidInput, apperrors.CodeValidation:
		problem := utils.NewBadRequestProblem(appErr.Message, c.Request.URL.Path)
		problem.Code = appErr.Code.String()
		problem.Field = appErr.Field
		utils.SendProblem(c, problem)
	default:
		logger.Error("%s failed: %v", resource, err)
		utils.ProblemInternalServer(c, fmt.Sprintf("Failed to process %s", resource))
	}
}

// pageQuery reads page_size and page_token, answering 400 when page_size
// is not an integer.
func pageQuery(c *gin.Context) (utils.PageQuery, bool) {
	q, err := utils.ParsePageQuery(c)
	if err != nil {
		utils.ProblemBadRequest(c, err.Error())
		return q, false
	}
	return q, true
}
