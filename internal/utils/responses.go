package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageResponse is the envelope for one page of a token-paginated listing.
// Clients continue by sending NextPageToken with PageSize unchanged.
type PageResponse[T any] struct {
	Data          []T    `json:"data"`
	NextPageToken string `json:"next_page_token"`
	PageSize      int    `json:"page_size"`
}

// Success responds with HTTP 200 OK status and the provided data.
func Success(c *gin.Context, data any) {
	if c == nil {
		return
	}
	c.JSON(http.StatusOK, data)
}

// Paginated responds with HTTP 200 OK and a page envelope.
func Paginated[T any](c *gin.Context, data []T, nextPageToken string, pageSize int) {
	if c == nil {
		return
	}
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, PageResponse[T]{
		Data:          data,
		NextPageToken: nextPageToken,
		PageSize:      pageSize,
	})
}

// RFC 9457 Problem Details compatible error response functions.

// ProblemNotFound responds with HTTP 404 Not Found.
func ProblemNotFound(c *gin.Context, resource string) {
	if c == nil {
		return
	}
	SendProblem(c, NewNotFoundProblem(resource, c.Request.URL.Path))
}

// ProblemInternalServer responds with HTTP 500 Internal Server Error.
func ProblemInternalServer(c *gin.Context, detail string) {
	if c == nil {
		return
	}
	SendProblem(c, NewInternalServerProblem(detail, c.Request.URL.Path))
}

// ProblemBadRequest responds with HTTP 400 Bad Request.
func ProblemBadRequest(c *gin.Context, detail string) {
	if c == nil {
		return
	}
	SendProblem(c, NewBadRequestProblem(detail, c.Request.URL.Path))
}

// ProblemExtended responds with an RFC 9457 problem carrying code, field and hint.
// This is used by handleServiceError for typed error responses.
func ProblemExtended(c *gin.Context, problemType string, status int, detail, code, field, hint string) {
	if c == nil {
		return
	}
	problem := NewProblemDetail(
		problemType,
		http.StatusText(status),
		status,
		detail,
		c.Request.URL.Path,
	)
	problem.Code = code
	problem.Field = field
	problem.Hint = hint
	SendProblem(c, problem)
}
