package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dotflik/dotflik/internal/pagination"
)

const restartHint = "discard the page token and restart from the first page"

// NewPageProblem maps a pagination rejection to a 400 problem that names the
// exact rule the request broke.
func NewPageProblem(err error, instance string) *ProblemDetail {
	problemType, field, hint := ProblemTypeInvalidPageToken, "page_token", restartHint

	switch {
	case errors.Is(err, pagination.ErrNegativePageSize):
		problemType, field, hint = ProblemTypeNegativePageSize, "page_size", "use 0 for the default page size"
	case errors.Is(err, pagination.ErrInconsistentPageSize):
		problemType, field = ProblemTypeInconsistentPageSize, "page_size"
		hint = "send the page_size returned with the token, or " + restartHint
	case errors.Is(err, pagination.ErrOffsetNotAligned):
		problemType = ProblemTypeOffsetNotAligned
	}

	problem := NewProblemDetail(problemType, "Invalid Page Request", http.StatusBadRequest, err.Error(), instance)
	problem.Code = "pagination"
	problem.Field = field
	problem.Hint = hint
	return problem
}

// ProblemPage responds with HTTP 400 for a rejected page size or page token.
func ProblemPage(c *gin.Context, err error) {
	if c == nil {
		return
	}
	SendProblem(c, NewPageProblem(err, c.Request.URL.Path))
}
