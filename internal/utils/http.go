package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// PageQuery carries the pagination query parameters of a list request.
type PageQuery struct {
	PageSize  int    `form:"page_size"`
	PageToken string `form:"page_token"`
}

// GetPageSize lets PageQuery satisfy pagination.PageRequest.
func (q PageQuery) GetPageSize() int32 { return int32(q.PageSize) }

// GetPageToken lets PageQuery satisfy pagination.PageRequest.
func (q PageQuery) GetPageToken() string { return q.PageToken }

// HasPageParams reports whether the request names page_size or page_token.
func HasPageParams(c *gin.Context) bool {
	_, hasSize := c.GetQuery("page_size")
	_, hasToken := c.GetQuery("page_token")
	return hasSize || hasToken
}

// ParsePageQuery reads page_size and page_token from the query string.
// A missing page_size is 0. A page_size that is not an integer is an error;
// range checks are left to the pagination gate.
func ParsePageQuery(c *gin.Context) (PageQuery, error) {
	q := PageQuery{PageToken: c.Query("page_token")}
	if raw, ok := c.GetQuery("page_size"); ok && raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return q, fmt.Errorf("page_size must be an integer, got %q", raw)
		}
		q.PageSize = int(n)
	}
	return q, nil
}

// GetIntParam parses a path parameter as an integer.
func GetIntParam(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return n, nil
}

// BindQuery binds query parameters into req and answers 400 with
// field-level messages when binding or validation fails.
func BindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		ProblemBadRequest(c, strings.Join(formatValidationErrors(err), "; "))
		return false
	}
	return true
}

// formatValidationErrors converts validation errors to developer-friendly messages
func formatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		param := e.Param()

		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "gte", "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", field, param))
		case "lte", "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s", field, param))
		case "notblank":
			messages = append(messages, fmt.Sprintf("%s must not be blank", field))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of: %s", field, param))
		default:
			messages = append(messages, fmt.Sprintf("%s failed validation (%s)", field, e.Tag()))
		}
	}
	return messages
}
