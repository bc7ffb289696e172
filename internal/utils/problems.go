// Package utils provides shared helpers for HTTP handlers: problem details,
// response envelopes and query parameter parsing.
package utils

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TraceIDKey is the gin context key holding the request id.
const TraceIDKey = "trace_id"

// ProblemDetail represents an RFC 9457 Problem Details response for HTTP APIs.
// See: https://datatracker.ietf.org/doc/html/rfc9457
type ProblemDetail struct {
	// Type is a URI that identifies the problem type.
	Type string `json:"type"`

	// Title is a short, human-readable summary of the problem type.
	Title string `json:"title"`

	// Status is the HTTP status code for this occurrence of the problem.
	Status int `json:"status"`

	// Detail is a human-readable explanation specific to this occurrence of the problem.
	Detail string `json:"detail,omitempty"`

	// Instance is a URI that identifies the specific occurrence of the problem.
	Instance string `json:"instance,omitempty"`

	// Timestamp is the time when the problem occurred in ISO 8601 format.
	Timestamp string `json:"timestamp"`

	// Code is the machine-readable error category.
	Code string `json:"code,omitempty"`

	// Field names the request parameter that caused the problem.
	Field string `json:"field,omitempty"`

	// Hint tells the client how to recover.
	Hint string `json:"hint,omitempty"`

	// TraceID can be used for request tracing and debugging.
	TraceID string `json:"trace_id,omitempty"`
}

const problemBase = "https://dotflik.api/problems/"

// Problem type URIs for common error types
const (
	ProblemTypeResourceNotFound    = problemBase + "resource-not-found"
	ProblemTypeInternalServerError = problemBase + "internal-server-error"
	ProblemTypeBadRequest          = problemBase + "bad-request"

	ProblemTypeNegativePageSize     = problemBase + "negative-page-size"
	ProblemTypeInvalidPageToken     = problemBase + "invalid-page-token"
	ProblemTypeInconsistentPageSize = problemBase + "inconsistent-page-size"
	ProblemTypeOffsetNotAligned     = problemBase + "offset-not-aligned"
)

// NewProblemDetail creates a new RFC 9457 compliant problem detail response.
func NewProblemDetail(problemType, title string, status int, detail, instance string) *ProblemDetail {
	return &ProblemDetail{
		Type:      problemType,
		Title:     title,
		Status:    status,
		Detail:    detail,
		Instance:  instance,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewNotFoundProblem creates a 404 response for missing resources.
func NewNotFoundProblem(resource, instance string) *ProblemDetail {
	return NewProblemDetail(
		ProblemTypeResourceNotFound,
		"Resource Not Found",
		http.StatusNotFound,
		fmt.Sprintf("%s not found", resource),
		instance,
	)
}

// NewInternalServerProblem creates a 500 response for server-side errors.
func NewInternalServerProblem(detail, instance string) *ProblemDetail {
	return NewProblemDetail(
		ProblemTypeInternalServerError,
		"Internal Server Error",
		http.StatusInternalServerError,
		detail,
		instance,
	)
}

// NewBadRequestProblem creates a 400 response for malformed requests.
func NewBadRequestProblem(detail, instance string) *ProblemDetail {
	return NewProblemDetail(
		ProblemTypeBadRequest,
		"Bad Request",
		http.StatusBadRequest,
		detail,
		instance,
	)
}

// WithTraceID adds a trace ID to the problem detail.
func (p *ProblemDetail) WithTraceID(traceID string) *ProblemDetail {
	p.TraceID = traceID
	return p
}

// SendProblem sends an RFC 9457 problem details response.
func SendProblem(c *gin.Context, problem *ProblemDetail) {
	c.Header("Content-Type", "application/problem+json")

	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	if problem.TraceID == "" {
		problem.TraceID = GetTraceID(c)
	}

	c.JSON(problem.Status, problem)
}

// GetTraceID extracts the trace ID from the Gin context.
func GetTraceID(c *gin.Context) string {
	if traceID, exists := c.Get(TraceIDKey); exists {
		if id, ok := traceID.(string); ok {
			return id
		}
	}
	return ""
}
