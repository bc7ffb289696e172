package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProblemDetail(t *testing.T) {
	problem := NewProblemDetail(
		ProblemTypeInvalidPageToken,
		"Bad Request",
		400,
		"page token is not in a recognised format",
		"/api/v1/movies",
	)

	assert.Equal(t, ProblemTypeInvalidPageToken, problem.Type)
	assert.Equal(t, "Bad Request", problem.Title)
	assert.Equal(t, 400, problem.Status)
	assert.Equal(t, "/api/v1/movies", problem.Instance)

	// Verify timestamp is valid ISO 8601
	_, err := time.Parse(time.RFC3339, problem.Timestamp)
	assert.NoError(t, err)
}

func TestProblemDetailHelpers(t *testing.T) {
	tests := []struct {
		name           string
		constructor    func() *ProblemDetail
		expectedType   string
		expectedStatus int
	}{
		{
			name: "NotFound",
			constructor: func() *ProblemDetail {
				return NewNotFoundProblem("Movie", "/api/v1/movies/tt0000001")
			},
			expectedType:   ProblemTypeResourceNotFound,
			expectedStatus: 404,
		},
		{
			name: "InternalServer",
			constructor: func() *ProblemDetail {
				return NewInternalServerProblem("Database connection failed", "/api/v1/movies")
			},
			expectedType:   ProblemTypeInternalServerError,
			expectedStatus: 500,
		},
		{
			name: "BadRequest",
			constructor: func() *ProblemDetail {
				return NewBadRequestProblem("page_size must be an integer", "/api/v1/movies")
			},
			expectedType:   ProblemTypeBadRequest,
			expectedStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problem := tt.constructor()
			assert.Equal(t, tt.expectedType, problem.Type)
			assert.Equal(t, tt.expectedStatus, problem.Status)
			assert.NotEmpty(t, problem.Title)
			assert.NotEmpty(t, problem.Detail)
		})
	}
}

func TestSendProblemFillsInstanceAndTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/movies?page_size=x", nil)
	c.Set(TraceIDKey, "trace-123456")

	SendProblem(c, NewBadRequestProblem("page_size must be an integer", ""))

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var response ProblemDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "/api/v1/movies", response.Instance)
	assert.Equal(t, "trace-123456", response.TraceID)
}

func TestProblemExtended(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/stars", nil)

	ProblemExtended(c, ProblemTypeOffsetNotAligned, 400, "offset must be a multiple of limit", "pagination", "page_token", "restart with an empty page token")

	var response ProblemDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, ProblemTypeOffsetNotAligned, response.Type)
	assert.Equal(t, "Bad Request", response.Title)
	assert.Equal(t, "pagination", response.Code)
	assert.Equal(t, "page_token", response.Field)
	assert.Equal(t, "restart with an empty page token", response.Hint)
}

func TestParsePageQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		url     string
		want    PageQuery
		has     bool
		wantErr bool
	}{
		{url: "/movies", want: PageQuery{}, has: false},
		{url: "/movies?page_size=5", want: PageQuery{PageSize: 5}, has: true},
		{url: "/movies?page_size=-1", want: PageQuery{PageSize: -1}, has: true},
		{url: "/movies?page_token=limit%3D5%26offset%3D10", want: PageQuery{PageToken: "limit=5&offset=10"}, has: true},
		{url: "/movies?page_size=five", has: true, wantErr: true},
		{url: "/movies?page_size=99999999999", has: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", tt.url, nil)

			assert.Equal(t, tt.has, HasPageParams(c))
			got, err := ParsePageQuery(c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
