// Package api wires the HTTP transport: router, middleware and routes.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dotflik/dotflik/internal/api/handlers"
	"github.com/dotflik/dotflik/internal/config"
	"github.com/dotflik/dotflik/internal/pagination"
	"github.com/dotflik/dotflik/internal/utils"
)

// SetupRouter configures and returns the main API router with all routes and middleware.
func SetupRouter(h *handlers.Handlers, gate *pagination.Gate, cfg *config.Config) *gin.Engine {
	if cfg.Env().IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	utils.InitializeValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(requestLogger())
	r.Use(corsMiddleware(cfg))
	r.Use(paginationGate(gate))

	r.GET("/health", h.Health)

	v1 := r.Group("/api/v1")
	{
		movies := v1.Group("/movies")
		movies.GET("", h.ListMovies)
		movies.GET("/max-page-size", h.GetMaxPageSize)
		movies.GET("/by-year", h.ListMoviesByYear)
		movies.GET("/by-title", h.GetMovieByTitle)
		movies.GET("/:id", h.GetMovie)

		genres := v1.Group("/genres")
		genres.GET("/names", h.ListGenreNames)
		genres.GET("/by-name/:name", h.GetGenreByName)
		genres.GET("/:id", h.GetGenre)

		stars := v1.Group("/stars")
		stars.GET("", h.ListStars)
		stars.GET("/:id", h.GetStar)
	}

	return r
}
