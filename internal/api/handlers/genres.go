package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dotflik/dotflik/internal/utils"
)

// GenreNamesResponse lists genre names alphabetically.
type GenreNamesResponse struct {
	Names []string `json:"names"`
}

// ListGenreNames returns every genre name.
func (h *Handlers) ListGenreNames(c *gin.Context) {
	names, err := h.genreSvc.Names(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Genres")
		return
	}
	utils.Success(c, GenreNamesResponse{Names: names})
}

func (h *Handlers) GetGenre(c *gin.Context) {
	id, err := utils.GetIntParam(c, "id")
	if err != nil {
		utils.ProblemBadRequest(c, err.Error())
		return
	}

	genre, err := h.genreSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Genre")
		return
	}
	utils.Success(c, genre)
}

func (h *Handlers) GetGenreByName(c *gin.Context) {
	genre, err := h.genreSvc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		handleServiceError(c, err, "Genre")
		return
	}
	utils.Success(c, genre)
}
