package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dotflik/dotflik/internal/utils"
)

// ListStars returns a page of stars.
func (h *Handlers) ListStars(c *gin.Context) {
	q, ok := pageQuery(c)
	if !ok {
		return
	}

	page, err := h.starSvc.List(c.Request.Context(), q.PageSize, q.PageToken)
	if err != nil {
		handleServiceError(c, err, "Stars")
		return
	}

	utils.Paginated(c, page.Items, page.NextPageToken, page.PageSize)
}

// GetStar returns a star with the movies they appear in.
func (h *Handlers) GetStar(c *gin.Context) {
	star, err := h.starSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Star")
		return
	}
	utils.Success(c, star)
}
