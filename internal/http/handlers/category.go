package handlers

import (
	"net/http"

	"taskboard/internal/domain"

	"github.com/gin-gonic/gin"
)

// ListCategories returns the global category list. No auth: the set is not
// user data.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		serverError(c, "list categories failed", err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, categories)
}
