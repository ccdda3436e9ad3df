package handlers

import (
	"net/http"

	"taskboard/internal/domain"

	"github.com/gin-gonic/gin"
)

// CategoryCounts returns the user's per-category task counts, largest first.
func (h *Handler) CategoryCounts(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	counts, err := h.Tasks.CategoryCounts(c.Request.Context(), userID)
	if err != nil {
		serverError(c, "category counts failed", err)
		return
	}
	if counts == nil {
		counts = []domain.CategoryCount{}
	}
	c.JSON(http.StatusOK, counts)
}

// WeeklySeries returns the 6-day productivity series, earliest day first.
// Days without tasks are absent from the result.
func (h *Handler) WeeklySeries(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	series, err := h.Tasks.WeeklySeries(c.Request.Context(), userID)
	if err != nil {
		serverError(c, "weekly series failed", err)
		return
	}
	if series == nil {
		series = []domain.ProductivityDay{}
	}
	c.JSON(http.StatusOK, series)
}
