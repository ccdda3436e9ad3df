package handlers

import (
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/taskview"

	"github.com/gin-gonic/gin"
)

// TaskView runs the whole derivation pipeline server-side and returns the
// dashboard payload in one round trip: the filtered/sorted page, the
// upcoming-tasks widget and the productivity average.
//
// Query parameters: search, priority (1-3, 0=all), status (all/completed/
// pending), sort (see taskview sort keys), page, per_page.
func (h *Handler) TaskView(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	tasks, err := h.listTasks(c, userID)
	if err != nil {
		serverError(c, "task view fetch failed", err)
		return
	}

	criteria := taskview.Criteria{
		Search: c.Query("search"),
		Status: taskview.Status(c.DefaultQuery("status", string(taskview.StatusAll))),
	}
	if v := c.Query("priority"); v != "" && v != "all" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.Priority = n
		}
	}

	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", taskview.DefaultPerPage)

	derived := taskview.Sort(taskview.Filter(tasks, criteria), taskview.SortKey(c.Query("sort")))
	result := taskview.Paginate(derived, page, perPage)

	series, err := h.Tasks.WeeklySeries(c.Request.Context(), userID)
	if err != nil {
		serverError(c, "task view series failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":        result.Items,
		"page":         result.Page,
		"per_page":     result.PerPage,
		"total":        result.Total,
		"total_pages":  result.TotalPages,
		"upcoming":     taskview.Upcoming(tasks, time.Now()),
		"productivity": taskview.AverageProductivity(series),
	})
}

func intQuery(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
