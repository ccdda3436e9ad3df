package handlers

import (
	"errors"
	"net/http"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/ws"

	"github.com/gin-gonic/gin"
)

type InsertTaskRequest struct {
	Data struct {
		CategoryID  int64  `json:"categoryId"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    int    `json:"priority"`
		Deadline    string `json:"deadline"`
	} `json:"data"`
}

// deadline arrives as a bare date from the picker, or RFC3339 from API
// clients.
func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// listTasks fetches through the cache; on a miss it reads the store and
// fills the entry.
func (h *Handler) listTasks(c *gin.Context, userID int64) ([]domain.Task, error) {
	ctx := c.Request.Context()

	if tasks, ok := h.TaskCache.Get(ctx, userID); ok {
		return tasks, nil
	}

	tasks, err := h.Tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	h.TaskCache.Set(ctx, userID, tasks)
	return tasks, nil
}

// ListTasks returns every task of the current user.
func (h *Handler) ListTasks(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	tasks, err := h.listTasks(c, userID)
	if err != nil {
		serverError(c, "list tasks failed", err)
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// InsertTask creates a task and returns it with the resolved category name.
func (h *Handler) InsertTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req InsertTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	fields := make(map[string]string)
	if req.Data.Title == "" {
		fields["title"] = "Missing title"
	}
	if req.Data.Priority < domain.PriorityLow || req.Data.Priority > domain.PriorityHigh {
		fields["priority"] = "Priority must be 1, 2 or 3"
	}
	deadline, err := parseDeadline(req.Data.Deadline)
	if err != nil {
		fields["deadline"] = "Invalid deadline date"
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fields})
		return
	}

	task := &domain.Task{
		UserID:      userID,
		Title:       req.Data.Title,
		Description: req.Data.Description,
		Priority:    req.Data.Priority,
		Deadline:    deadline,
	}
	if req.Data.CategoryID > 0 {
		task.CategoryID = &req.Data.CategoryID
	}

	ctx := c.Request.Context()
	if err := h.Tasks.Insert(ctx, task); err != nil {
		if errors.Is(err, domain.ErrConstraint) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task data"})
			return
		}
		serverError(c, "insert task failed", err)
		return
	}

	h.TaskCache.Invalidate(ctx, userID)
	h.Hub.Notify(userID, ws.Event{Type: ws.EventTaskCreated, Task: task})

	c.JSON(http.StatusOK, task)
}

type SetCompleteRequest struct {
	ID int64 `json:"id"`
}

// SetComplete marks a task complete. Completing a task that is missing or
// already complete reports success all the same; the client cannot tell the
// difference and retries are harmless.
func (h *Handler) SetComplete(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req SetCompleteRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	ctx := c.Request.Context()
	if err := h.Tasks.SetCompleted(ctx, userID, req.ID); err != nil {
		serverError(c, "set complete failed", err)
		return
	}

	h.TaskCache.Invalidate(ctx, userID)
	h.Hub.Notify(userID, ws.Event{Type: ws.EventTaskCompleted, TaskID: req.ID})

	c.JSON(http.StatusOK, gin.H{"completed": "complete"})
}
