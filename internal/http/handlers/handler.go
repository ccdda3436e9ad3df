package handlers

import (
	"net/http"

	"taskboard/internal/cache"
	"taskboard/internal/logger"
	"taskboard/internal/repository"
	"taskboard/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB         *pgxpool.Pool
	Users      *repository.UserRepository
	Tasks      *repository.TaskRepository
	Categories *repository.CategoryRepository
	TaskCache  *cache.TaskCache
	Hub        *ws.Hub

	// CookieSecure marks the credential cookie HTTPS-only.
	CookieSecure bool
}

func NewHandler(db *pgxpool.Pool, taskCache *cache.TaskCache, hub *ws.Hub, cookieSecure bool) *Handler {
	return &Handler{
		DB:           db,
		Users:        repository.NewUserRepository(db),
		Tasks:        repository.NewTaskRepository(db),
		Categories:   repository.NewCategoryRepository(db),
		TaskCache:    taskCache,
		Hub:          hub,
		CookieSecure: cookieSecure,
	}
}

// getUserID extracts the authenticated user id set by the auth middleware.
func getUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// serverError logs the cause and returns the generic envelope. Internal
// detail never reaches the client.
func serverError(c *gin.Context, msg string, err error) {
	logger.Error(msg, "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
}
