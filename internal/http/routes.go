package http

import (
	"taskboard/internal/cache"
	"taskboard/internal/config"
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"
	"taskboard/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires the whole API surface onto r. The route shapes mirror
// the frontend's expectations, so they stay flat rather than grouped under a
// version prefix.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	taskCache := cache.NewTaskCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	hub := ws.NewHub()
	h := handlers.NewHandler(db, taskCache, hub, cfg.CookieSecure())
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	apiRL := middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow)
	authRL := middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)

	// Auth
	r.POST("/register", authRL, h.Register)
	r.POST("/login", authRL, h.Login)
	r.DELETE("/logout", h.Logout)
	r.GET("/auth", middleware.Auth(), h.AuthCheck)

	// Categories (global, public)
	r.GET("/category", apiRL, h.ListCategories)

	// Tasks
	r.GET("/task", apiRL, middleware.Auth(), h.ListTasks)
	r.POST("/insert", apiRL, middleware.Auth(), h.InsertTask)
	r.PUT("/set/complete", apiRL, middleware.Auth(), h.SetComplete)
	r.GET("/task/view", apiRL, middleware.Auth(), h.TaskView)

	// Dashboard stats
	r.GET("/user/task/category", apiRL, middleware.Auth(), h.CategoryCounts)
	r.GET("/task/count", apiRL, middleware.Auth(), h.WeeklySeries)

	// Dashboard live events
	r.GET("/ws", middleware.Auth(), h.WS(hub))
}
