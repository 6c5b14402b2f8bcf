package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"coursehub/pkg/response"
)

type SystemHandler struct {
	Pool    *pgxpool.Pool
	RDB     *redis.Client
	AppName string
	Env     string
	Version string
}

func NewSystemHandler(pool *pgxpool.Pool, rdb *redis.Client, appName, env, version string) *SystemHandler {
	return &SystemHandler{Pool: pool, RDB: rdb, AppName: appName, Env: env, Version: version}
}

// Health GET /health — reports dependency reachability
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	deps := gin.H{}
	healthy := true

	if h.Pool != nil {
		if err := h.Pool.Ping(ctx); err != nil {
			deps["database"] = "down"
			healthy = false
		} else {
			deps["database"] = "up"
		}
	}
	if h.RDB != nil {
		if err := h.RDB.Ping(ctx).Err(); err != nil {
			deps["redis"] = "down"
			healthy = false
		} else {
			deps["redis"] = "up"
		}
	}

	status := http.StatusOK
	msg := "Service is healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		msg = "Service is degraded"
	}
	response.Success(c, status, msg, gin.H{
		"name":         h.AppName,
		"environment":  h.Env,
		"version":      h.Version,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"dependencies": deps,
	})
}

// Index GET /api — lists the available endpoint groups
func (h *SystemHandler) Index(c *gin.Context) {
	response.Success(c, http.StatusOK, "Course Management System API", gin.H{
		"version": h.Version,
		"endpoints": gin.H{
			"auth":       "/api/auth",
			"courses":    "/api/courses",
			"categories": "/api/categories",
			"health":     "/health",
		},
	})
}
