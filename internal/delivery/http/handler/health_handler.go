package handler

import (
	"context"
	"time"

	"career-os/internal/database"
	"career-os/internal/infrastructure/cache"
	"career-os/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

func NewHealthHandler(db database.DB, c *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: c}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

// Check reports liveness. The cache is optional infrastructure, so only a
// failing database ping degrades the overall status.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	res := healthResponse{Status: "ok", Database: "ok", Cache: "ok"}

	if h.db == nil {
		res.Database = "unconfigured"
		res.Status = "degraded"
	} else if err := h.db.Ping(ctx); err != nil {
		res.Database = "unreachable"
		res.Status = "degraded"
	}

	if err := h.cache.Ping(ctx); err != nil {
		res.Cache = "bypassed"
	}

	status := fiber.StatusOK
	if res.Status != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return response.Success(c, status, response.MessageOK, res)
}
