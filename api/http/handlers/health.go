package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/askgemini/pkg/health"
)

// readyTimeout bounds the dependency calls made by /ready.
const readyTimeout = 3 * time.Second

// HealthHandler serves liveness and readiness checks.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

type readyResponse struct {
	Status  string          `json:"status"`
	Details string          `json:"details,omitempty"`
	Checks  []health.Result `json:"checks"`
}

// Health: basic liveness check.
// @Summary Liveness check
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// Ready pings each dependency (the Gemini model) and lists the outcome per checker.
// @Summary Readiness check
// @Tags    health
// @Produce json
// @Success 200 {object} readyResponse
// @Failure 503 {object} readyResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), readyTimeout)
	defer cancel()
	checks, err := h.svc.Ready(ctx)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(readyResponse{
			Status:  "not_ready",
			Details: err.Error(),
			Checks:  checks,
		})
	}
	return c.Status(fiber.StatusOK).JSON(readyResponse{Status: "ready", Checks: checks})
}
