package handlers

import (
	"github.com/gofiber/fiber/v3"

	"medref/internal/config"
	"medref/internal/tables"
)

// HealthHandler renders the dataset status page.
type HealthHandler struct {
	store *tables.Store
	cfg   *config.Config
}

// NewHealthHandler creates a new health page handler.
func NewHealthHandler(store *tables.Store, cfg *config.Config) *HealthHandler {
	return &HealthHandler{store: store, cfg: cfg}
}

// Show renders the per-dataset load status.
func (h *HealthHandler) Show(c fiber.Ctx) error {
	return c.Render("health", MergeBranding(fiber.Map{
		"Title":    "Dataset Status",
		"Datasets": h.store.Status(),
	}, h.cfg))
}
