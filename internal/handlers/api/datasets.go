package api

import (
	"github.com/gofiber/fiber/v3"

	"medref/internal/tables"
)

// DatasetHandler reports dataset load status.
type DatasetHandler struct {
	store *tables.Store
}

// NewDatasetHandler creates a new dataset status handler.
func NewDatasetHandler(store *tables.Store) *DatasetHandler {
	return &DatasetHandler{store: store}
}

// List returns the load state of every manifest dataset.
func (h *DatasetHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, h.store.Status())
}

// Healthz is the liveness probe. The process is healthy even with absent
// datasets; their state is included so operators can see partial loads.
func (h *DatasetHandler) Healthz(c fiber.Ctx) error {
	status := h.store.Status()
	loaded := 0
	for _, d := range status {
		if d.Loaded {
			loaded++
		}
	}
	return c.JSON(fiber.Map{
		"status":   "ok",
		"loaded":   loaded,
		"datasets": status,
	})
}
