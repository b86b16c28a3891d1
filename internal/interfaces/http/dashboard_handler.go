package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/almacen-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint de analítica del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Agregado del dashboard (recuentos reales + cifras placeholder)
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/analytics/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary()
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}
