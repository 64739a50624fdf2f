package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vansh2812/Tailor/internal/application/analytics"
	"github.com/Vansh2812/Tailor/internal/application/dto"
)

// DashboardHandler expone las métricas agregadas del panel (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Métricas del panel
// @Description  Totales de órdenes, ingresos, sucursales y servicios más las 5 órdenes más recientes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStats
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/workOrders/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
