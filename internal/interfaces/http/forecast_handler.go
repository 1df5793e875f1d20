package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventario-api/internal/application/forecast"
)

// ForecastHandler maneja las peticiones HTTP de pronóstico y optimización (protegido).
// Todos los endpoints son de solo lectura sobre el historial de ventas.
type ForecastHandler struct {
	uc *forecast.UseCase
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc *forecast.UseCase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// Demand godoc
// @Summary      Pronóstico de demanda por producto
// @Tags         forecast
// @Security     Bearer
// @Produce      json
// @Param        horizon_days  query  int  false  "Horizonte en días (default 30)"
// @Success      200  {array}   dto.DemandForecastDTO
// @Router       /api/forecast/demand [get]
func (h *ForecastHandler) Demand(c *fiber.Ctx) error {
	out, err := h.uc.Demand(c.Context(), GetActor(c), c.QueryInt("horizon_days"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reorders godoc
// @Summary      Recomendaciones de reposición priorizadas
// @Tags         forecast
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ReorderSuggestionDTO
// @Router       /api/forecast/reorders [get]
func (h *ForecastHandler) Reorders(c *fiber.Ctx) error {
	out, err := h.uc.Reorders(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Patterns godoc
// @Summary      Stock muerto, sobrestock y estacionalidad
// @Tags         forecast
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PatternReportDTO
// @Router       /api/forecast/patterns [get]
func (h *ForecastHandler) Patterns(c *fiber.Ctx) error {
	out, err := h.uc.Patterns(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
