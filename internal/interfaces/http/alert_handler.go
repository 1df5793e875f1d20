package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/application/stock"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock (protegido).
type AlertHandler struct {
	uc *stock.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *stock.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Evaluar alertas de stock activas
// @Description  Recalcula las alertas sobre la disponibilidad derivada y
//               superpone el estado de reconocimiento del usuario.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.AlertResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Evaluate(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Acknowledge godoc
// @Summary      Reconocer una alerta
// @Description  El reconocimiento es pegajoso: suprime la alerta hasta que la
//               condición salga de rango y vuelva a dispararse.
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.AcknowledgeAlertRequest  true  "product_id, alert_type"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/alerts/ack [post]
func (h *AlertHandler) Acknowledge(c *fiber.Ctx) error {
	var in dto.AcknowledgeAlertRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Acknowledge(c.Context(), GetActor(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
