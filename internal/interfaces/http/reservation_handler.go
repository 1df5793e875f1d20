package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/application/stock"
)

// ReservationHandler maneja las peticiones HTTP de reservas (protegido).
type ReservationHandler struct {
	uc *stock.ReservationUseCase
}

// NewReservationHandler construye el handler.
func NewReservationHandler(uc *stock.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// Reserve godoc
// @Summary      Crear reserva temporal de stock
// @Description  Reduce la disponibilidad derivada sin tocar el libro. Expira
//               pasivamente cuando pasa expires_at.
// @Tags         reservations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReserveRequest  true  "product_id, quantity, order_id, expires_at"
// @Success      201   {object}  dto.ReservationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reservations [post]
func (h *ReservationHandler) Reserve(c *fiber.Ctx) error {
	var in dto.ReserveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Reserve(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Cancel godoc
// @Summary      Cancelar reserva
// @Description  Libera la retención de inmediato. Cancelar una reserva ya
//               expirada o inexistente es un no-op exitoso.
// @Tags         reservations
// @Security     Bearer
// @Param        id  path  string  true  "ID de la reserva"
// @Success      204
// @Router       /api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListLive godoc
// @Summary      Listar reservas vigentes
// @Tags         reservations
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {array}   dto.ReservationResponse
// @Router       /api/reservations [get]
func (h *ReservationHandler) ListLive(c *fiber.Ctx) error {
	out, err := h.uc.ListLive(c.Context(), GetActor(c), c.Query("product_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
