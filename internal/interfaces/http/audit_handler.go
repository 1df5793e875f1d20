package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/application/stock"
)

// AuditHandler maneja las peticiones HTTP de auditorías de inventario (protegido).
type AuditHandler struct {
	uc *stock.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *stock.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// Reconcile godoc
// @Summary      Conciliar conteo físico
// @Description  Registra la auditoría, emite el movimiento compensatorio
//               (AJUSTE o MERMA según el signo de la diferencia) y fija el
//               conteo físico como saldo autoritativo, todo en una transacción.
// @Tags         audits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileRequest  true  "product_id, expected_count, actual_count"
// @Success      201   {object}  dto.AuditResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/audits [post]
func (h *AuditHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconcileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Reconcile(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de auditorías
// @Tags         audits
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Tamaño de página (default 20)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.AuditResponse
// @Router       /api/audits [get]
func (h *AuditHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.History(c.Context(), GetActor(c), c.Query("product_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
