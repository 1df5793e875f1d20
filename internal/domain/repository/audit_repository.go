package repository

import (
	"context"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
)

// InventoryAuditRepository puerto para los registros de conciliación.
// Solo creación y lectura: una auditoría es inmutable.
type InventoryAuditRepository interface {
	Create(ctx context.Context, audit *entity.InventoryAudit) error
	// ListByUser devuelve auditorías del tenant, más recientes primero.
	// productID vacío = todas.
	ListByUser(ctx context.Context, userID, productID string, limit, offset int) ([]*entity.InventoryAudit, error)
}
