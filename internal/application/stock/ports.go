package stock

import (
	"context"

	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios
// atados a esa tx. Garantiza atomicidad entre el append al libro y la
// actualización del saldo del producto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// AuditTxRunner ejecuta la conciliación de auditoría como una unidad:
// registro de auditoría, movimiento compensatorio y override del saldo.
type AuditTxRunner interface {
	RunAudit(ctx context.Context, fn func(
		auditRepo repository.InventoryAuditRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
