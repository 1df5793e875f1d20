package memory

import (
	"context"

	"github.com/jhoicas/Ventario-api/internal/application/sales"
	"github.com/jhoicas/Ventario-api/internal/application/stock"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

var (
	_ stock.TxRunner      = (*TxRunner)(nil)
	_ stock.AuditTxRunner = (*TxRunner)(nil)
	_ sales.SaleTxRunner  = (*TxRunner)(nil)
)

// TxRunner en memoria: pasa los mismos repositorios del almacén sin
// transacción real. El lock del Store serializa cada operación individual;
// no hay rollback, lo cual es suficiente para tests deterministas donde los
// repos no fallan a mitad de camino.
type TxRunner struct {
	s *Store
}

func (t *TxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(t.s.MovementRepository(), t.s.ProductRepository())
}

func (t *TxRunner) RunAudit(_ context.Context, fn func(
	auditRepo repository.InventoryAuditRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(t.s.AuditRepository(), t.s.MovementRepository(), t.s.ProductRepository())
}

func (t *TxRunner) RunSale(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(t.s.SaleRepository(), t.s.MovementRepository(), t.s.ProductRepository())
}
