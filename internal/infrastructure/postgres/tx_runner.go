package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Ventario-api/internal/application/sales"
	"github.com/jhoicas/Ventario-api/internal/application/stock"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

var (
	_ stock.TxRunner      = (*TxRunner)(nil)
	_ stock.AuditTxRunner = (*TxRunner)(nil)
	_ sales.SaleTxRunner  = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL, pasando
// repositorios atados a esa tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción para movimientos del libro: append + saldo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapStoreErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovementRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapStoreErr("commit transaction", err)
	}
	return nil
}

// RunAudit inicia una transacción para la conciliación de auditoría: registro,
// movimiento compensatorio y override del saldo como unidad.
func (r *TxRunner) RunAudit(ctx context.Context, fn func(
	auditRepo repository.InventoryAuditRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapStoreErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAuditRepository(tx), NewMovementRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapStoreErr("commit transaction", err)
	}
	return nil
}

// RunSale inicia una transacción para el cierre o devolución de una venta:
// cambio condicional de estado más los movimientos de todas sus líneas.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapStoreErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSaleRepository(tx), NewMovementRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapStoreErr("commit transaction", err)
	}
	return nil
}
