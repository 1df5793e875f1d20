package sales

import (
	"context"

	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

// SaleTxRunner ejecuta el cierre (o devolución) de una venta como unidad
// atómica: el cambio condicional de estado y todos los movimientos de sus
// líneas, o nada. Nunca debe quedar una venta COMPLETADA sin sus débitos.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
