package stock

import (
	"time"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
)

// WithStockInfo aplica la proyección de disponibilidad derivada sobre un
// producto: ReservedStock = suma de reservas vivas, StockAvailable =
// max(0, saldo almacenado − reservado). Proyección pura: se recalcula en cada
// lectura y nunca se escribe de vuelta al saldo almacenado.
func WithStockInfo(p entity.Product, reservations []*entity.ProductReservation, now time.Time) entity.Product {
	var reserved int64
	for _, r := range reservations {
		if r.ProductID == p.ID && r.IsLive(now) {
			reserved += r.Quantity
		}
	}
	p.ReservedStock = reserved
	available := p.StockAvailable - reserved
	if available < 0 {
		// Las reservas pueden exceder transitoriamente el saldo crudo;
		// la disponibilidad derivada nunca baja de cero.
		available = 0
	}
	p.StockAvailable = available
	return p
}

// WithStockInfoAll aplica la proyección a cada producto de la lista.
// El resultado es consistente con llamar WithStockInfo por elemento.
func WithStockInfoAll(products []*entity.Product, reservations []*entity.ProductReservation, now time.Time) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		projected := WithStockInfo(*p, reservations, now)
		out = append(out, &projected)
	}
	return out
}
