package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/stock"
)

func reserva(productID string, qty int64, expiresAt *time.Time) *entity.ProductReservation {
	return &entity.ProductReservation{
		ID:        "res-" + productID,
		ProductID: productID,
		Quantity:  qty,
		OrderID:   "orden-1",
		ExpiresAt: expiresAt,
	}
}

func TestWithStockInfo_RestaReservasVivas(t *testing.T) {
	now := time.Now()
	p := entity.Product{ID: "p1", StockAvailable: 10}
	res := []*entity.ProductReservation{
		reserva("p1", 3, nil),
		reserva("p1", 2, ptrTime(now.Add(time.Hour))),
		reserva("otro", 99, nil), // de otro producto, no cuenta
	}

	got := stock.WithStockInfo(p, res, now)
	assert.Equal(t, int64(5), got.ReservedStock)
	assert.Equal(t, int64(5), got.StockAvailable)
}

// Expiración pasiva: una reserva vencida nunca aporta a ReservedStock,
// aunque jamás se haya cancelado explícitamente.
func TestWithStockInfo_IgnoraReservasExpiradas(t *testing.T) {
	now := time.Now()
	p := entity.Product{ID: "p1", StockAvailable: 10}
	res := []*entity.ProductReservation{
		reserva("p1", 4, ptrTime(now.Add(-time.Minute))),
	}

	got := stock.WithStockInfo(p, res, now)
	assert.Zero(t, got.ReservedStock)
	assert.Equal(t, int64(10), got.StockAvailable)
}

// Piso de disponibilidad: aunque lo reservado exceda el saldo crudo,
// la disponibilidad derivada nunca es negativa.
func TestWithStockInfo_PisoEnCero(t *testing.T) {
	now := time.Now()
	p := entity.Product{ID: "p1", StockAvailable: 3}
	res := []*entity.ProductReservation{reserva("p1", 8, nil)}

	got := stock.WithStockInfo(p, res, now)
	assert.Equal(t, int64(8), got.ReservedStock)
	assert.Equal(t, int64(0), got.StockAvailable)
}

// La proyección no muta el producto de entrada (es copia por valor).
func TestWithStockInfo_NoMutaElOriginal(t *testing.T) {
	now := time.Now()
	p := entity.Product{ID: "p1", StockAvailable: 10}
	_ = stock.WithStockInfo(p, []*entity.ProductReservation{reserva("p1", 4, nil)}, now)
	assert.Equal(t, int64(10), p.StockAvailable)
	assert.Zero(t, p.ReservedStock)
}

// La variante batch debe coincidir con aplicar la forma unitaria a cada miembro.
func TestWithStockInfoAll_ConsistenteConFormaUnitaria(t *testing.T) {
	now := time.Now()
	products := []*entity.Product{
		{ID: "p1", StockAvailable: 10},
		{ID: "p2", StockAvailable: 1},
	}
	res := []*entity.ProductReservation{
		reserva("p1", 4, nil),
		reserva("p2", 5, nil),
	}

	batch := stock.WithStockInfoAll(products, res, now)
	for i, p := range products {
		single := stock.WithStockInfo(*p, res, now)
		assert.Equal(t, single.StockAvailable, batch[i].StockAvailable, "producto %s", p.ID)
		assert.Equal(t, single.ReservedStock, batch[i].ReservedStock, "producto %s", p.ID)
	}
}

func ptrTime(t time.Time) *time.Time { return &t }
