package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. Camino feliz lineal:
// PENDIENTE → CONFIRMADA → EN_PROCESO → COMPLETADA.
// CANCELADA solo desde PENDIENTE; DEVUELTA solo desde COMPLETADA.
const (
	SaleStatusPendiente  = "PENDIENTE"
	SaleStatusConfirmada = "CONFIRMADA"
	SaleStatusEnProceso  = "EN_PROCESO"
	SaleStatusCompletada = "COMPLETADA"
	SaleStatusCancelada  = "CANCELADA"
	SaleStatusDevuelta   = "DEVUELTA"
)

// saleTransitions define las transiciones manuales permitidas.
var saleTransitions = map[string][]string{
	SaleStatusPendiente:  {SaleStatusConfirmada, SaleStatusCancelada},
	SaleStatusConfirmada: {SaleStatusEnProceso},
	SaleStatusEnProceso:  {SaleStatusCompletada},
	SaleStatusCompletada: {SaleStatusDevuelta},
}

// IsValidSaleTransition indica si el cambio de estado from → to está permitido.
func IsValidSaleTransition(from, to string) bool {
	for _, next := range saleTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalSaleStatus indica si el estado no admite más transiciones hacia
// adelante (COMPLETADA admite únicamente DEVUELTA).
func IsTerminalSaleStatus(status string) bool {
	return status == SaleStatusCancelada || status == SaleStatusDevuelta
}

// SaleItem es una línea de venta. Total = Quantity × UnitPrice − Discount.
type SaleItem struct {
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
}

// Sale es el encabezado de una transacción de venta.
// Invariante: Total = Subtotal − Discount + Tax, al centavo.
// StockApplied marca que el débito al libro ya ocurrió (garantiza exactamente
// un débito por venta aunque la transición a COMPLETADA se reintente).
type Sale struct {
	ID            string
	UserID        string
	CustomerID    *string
	Items         []SaleItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Status        string
	StockApplied  bool
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ComputeTotals recalcula el total de cada línea y los acumulados del
// encabezado a partir de las líneas. Se invoca solo al crear la venta;
// las transiciones de estado nunca recalculan.
func (s *Sale) ComputeTotals() {
	subtotal := decimal.Zero
	for i := range s.Items {
		it := &s.Items[i]
		it.Total = decimal.NewFromInt(it.Quantity).Mul(it.UnitPrice).Sub(it.Discount)
		subtotal = subtotal.Add(it.Total)
	}
	s.Subtotal = subtotal
	s.Total = s.Subtotal.Sub(s.Discount).Add(s.Tax)
}
