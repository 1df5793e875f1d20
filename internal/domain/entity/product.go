package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con sus dos saldos de stock.
// Quantity es el acumulado histórico de unidades ingresadas (solo referencia);
// StockAvailable es el saldo vendible vivo, mantenido por el libro de movimientos.
// ReservedStock y la disponibilidad derivada se calculan en lectura, nunca se persisten.
type Product struct {
	ID             string
	UserID         string // tenant: dueño del producto
	Name           string
	Brand          string
	UnitPrice      decimal.Decimal
	Quantity       int64 // unidades ingresadas de por vida (monótono)
	StockAvailable int64 // saldo pre-reservas; puede quedar negativo por escrituras directas
	MinStock       *int64
	MaxStock       *int64
	ReservedStock  int64 // derivado: suma de reservas vivas (solo en lectura)
	LastAuditDate  *time.Time
	LastAuditCount *int64
	NotifyLowStock bool
	Active         bool // soft-delete: false = tombstone, el historial lo sigue referenciando
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
