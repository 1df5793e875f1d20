package entity

import "time"

// InventoryAudit registra una conciliación de conteo físico.
// Difference = ActualCount − ExpectedCount. Inmutable una vez creada;
// ActualCount se escribe luego como StockAvailable autoritativo del producto.
type InventoryAudit struct {
	ID            string
	ProductID     string
	ExpectedCount int64
	ActualCount   int64
	Difference    int64
	AuditDate     time.Time
	UserID        string
	UserName      string
	Notes         *string
}
