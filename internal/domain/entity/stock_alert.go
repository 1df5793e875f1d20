package entity

import "time"

// Tipos de alerta de stock. La identidad de una alerta es {ProductID, Type},
// no el instante de evaluación.
const (
	AlertTypeMinStock   = "MIN_STOCK"
	AlertTypeMaxStock   = "MAX_STOCK"
	AlertTypeOutOfStock = "OUT_OF_STOCK"
)

// StockAlert es una señal derivada, recalculada en cada evaluación a partir
// del producto con disponibilidad derivada. No se persiste como tal; lo único
// persistente es el reconocimiento (AlertAck).
type StockAlert struct {
	ProductID    string
	ProductName  string
	Type         string // MIN_STOCK, MAX_STOCK, OUT_OF_STOCK
	CurrentStock int64
	Threshold    int64
	Message      string
	Acknowledged bool
}

// AlertAck registra que el usuario reconoció una alerta {ProductID, Type}.
// Es pegajoso: suprime la alerta hasta que la condición salga de rango
// (lo que elimina el ack) y vuelva a dispararse.
type AlertAck struct {
	UserID         string
	ProductID      string
	AlertType      string
	AcknowledgedAt time.Time
}
