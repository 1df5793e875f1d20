package entity

import "time"

// ProductReservation es una retención temporal contra el stock de un producto.
// Reduce la disponibilidad derivada sin tocar el libro de movimientos.
// Una reserva está viva si ExpiresAt es nil o futuro; las expiradas se
// excluyen en cada lectura sin necesidad de borrado explícito.
type ProductReservation struct {
	ID           string
	ProductID    string
	Quantity     int64 // siempre > 0
	OrderID      string
	CustomerName *string
	ExpiresAt    *time.Time
	UserID       string
	UserName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLive indica si la reserva sigue vigente en el instante dado.
func (r *ProductReservation) IsLive(now time.Time) bool {
	return r.ExpiresAt == nil || r.ExpiresAt.After(now)
}
