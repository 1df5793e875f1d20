package dto

import "time"

// ReserveRequest entrada para crear una reserva temporal de stock.
type ReserveRequest struct {
	ProductID    string     `json:"product_id"`
	Quantity     int64      `json:"quantity"`
	OrderID      string     `json:"order_id"`
	CustomerName *string    `json:"customer_name"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

// ReservationResponse salida de una reserva.
type ReservationResponse struct {
	ID           string     `json:"id"`
	ProductID    string     `json:"product_id"`
	Quantity     int64      `json:"quantity"`
	OrderID      string     `json:"order_id"`
	CustomerName *string    `json:"customer_name,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
