package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento en el libro.
// El signo del monto se normaliza según el tipo antes de persistir.
type RegisterMovementRequest struct {
	ProductID   string  `json:"product_id"`
	Type        string  `json:"type"` // ENTRADA, SALIDA, AJUSTE, MERMA
	Amount      int64   `json:"amount"`
	Reason      string  `json:"reason"`
	ReferenceID *string `json:"reference_id"`
	Location    *string `json:"location"`
}

// TransferRequest entrada para una transferencia entre ubicaciones:
// dos movimientos TRANSFERENCIA que suman cero.
type TransferRequest struct {
	ProductID    string `json:"product_id"`
	Quantity     int64  `json:"quantity"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	Reason       string `json:"reason"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Reason      string    `json:"reason"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	ReferenceID *string   `json:"reference_id,omitempty"`
	Location    *string   `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListRequest filtros de consulta del libro.
type MovementListRequest struct {
	ProductID string     `query:"product_id"`
	From      *time.Time `query:"from"`
	To        *time.Time `query:"to"`
	PageRequest
}
