package entity

import "time"

// Tipos de movimiento de stock (value object conceptual).
const (
	MovementTypeEntrada       = "ENTRADA"
	MovementTypeSalida        = "SALIDA"
	MovementTypeAjuste        = "AJUSTE"
	MovementTypeMerma         = "MERMA"
	MovementTypeTransferencia = "TRANSFERENCIA"
)

// StockMovement es una entrada inmutable del libro de movimientos.
// El signo de Amount lo determina el tipo: ENTRADA/AJUSTE positivos,
// SALIDA/MERMA negativos, TRANSFERENCIA lleva el par explícito (−salida, +entrada).
// Nunca se actualiza ni se borra: es la pista de auditoría.
type StockMovement struct {
	ID          string
	ProductID   string
	Type        string // ENTRADA, SALIDA, AJUSTE, MERMA, TRANSFERENCIA
	Amount      int64  // con signo, ya normalizado por tipo
	Reason      string
	UserID      string
	UserName    string
	ReferenceID *string // venta o transferencia que lo originó
	Location    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsValidMovementType indica si el tipo pertenece a la taxonomía del libro.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeEntrada, MovementTypeSalida, MovementTypeAjuste,
		MovementTypeMerma, MovementTypeTransferencia:
		return true
	}
	return false
}
