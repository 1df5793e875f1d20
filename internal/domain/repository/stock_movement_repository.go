package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
)

// MovementQuery filtros de consulta del libro de movimientos.
type MovementQuery struct {
	ProductID string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// StockMovementRepository puerto del libro de movimientos: solo append y
// lectura. No existe operación de actualización ni borrado.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByUser devuelve movimientos del tenant, más recientes primero.
	ListByUser(ctx context.Context, userID string, q MovementQuery) ([]*entity.StockMovement, error)
	// ListByReference devuelve los movimientos ligados a una venta o transferencia.
	ListByReference(ctx context.Context, userID, referenceID string) ([]*entity.StockMovement, error)
}
