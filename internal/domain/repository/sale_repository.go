package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
)

// SaleLine es un dato agregado de historial de ventas para los motores de
// análisis (solo ventas COMPLETADA).
type SaleLine struct {
	ProductID string
	Date      time.Time
	Quantity  int64
}

// SaleRepository puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, userID, id string) (*entity.Sale, error)
	ListByUser(ctx context.Context, userID string, status string, limit, offset int) ([]*entity.Sale, error)
	UpdateStatus(ctx context.Context, userID, id, status string) error
	// MarkStockApplied fija status y stock_applied=true de forma condicional
	// (solo si stock_applied=false). Devuelve false sin error cuando otro
	// intento ya aplicó el débito: el caller no debe volver a debitar.
	MarkStockApplied(ctx context.Context, userID, id, status string) (bool, error)
	// MarkStockReturned fija status y stock_applied=false de forma condicional
	// (solo si stock_applied=true), para la devolución.
	MarkStockReturned(ctx context.Context, userID, id, status string) (bool, error)
	Delete(ctx context.Context, userID, id string) error
	// CompletedLines devuelve el historial de líneas de ventas COMPLETADA
	// desde la fecha dada, para los motores de pronóstico.
	CompletedLines(ctx context.Context, userID string, from time.Time) ([]SaleLine, error)
}
