package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las lecturas están acotadas al tenant (userID). Los saldos solo se
// tocan por ApplyStockDelta (vía libro) u OverrideStock (auditoría).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, userID, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto dentro de la transacción actual.
	GetForUpdate(ctx context.Context, userID, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// ApplyStockDelta suma delta al saldo vivo y lifetimeDelta al acumulado
	// histórico. No valida que el resultado sea no negativo.
	ApplyStockDelta(ctx context.Context, productID string, delta, lifetimeDelta int64) error
	// OverrideStock fija el saldo autoritativo tras una auditoría y estampa
	// last_audit_date/last_audit_count.
	OverrideStock(ctx context.Context, productID string, actualCount int64, auditDate time.Time) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Product, error)
	// SoftDelete marca el producto inactivo; el historial del libro lo sigue
	// referenciando.
	SoftDelete(ctx context.Context, userID, id string) error
}
