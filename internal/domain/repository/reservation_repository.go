package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
)

// ReservationRepository puerto de persistencia para reservas.
// El filtro de vigencia se aplica en cada lectura (las reservas expiran
// pasivamente, sin transición explícita).
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.ProductReservation) error
	// Delete elimina la reserva; no es error si ya no existe.
	Delete(ctx context.Context, userID, id string) error
	// ListLive devuelve reservas no expiradas al instante now.
	// productID vacío = todas las del tenant.
	ListLive(ctx context.Context, userID, productID string, now time.Time) ([]*entity.ProductReservation, error)
}
