package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

// ReservationUseCase administra retenciones temporales de stock. No toca el
// libro ni el saldo almacenado: la reserva solo descuenta en la proyección de
// disponibilidad. Reservar no valida stock disponible (la proyección acota en
// cero; rechazar aquí igual correría contra ventas concurrentes).
type ReservationUseCase struct {
	resRepo     repository.ReservationRepository
	productRepo repository.ProductRepository
}

// NewReservationUseCase construye el caso de uso.
func NewReservationUseCase(
	resRepo repository.ReservationRepository,
	productRepo repository.ProductRepository,
) *ReservationUseCase {
	return &ReservationUseCase{resRepo: resRepo, productRepo: productRepo}
}

// Reserve crea una reserva con cantidad positiva contra un producto existente.
func (uc *ReservationUseCase) Reserve(ctx context.Context, actor domain.Actor, in dto.ReserveRequest) (*dto.ReservationResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	if in.ProductID == "" || in.OrderID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ExpiresAt != nil && !in.ExpiresAt.After(time.Now()) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, actor.UserID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	res := &entity.ProductReservation{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		OrderID:      in.OrderID,
		CustomerName: in.CustomerName,
		ExpiresAt:    in.ExpiresAt,
		UserID:       actor.UserID,
		UserName:     actor.UserName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.resRepo.Create(ctx, res); err != nil {
		return nil, err
	}
	return toReservationResponse(res), nil
}

// Cancel elimina la reserva incondicionalmente; no-op si ya no existe.
func (uc *ReservationUseCase) Cancel(ctx context.Context, actor domain.Actor, reservationID string) error {
	if !actor.Valid() {
		return domain.ErrUnauthenticated
	}
	if reservationID == "" {
		return domain.ErrInvalidInput
	}
	return uc.resRepo.Delete(ctx, actor.UserID, reservationID)
}

// ListLive devuelve las reservas vigentes al momento de la llamada. El filtro
// de expiración se aplica en cada lectura, nunca solo en escritura.
func (uc *ReservationUseCase) ListLive(ctx context.Context, actor domain.Actor, productID string) ([]dto.ReservationResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	list, err := uc.resRepo.ListLive(ctx, actor.UserID, productID, time.Now())
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toReservationResponse(r))
	}
	return out, nil
}

func toReservationResponse(r *entity.ProductReservation) *dto.ReservationResponse {
	return &dto.ReservationResponse{
		ID:           r.ID,
		ProductID:    r.ProductID,
		Quantity:     r.Quantity,
		OrderID:      r.OrderID,
		CustomerName: r.CustomerName,
		ExpiresAt:    r.ExpiresAt,
		CreatedAt:    r.CreatedAt,
	}
}
