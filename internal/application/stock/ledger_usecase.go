package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
	domstock "github.com/jhoicas/Ventario-api/internal/domain/stock"
)

// LedgerUseCase registra movimientos en el libro (append-only) y mantiene el
// saldo almacenado del producto en la misma transacción. El libro no rechaza
// por saldo resultante: validar disponibilidad antes de incurrir una SALIDA
// es responsabilidad del caller (la disponibilidad derivada se acota en
// lectura).
type LedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo}
}

// Record normaliza el signo del monto según el tipo, persiste el movimiento y
// aplica el delta al saldo vivo del producto. ENTRADA además suma al acumulado
// histórico. El producto debe existir en el tenant del actor.
func (uc *LedgerUseCase) Record(ctx context.Context, actor domain.Actor, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	if in.ProductID == "" || in.Amount == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidMovementType(in.Type) || in.Type == entity.MovementTypeTransferencia {
		// Las transferencias van por Transfer: necesitan sus dos patas.
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, actor.UserID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	amount, err := domstock.NormalizeAmount(in.Type, in.Amount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		Type:        in.Type,
		Amount:      amount,
		Reason:      in.Reason,
		UserID:      actor.UserID,
		UserName:    actor.UserName,
		ReferenceID: in.ReferenceID,
		Location:    in.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var lifetimeDelta int64
	if in.Type == entity.MovementTypeEntrada {
		lifetimeDelta = amount
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		return productRepo.ApplyStockDelta(ctx, in.ProductID, amount, lifetimeDelta)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// Transfer registra las dos patas de una transferencia entre ubicaciones en
// una sola transacción: −qty en origen y +qty en destino, con la misma
// referencia. La suma neta es cero y el saldo almacenado no cambia.
func (uc *LedgerUseCase) Transfer(ctx context.Context, actor domain.Actor, in dto.TransferRequest) ([]dto.MovementResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	if in.ProductID == "" || in.Quantity <= 0 || in.FromLocation == "" || in.ToLocation == "" || in.FromLocation == in.ToLocation {
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
	refID := uuid.New().String()
	from, to := in.FromLocation, in.ToLocation
	outLeg := &entity.StockMovement{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		Type:        entity.MovementTypeTransferencia,
		Amount:      -in.Quantity,
		Reason:      in.Reason,
		UserID:      actor.UserID,
		UserName:    actor.UserName,
		ReferenceID: &refID,
		Location:    &from,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	inLeg := &entity.StockMovement{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		Type:        entity.MovementTypeTransferencia,
		Amount:      in.Quantity,
		Reason:      in.Reason,
		UserID:      actor.UserID,
		UserName:    actor.UserName,
		ReferenceID: &refID,
		Location:    &to,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		if err := movRepo.Create(ctx, outLeg); err != nil {
			return err
		}
		return movRepo.Create(ctx, inLeg)
	})
	if err != nil {
		return nil, err
	}
	return []dto.MovementResponse{*toMovementResponse(outLeg), *toMovementResponse(inLeg)}, nil
}

// Query lista movimientos del tenant, más recientes primero. Cada llamada
// relee el estado actual (la secuencia no es reanudable).
func (uc *LedgerUseCase) Query(ctx context.Context, actor domain.Actor, in dto.MovementListRequest) ([]dto.MovementResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	in.DefaultPage()
	list, err := uc.movRepo.ListByUser(ctx, actor.UserID, repository.MovementQuery{
		ProductID: in.ProductID,
		From:      in.From,
		To:        in.To,
		Limit:     in.Limit,
		Offset:    in.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Type:        m.Type,
		Amount:      m.Amount,
		Reason:      m.Reason,
		UserID:      m.UserID,
		UserName:    m.UserName,
		ReferenceID: m.ReferenceID,
		Location:    m.Location,
		CreatedAt:   m.CreatedAt,
	}
}
