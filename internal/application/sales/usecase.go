package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

// UseCase orquesta el ciclo de vida de una venta por su máquina de estados.
// Entrar a COMPLETADA es el único evento que debita el libro: una SALIDA por
// línea, exactamente una vez por venta aunque la transición se reintente
// (guardia persistida stock_applied con actualización condicional).
type UseCase struct {
	txRunner    SaleTxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner SaleTxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, saleRepo: saleRepo, productRepo: productRepo}
}

// Create crea la venta en PENDIENTE. Los totales se calculan aquí desde las
// líneas y no se recalculan en transiciones posteriores.
func (uc *UseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	if len(in.Items) == 0 || in.PaymentMethod == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tax.LessThan(decimal.Zero) || in.Discount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 || it.UnitPrice.LessThan(decimal.Zero) || it.Discount.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, actor.UserID, it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.SaleItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  it.Discount,
		})
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		UserID:        actor.UserID,
		CustomerID:    in.CustomerID,
		Items:         items,
		Tax:           in.Tax,
		Discount:      in.Discount,
		PaymentMethod: in.PaymentMethod,
		Status:        entity.SaleStatusPendiente,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	sale.ComputeTotals()

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta del tenant.
func (uc *UseCase) GetByID(ctx context.Context, actor domain.Actor, id string) (*dto.SaleResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	sale, err := uc.saleRepo.GetByID(ctx, actor.UserID, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List lista ventas del tenant, opcionalmente filtradas por estado.
func (uc *UseCase) List(ctx context.Context, actor domain.Actor, status string, page dto.PageRequest) (*dto.SaleListResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	page.DefaultPage()
	list, err := uc.saleRepo.ListByUser(ctx, actor.UserID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

// UpdateStatus aplica una transición manual de estado. Reintentar COMPLETADA
// sobre una venta ya completada es un no-op exitoso sin débitos nuevos;
// cualquier otra transición fuera de la máquina falla con ErrInvalidTransition.
func (uc *UseCase) UpdateStatus(ctx context.Context, actor domain.Actor, id, newStatus string) (*dto.SaleResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	sale, err := uc.saleRepo.GetByID(ctx, actor.UserID, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	if newStatus == sale.Status {
		if newStatus == entity.SaleStatusCompletada {
			// Reintento del cierre: el débito ya ocurrió, no duplicar.
			return toSaleResponse(sale), nil
		}
		return nil, domain.ErrInvalidTransition
	}
	if !entity.IsValidSaleTransition(sale.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, sale.Status, newStatus)
	}

	switch newStatus {
	case entity.SaleStatusCompletada:
		err = uc.complete(ctx, actor, sale)
	case entity.SaleStatusDevuelta:
		err = uc.returnSale(ctx, actor, sale)
	default:
		err = uc.saleRepo.UpdateStatus(ctx, actor.UserID, id, newStatus)
	}
	if err != nil {
		return nil, err
	}

	sale, err = uc.saleRepo.GetByID(ctx, actor.UserID, id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// complete cierra la venta: fija COMPLETADA y stock_applied=true de forma
// condicional y, solo si esta llamada ganó la condición, debita una SALIDA por
// línea y descuenta los saldos. Todo o nada dentro de la transacción.
func (uc *UseCase) complete(ctx context.Context, actor domain.Actor, sale *entity.Sale) error {
	return uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		applied, err := saleRepo.MarkStockApplied(ctx, actor.UserID, sale.ID, entity.SaleStatusCompletada)
		if err != nil {
			return err
		}
		if !applied {
			// Otro intento ya aplicó el débito.
			return nil
		}
		now := time.Now()
		for _, item := range sale.Items {
			if _, err := productRepo.GetForUpdate(ctx, actor.UserID, item.ProductID); err != nil {
				return err
			}
			refID := sale.ID
			mov := &entity.StockMovement{
				ID:          uuid.New().String(),
				ProductID:   item.ProductID,
				Type:        entity.MovementTypeSalida,
				Amount:      -item.Quantity,
				Reason:      "venta completada",
				UserID:      actor.UserID,
				UserName:    actor.UserName,
				ReferenceID: &refID,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
			if err := productRepo.ApplyStockDelta(ctx, item.ProductID, -item.Quantity, 0); err != nil {
				return err
			}
		}
		return nil
	})
}

// returnSale procesa la devolución: reingresa cada línea con una ENTRADA
// referenciada a la venta. El acumulado histórico no se incrementa: esas
// unidades ya se contaron en su entrada original.
func (uc *UseCase) returnSale(ctx context.Context, actor domain.Actor, sale *entity.Sale) error {
	return uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		returned, err := saleRepo.MarkStockReturned(ctx, actor.UserID, sale.ID, entity.SaleStatusDevuelta)
		if err != nil {
			return err
		}
		if !returned {
			return nil
		}
		now := time.Now()
		for _, item := range sale.Items {
			refID := sale.ID
			mov := &entity.StockMovement{
				ID:          uuid.New().String(),
				ProductID:   item.ProductID,
				Type:        entity.MovementTypeEntrada,
				Amount:      item.Quantity,
				Reason:      "devolución de venta",
				UserID:      actor.UserID,
				UserName:    actor.UserName,
				ReferenceID: &refID,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
			if err := productRepo.ApplyStockDelta(ctx, item.ProductID, item.Quantity, 0); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete elimina la venta solo mientras está PENDIENTE (antes de cualquier
// efecto sobre el libro); cualquier otro estado rechaza con
// ErrInvalidTransition.
func (uc *UseCase) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.Valid() {
		return domain.ErrUnauthenticated
	}
	sale, err := uc.saleRepo.GetByID(ctx, actor.UserID, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if sale.Status != entity.SaleStatusPendiente {
		return fmt.Errorf("%w: no se puede eliminar una venta %s", domain.ErrInvalidTransition, sale.Status)
	}
	return uc.saleRepo.Delete(ctx, actor.UserID, id)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  it.Discount,
			Total:     it.Total,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		Items:         items,
		Subtotal:      s.Subtotal,
		Tax:           s.Tax,
		Discount:      s.Discount,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
