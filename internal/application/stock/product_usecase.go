package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
	domstock "github.com/jhoicas/Ventario-api/internal/domain/stock"
)

// ProductUseCase CRUD de catálogo. Toda lectura devuelve el producto con la
// proyección de disponibilidad aplicada (reservas vivas descontadas, piso en
// cero); los saldos almacenados solo cambian vía movimientos o auditoría.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	resRepo     repository.ReservationRepository
	ledger      *LedgerUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	resRepo repository.ReservationRepository,
	ledger *LedgerUseCase,
) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, resRepo: resRepo, ledger: ledger}
}

func validThresholds(minStock, maxStock *int64) bool {
	if minStock != nil && *minStock < 0 {
		return false
	}
	if maxStock != nil && *maxStock < 0 {
		return false
	}
	// min > max se rechaza en el borde; el evaluador de alertas igual tolera
	// datos degenerados preexistentes.
	if minStock != nil && maxStock != nil && *minStock > *maxStock {
		return false
	}
	return true
}

// Create da de alta un producto. El stock inicial, si viene, se registra como
// movimiento ENTRADA para que el libro sea la fuente de verdad desde el día cero.
func (uc *ProductUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	if in.Name == "" || in.UnitPrice.LessThan(decimal.Zero) || in.InitialStock < 0 || !validThresholds(in.MinStock, in.MaxStock) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		UserID:         actor.UserID,
		Name:           in.Name,
		Brand:          in.Brand,
		UnitPrice:      in.UnitPrice,
		MinStock:       in.MinStock,
		MaxStock:       in.MaxStock,
		NotifyLowStock: in.NotifyLowStock,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	if in.InitialStock > 0 {
		if _, err := uc.ledger.Record(ctx, actor, dto.RegisterMovementRequest{
			ProductID: product.ID,
			Type:      entity.MovementTypeEntrada,
			Amount:    in.InitialStock,
			Reason:    "stock inicial",
		}); err != nil {
			return nil, err
		}
		product.Quantity = in.InitialStock
		product.StockAvailable = in.InitialStock
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto con su disponibilidad derivada.
func (uc *ProductUseCase) GetByID(ctx context.Context, actor domain.Actor, id string) (*dto.ProductResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	product, err := uc.productRepo.GetByID(ctx, actor.UserID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	reservations, err := uc.resRepo.ListLive(ctx, actor.UserID, id, now)
	if err != nil {
		return nil, err
	}
	projected := domstock.WithStockInfo(*product, reservations, now)
	return toProductResponse(&projected), nil
}

// Update modifica atributos de catálogo y umbrales; nunca los saldos.
func (uc *ProductUseCase) Update(ctx context.Context, actor domain.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	product, err := uc.productRepo.GetByID(ctx, actor.UserID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.UnitPrice = *in.UnitPrice
	}
	if in.MinStock != nil {
		product.MinStock = in.MinStock
	}
	if in.MaxStock != nil {
		product.MaxStock = in.MaxStock
	}
	if !validThresholds(product.MinStock, product.MaxStock) {
		return nil, domain.ErrInvalidInput
	}
	if in.NotifyLowStock != nil {
		product.NotifyLowStock = *in.NotifyLowStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos del tenant con la proyección aplicada en lote,
// consistente con la forma unitaria.
func (uc *ProductUseCase) List(ctx context.Context, actor domain.Actor, page dto.PageRequest) (*dto.ProductListResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	page.DefaultPage()
	list, err := uc.productRepo.ListByUser(ctx, actor.UserID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	reservations, err := uc.resRepo.ListLive(ctx, actor.UserID, "", now)
	if err != nil {
		return nil, err
	}
	projected := domstock.WithStockInfoAll(list, reservations, now)

	items := make([]dto.ProductResponse, 0, len(projected))
	for _, p := range projected {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

// Delete marca el producto como inactivo. El historial del libro que lo
// referencia se conserva intacto.
func (uc *ProductUseCase) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.Valid() {
		return domain.ErrUnauthenticated
	}
	product, err := uc.productRepo.GetByID(ctx, actor.UserID, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.SoftDelete(ctx, actor.UserID, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Brand:          p.Brand,
		UnitPrice:      p.UnitPrice,
		Quantity:       p.Quantity,
		StockAvailable: p.StockAvailable,
		ReservedStock:  p.ReservedStock,
		MinStock:       p.MinStock,
		MaxStock:       p.MaxStock,
		LastAuditDate:  p.LastAuditDate,
		LastAuditCount: p.LastAuditCount,
		NotifyLowStock: p.NotifyLowStock,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
