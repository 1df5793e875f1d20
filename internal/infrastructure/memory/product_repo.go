package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s *Store
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[product.ID] = copyProduct(product)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, userID, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok || p.UserID != userID || !p.Active {
		return nil, nil
	}
	return copyProduct(p), nil
}

// GetForUpdate no bloquea filas: el lock global del almacén serializa todo.
func (r *ProductRepo) GetForUpdate(ctx context.Context, userID, id string) (*entity.Product, error) {
	return r.GetByID(ctx, userID, id)
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return nil
	}
	r.s.products[product.ID] = copyProduct(product)
	return nil
}

func (r *ProductRepo) ApplyStockDelta(_ context.Context, productID string, delta, lifetimeDelta int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok {
		return nil
	}
	p.StockAvailable += delta
	p.Quantity += lifetimeDelta
	p.UpdatedAt = time.Now()
	return nil
}

func (r *ProductRepo) OverrideStock(_ context.Context, productID string, actualCount int64, auditDate time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok {
		return nil
	}
	p.StockAvailable = actualCount
	count := actualCount
	date := auditDate
	p.LastAuditCount = &count
	p.LastAuditDate = &date
	p.UpdatedAt = time.Now()
	return nil
}

func (r *ProductRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.UserID == userID && p.Active {
			list = append(list, copyProduct(p))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return paginate(list, limit, offset), nil
}

func (r *ProductRepo) SoftDelete(_ context.Context, userID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok || p.UserID != userID {
		return nil
	}
	p.Active = false
	p.UpdatedAt = time.Now()
	return nil
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
