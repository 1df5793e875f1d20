package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación en memoria de SaleRepository.
type SaleRepo struct {
	s *Store
}

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sales[sale.ID] = copySale(sale)
	return nil
}

func (r *SaleRepo) GetByID(_ context.Context, userID, id string) (*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sale, ok := r.s.sales[id]
	if !ok || sale.UserID != userID {
		return nil, nil
	}
	return copySale(sale), nil
}

func (r *SaleRepo) ListByUser(_ context.Context, userID string, status string, limit, offset int) ([]*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Sale
	for _, sale := range r.s.sales {
		if sale.UserID != userID {
			continue
		}
		if status != "" && sale.Status != status {
			continue
		}
		list = append(list, copySale(sale))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return paginate(list, limit, offset), nil
}

func (r *SaleRepo) UpdateStatus(_ context.Context, userID, id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok || sale.UserID != userID {
		return nil
	}
	sale.Status = status
	sale.UpdatedAt = time.Now()
	return nil
}

func (r *SaleRepo) MarkStockApplied(_ context.Context, userID, id, status string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok || sale.UserID != userID {
		return false, nil
	}
	if sale.StockApplied {
		return false, nil
	}
	sale.Status = status
	sale.StockApplied = true
	sale.UpdatedAt = time.Now()
	return true, nil
}

func (r *SaleRepo) MarkStockReturned(_ context.Context, userID, id, status string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok || sale.UserID != userID {
		return false, nil
	}
	if !sale.StockApplied {
		return false, nil
	}
	sale.Status = status
	sale.StockApplied = false
	sale.UpdatedAt = time.Now()
	return true, nil
}

func (r *SaleRepo) Delete(_ context.Context, userID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok || sale.UserID != userID {
		return nil
	}
	delete(r.s.sales, id)
	return nil
}

func (r *SaleRepo) CompletedLines(_ context.Context, userID string, from time.Time) ([]repository.SaleLine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var lines []repository.SaleLine
	for _, sale := range r.s.sales {
		if sale.UserID != userID || sale.Status != entity.SaleStatusCompletada {
			continue
		}
		if sale.CreatedAt.Before(from) {
			continue
		}
		for _, it := range sale.Items {
			lines = append(lines, repository.SaleLine{
				ProductID: it.ProductID,
				Date:      sale.CreatedAt,
				Quantity:  it.Quantity,
			})
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Date.Before(lines[j].Date) })
	return lines, nil
}
