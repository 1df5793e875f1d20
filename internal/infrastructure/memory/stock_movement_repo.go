package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria del libro de movimientos.
// Solo append: nadie actualiza ni borra entradas.
type MovementRepo struct {
	s *Store
}

func (r *MovementRepo) Create(_ context.Context, movement *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements = append(r.s.movements, copyMovement(movement))
	return nil
}

func (r *MovementRepo) ListByUser(_ context.Context, userID string, q repository.MovementQuery) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.UserID != userID {
			continue
		}
		if q.ProductID != "" && m.ProductID != q.ProductID {
			continue
		}
		if q.From != nil && m.CreatedAt.Before(*q.From) {
			continue
		}
		if q.To != nil && m.CreatedAt.After(*q.To) {
			continue
		}
		list = append(list, copyMovement(m))
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return paginate(list, q.Limit, q.Offset), nil
}

func (r *MovementRepo) ListByReference(_ context.Context, userID, referenceID string) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.UserID == userID && m.ReferenceID != nil && *m.ReferenceID == referenceID {
			list = append(list, copyMovement(m))
		}
	}
	return list, nil
}
