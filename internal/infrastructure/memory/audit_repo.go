package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

var _ repository.InventoryAuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación en memoria de InventoryAuditRepository.
type AuditRepo struct {
	s *Store
}

func (r *AuditRepo) Create(_ context.Context, audit *entity.InventoryAudit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.audits = append(r.s.audits, copyAudit(audit))
	return nil
}

func (r *AuditRepo) ListByUser(_ context.Context, userID, productID string, limit, offset int) ([]*entity.InventoryAudit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.InventoryAudit
	for _, a := range r.s.audits {
		if a.UserID != userID {
			continue
		}
		if productID != "" && a.ProductID != productID {
			continue
		}
		list = append(list, copyAudit(a))
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].AuditDate.After(list[j].AuditDate) })
	return paginate(list, limit, offset), nil
}
