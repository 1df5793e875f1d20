package memory

import (
	"context"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

var _ repository.AlertAckRepository = (*AlertAckRepo)(nil)

// AlertAckRepo implementación en memoria de AlertAckRepository.
type AlertAckRepo struct {
	s *Store
}

func (r *AlertAckRepo) Upsert(_ context.Context, ack *entity.AlertAck) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *ack
	r.s.acks[ackKey(ack.UserID, ack.ProductID, ack.AlertType)] = &cp
	return nil
}

func (r *AlertAckRepo) ListByUser(_ context.Context, userID string) ([]*entity.AlertAck, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.AlertAck
	for _, a := range r.s.acks {
		if a.UserID == userID {
			cp := *a
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *AlertAckRepo) Delete(_ context.Context, userID, productID, alertType string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.acks, ackKey(userID, productID, alertType))
	return nil
}
