package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implementación en memoria de ReservationRepository.
type ReservationRepo struct {
	s *Store
}

func (r *ReservationRepo) Create(_ context.Context, reservation *entity.ProductReservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reservations[reservation.ID] = copyReservation(reservation)
	return nil
}

func (r *ReservationRepo) Delete(_ context.Context, userID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res, ok := r.s.reservations[id]
	if !ok || res.UserID != userID {
		return nil
	}
	delete(r.s.reservations, id)
	return nil
}

func (r *ReservationRepo) ListLive(_ context.Context, userID, productID string, now time.Time) ([]*entity.ProductReservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.ProductReservation
	for _, res := range r.s.reservations {
		if res.UserID != userID || !res.IsLive(now) {
			continue
		}
		if productID != "" && res.ProductID != productID {
			continue
		}
		list = append(list, copyReservation(res))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}
