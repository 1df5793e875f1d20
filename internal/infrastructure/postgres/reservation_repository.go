package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implementación de ReservationRepository sobre PostgreSQL.
// Las reservas expiradas no se borran: se filtran en cada lectura.
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador de reservas. Pasar pool o tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

// Create persiste una reserva.
func (r *ReservationRepo) Create(ctx context.Context, res *entity.ProductReservation) error {
	query := `
		INSERT INTO product_reservations
			(id, product_id, quantity, order_id, customer_name, expires_at, user_id, user_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		res.ID, res.ProductID, res.Quantity, res.OrderID, res.CustomerName,
		res.ExpiresAt, res.UserID, res.UserName, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapStoreErr("insert reservation", err)
	}
	return nil
}

// Delete elimina la reserva; no es error si ya no existe.
func (r *ReservationRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM product_reservations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return wrapStoreErr("delete reservation", err)
	}
	return nil
}

// ListLive devuelve reservas no expiradas al instante now; productID vacío = todas.
func (r *ReservationRepo) ListLive(ctx context.Context, userID, productID string, now time.Time) ([]*entity.ProductReservation, error) {
	query := `
		SELECT id, product_id, quantity, order_id, customer_name, expires_at, user_id, user_name, created_at, updated_at
		FROM product_reservations
		WHERE user_id = $1 AND (expires_at IS NULL OR expires_at > $2)
		  AND ($3 = '' OR product_id = $3)
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, userID, now, productID)
	if err != nil {
		return nil, wrapStoreErr("list live reservations", err)
	}
	defer rows.Close()

	var list []*entity.ProductReservation
	for rows.Next() {
		var res entity.ProductReservation
		err := rows.Scan(
			&res.ID, &res.ProductID, &res.Quantity, &res.OrderID, &res.CustomerName,
			&res.ExpiresAt, &res.UserID, &res.UserName, &res.CreatedAt, &res.UpdatedAt,
		)
		if err != nil {
			return nil, wrapStoreErr("scan reservation", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}
