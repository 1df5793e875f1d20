package postgres

import (
	"context"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

var _ repository.AlertAckRepository = (*AlertAckRepo)(nil)

// AlertAckRepo implementación de AlertAckRepository sobre PostgreSQL.
// La identidad es la PK compuesta (user_id, product_id, alert_type).
type AlertAckRepo struct {
	q Querier
}

// NewAlertAckRepository construye el adaptador de reconocimientos. Pasar pool o tx (Querier).
func NewAlertAckRepository(q Querier) *AlertAckRepo {
	return &AlertAckRepo{q: q}
}

// Upsert inserta o refresca el reconocimiento.
func (r *AlertAckRepo) Upsert(ctx context.Context, ack *entity.AlertAck) error {
	query := `
		INSERT INTO alert_acks (user_id, product_id, alert_type, acknowledged_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id, alert_type)
		DO UPDATE SET acknowledged_at = EXCLUDED.acknowledged_at`
	_, err := r.q.Exec(ctx, query, ack.UserID, ack.ProductID, ack.AlertType, ack.AcknowledgedAt)
	if err != nil {
		return wrapStoreErr("upsert alert ack", err)
	}
	return nil
}

// ListByUser devuelve todos los reconocimientos del tenant.
func (r *AlertAckRepo) ListByUser(ctx context.Context, userID string) ([]*entity.AlertAck, error) {
	query := `
		SELECT user_id, product_id, alert_type, acknowledged_at
		FROM alert_acks WHERE user_id = $1`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapStoreErr("list alert acks", err)
	}
	defer rows.Close()

	var list []*entity.AlertAck
	for rows.Next() {
		var a entity.AlertAck
		if err := rows.Scan(&a.UserID, &a.ProductID, &a.AlertType, &a.AcknowledgedAt); err != nil {
			return nil, wrapStoreErr("scan alert ack", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete limpia el reconocimiento; no es error si no existe.
func (r *AlertAckRepo) Delete(ctx context.Context, userID, productID, alertType string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM alert_acks WHERE user_id = $1 AND product_id = $2 AND alert_type = $3`,
		userID, productID, alertType)
	if err != nil {
		return wrapStoreErr("delete alert ack", err)
	}
	return nil
}
