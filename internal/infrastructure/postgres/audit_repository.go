package postgres

import (
	"context"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

var _ repository.InventoryAuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación de InventoryAuditRepository sobre PostgreSQL.
// Las auditorías son inmutables: solo INSERT y SELECT.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador de auditorías. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create persiste el registro de conciliación.
func (r *AuditRepo) Create(ctx context.Context, a *entity.InventoryAudit) error {
	query := `
		INSERT INTO inventory_audits
			(id, product_id, expected_count, actual_count, difference, audit_date, user_id, user_name, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.ProductID, a.ExpectedCount, a.ActualCount, a.Difference,
		a.AuditDate, a.UserID, a.UserName, a.Notes,
	)
	if err != nil {
		return wrapStoreErr("insert audit", err)
	}
	return nil
}

// ListByUser devuelve auditorías del tenant, más recientes primero;
// productID vacío = todas.
func (r *AuditRepo) ListByUser(ctx context.Context, userID, productID string, limit, offset int) ([]*entity.InventoryAudit, error) {
	query := `
		SELECT id, product_id, expected_count, actual_count, difference, audit_date, user_id, user_name, notes
		FROM inventory_audits
		WHERE user_id = $1 AND ($2 = '' OR product_id = $2)
		ORDER BY audit_date DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, userID, productID, limit, offset)
	if err != nil {
		return nil, wrapStoreErr("list audits", err)
	}
	defer rows.Close()

	var list []*entity.InventoryAudit
	for rows.Next() {
		var a entity.InventoryAudit
		err := rows.Scan(
			&a.ID, &a.ProductID, &a.ExpectedCount, &a.ActualCount, &a.Difference,
			&a.AuditDate, &a.UserID, &a.UserName, &a.Notes,
		)
		if err != nil {
			return nil, wrapStoreErr("scan audit", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
