package postgres

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, product_id, type, amount, reason, user_id, user_name,
	reference_id, location, created_at, updated_at`

// MovementRepo implementación del libro de movimientos sobre PostgreSQL.
// Solo INSERT y SELECT: el libro nunca se actualiza ni se borra.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create agrega una entrada al libro.
func (r *MovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductID, m.Type, m.Amount, m.Reason, m.UserID, m.UserName,
		m.ReferenceID, m.Location, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return wrapStoreErr("insert movement", err)
	}
	return nil
}

// ListByUser devuelve movimientos del tenant, más recientes primero,
// con filtros opcionales de producto y rango de fechas.
func (r *MovementRepo) ListByUser(ctx context.Context, userID string, q repository.MovementQuery) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE user_id = $1`
	args := []any{userID}
	if q.ProductID != "" {
		args = append(args, q.ProductID)
		query += " AND product_id = $" + strconv.Itoa(len(args))
	}
	if q.From != nil {
		args = append(args, *q.From)
		query += " AND created_at >= $" + strconv.Itoa(len(args))
	}
	if q.To != nil {
		args = append(args, *q.To)
		query += " AND created_at <= $" + strconv.Itoa(len(args))
	}
	args = append(args, q.Limit)
	query += " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, q.Offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStoreErr("list movements", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// ListByReference devuelve los movimientos ligados a una venta o transferencia.
func (r *MovementRepo) ListByReference(ctx context.Context, userID, referenceID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE user_id = $1 AND reference_id = $2
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, userID, referenceID)
	if err != nil {
		return nil, wrapStoreErr("list movements by reference", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

func collectMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.Amount, &m.Reason, &m.UserID, &m.UserName,
			&m.ReferenceID, &m.Location, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, wrapStoreErr("scan movement", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
