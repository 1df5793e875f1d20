package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, user_id, customer_id, subtotal, tax, discount, total,
	payment_method, status, stock_applied, notes, created_at, updated_at`

// SaleRepo implementación de SaleRepository sobre PostgreSQL. El encabezado va
// en sales y las líneas en sale_items; stock_applied es la guardia persistida
// contra el doble débito del cierre.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste el encabezado y las líneas de la venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.UserID, s.CustomerID, s.Subtotal, s.Tax, s.Discount, s.Total,
		s.PaymentMethod, s.Status, s.StockApplied, s.Notes, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapStoreErr("insert sale", err)
	}
	for i, it := range s.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (sale_id, position, product_id, quantity, unit_price, discount, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.ID, i, it.ProductID, it.Quantity, it.UnitPrice, it.Discount, it.Total,
		)
		if err != nil {
			return wrapStoreErr("insert sale item", err)
		}
	}
	return nil
}

// GetByID obtiene la venta con sus líneas. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, userID, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 AND user_id = $2`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id, userID).Scan(
		&s.ID, &s.UserID, &s.CustomerID, &s.Subtotal, &s.Tax, &s.Discount, &s.Total,
		&s.PaymentMethod, &s.Status, &s.StockApplied, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStoreErr("get sale", err)
	}
	if s.Items, err = r.loadItems(ctx, s.ID); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByUser lista ventas del tenant, más recientes primero; status vacío = todas.
func (r *SaleRepo) ListByUser(ctx context.Context, userID string, status string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, userID, status, limit, offset)
	if err != nil {
		return nil, wrapStoreErr("list sales", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		err := rows.Scan(
			&s.ID, &s.UserID, &s.CustomerID, &s.Subtotal, &s.Tax, &s.Discount, &s.Total,
			&s.PaymentMethod, &s.Status, &s.StockApplied, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, wrapStoreErr("scan sale", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		if s.Items, err = r.loadItems(ctx, s.ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// UpdateStatus fija el estado sin tocar stock_applied (transiciones sin efecto
// sobre el libro).
func (r *SaleRepo) UpdateStatus(ctx context.Context, userID, id, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE sales SET status = $3, updated_at = now() WHERE id = $1 AND user_id = $2`,
		id, userID, status)
	if err != nil {
		return wrapStoreErr("update sale status", err)
	}
	return nil
}

// MarkStockApplied fija status y stock_applied=true solo si stock_applied era
// false. RowsAffected() == 0 significa que otro intento ya ganó: el caller no
// debe volver a debitar.
func (r *SaleRepo) MarkStockApplied(ctx context.Context, userID, id, status string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE sales SET status = $3, stock_applied = true, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND NOT stock_applied`,
		id, userID, status)
	if err != nil {
		return false, wrapStoreErr("mark stock applied", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// MarkStockReturned fija status y stock_applied=false solo si stock_applied
// era true (devolución).
func (r *SaleRepo) MarkStockReturned(ctx context.Context, userID, id, status string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE sales SET status = $3, stock_applied = false, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND stock_applied`,
		id, userID, status)
	if err != nil {
		return false, wrapStoreErr("mark stock returned", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina la venta y sus líneas (solo se invoca sobre ventas PENDIENTE).
func (r *SaleRepo) Delete(ctx context.Context, userID, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, id); err != nil {
		return wrapStoreErr("delete sale items", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1 AND user_id = $2`, id, userID); err != nil {
		return wrapStoreErr("delete sale", err)
	}
	return nil
}

// CompletedLines devuelve el historial de líneas de ventas COMPLETADA desde la
// fecha dada, para los motores de pronóstico.
func (r *SaleRepo) CompletedLines(ctx context.Context, userID string, from time.Time) ([]repository.SaleLine, error) {
	query := `
		SELECT i.product_id, s.created_at, i.quantity
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE s.user_id = $1 AND s.status = $2 AND s.created_at >= $3
		ORDER BY s.created_at`
	rows, err := r.q.Query(ctx, query, userID, entity.SaleStatusCompletada, from)
	if err != nil {
		return nil, wrapStoreErr("completed sale lines", err)
	}
	defer rows.Close()

	var lines []repository.SaleLine
	for rows.Next() {
		var l repository.SaleLine
		if err := rows.Scan(&l.ProductID, &l.Date, &l.Quantity); err != nil {
			return nil, wrapStoreErr("scan sale line", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *SaleRepo) loadItems(ctx context.Context, saleID string) ([]entity.SaleItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT product_id, quantity, unit_price, discount, total
		FROM sale_items WHERE sale_id = $1 ORDER BY position`, saleID)
	if err != nil {
		return nil, wrapStoreErr("load sale items", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ProductID, &it.Quantity, &it.UnitPrice, &it.Discount, &it.Total); err != nil {
			return nil, wrapStoreErr("scan sale item", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
