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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, user_id, name, brand, unit_price, quantity, stock_available,
	min_stock, max_stock, last_audit_date, last_audit_count, notify_low_stock, active,
	created_at, updated_at`

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.UserID, p.Name, p.Brand, p.UnitPrice, p.Quantity, p.StockAvailable,
		p.MinStock, p.MaxStock, p.LastAuditDate, p.LastAuditCount, p.NotifyLowStock, p.Active,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapStoreErr("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto activo del tenant. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, userID, id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1 AND user_id = $2 AND active`
	return r.scanOne(r.q.QueryRow(ctx, query, id, userID), "get product")
}

// GetForUpdate obtiene el producto y bloquea la fila dentro de la transacción
// actual (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(ctx context.Context, userID, id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1 AND user_id = $2 AND active
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id, userID), "get product for update")
}

// Update actualiza los campos de catálogo. Los saldos no se tocan aquí:
// solo ApplyStockDelta y OverrideStock escriben stock_available.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $3, brand = $4, unit_price = $5, min_stock = $6, max_stock = $7,
		    notify_low_stock = $8, updated_at = $9
		WHERE id = $1 AND user_id = $2`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.UserID, p.Name, p.Brand, p.UnitPrice, p.MinStock, p.MaxStock,
		p.NotifyLowStock, p.UpdatedAt,
	)
	if err != nil {
		return wrapStoreErr("update product", err)
	}
	return nil
}

// ApplyStockDelta suma delta al saldo vivo y lifetimeDelta al acumulado
// histórico. No valida el resultado: la disponibilidad derivada ya lo acota a
// cero en lectura.
func (r *ProductRepo) ApplyStockDelta(ctx context.Context, productID string, delta, lifetimeDelta int64) error {
	query := `
		UPDATE products
		SET stock_available = stock_available + $2, quantity = quantity + $3, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, productID, delta, lifetimeDelta)
	if err != nil {
		return wrapStoreErr("apply stock delta", err)
	}
	return nil
}

// OverrideStock fija el saldo autoritativo tras una auditoría.
func (r *ProductRepo) OverrideStock(ctx context.Context, productID string, actualCount int64, auditDate time.Time) error {
	query := `
		UPDATE products
		SET stock_available = $2, last_audit_count = $2, last_audit_date = $3, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, productID, actualCount, auditDate)
	if err != nil {
		return wrapStoreErr("override stock", err)
	}
	return nil
}

// ListByUser lista productos activos del tenant con paginación.
func (r *ProductRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE user_id = $1 AND active
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, wrapStoreErr("list products", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, wrapStoreErr("scan product", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SoftDelete marca el producto inactivo; el historial del libro lo sigue
// referenciando.
func (r *ProductRepo) SoftDelete(ctx context.Context, userID, id string) error {
	query := `UPDATE products SET active = false, updated_at = now() WHERE id = $1 AND user_id = $2`
	_, err := r.q.Exec(ctx, query, id, userID)
	if err != nil {
		return wrapStoreErr("soft delete product", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStoreErr(op, err)
	}
	return &p, nil
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Brand, &p.UnitPrice, &p.Quantity, &p.StockAvailable,
		&p.MinStock, &p.MaxStock, &p.LastAuditDate, &p.LastAuditCount, &p.NotifyLowStock, &p.Active,
		&p.CreatedAt, &p.UpdatedAt,
	)
}
