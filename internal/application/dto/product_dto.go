package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto de catálogo.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	InitialStock   int64           `json:"initial_stock"`
	MinStock       *int64          `json:"min_stock"`
	MaxStock       *int64          `json:"max_stock"`
	NotifyLowStock bool            `json:"notify_low_stock"`
}

// UpdateProductRequest entrada para actualizar atributos de catálogo.
// Los saldos de stock no se tocan por aquí (se manejan vía movimientos).
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Brand          *string          `json:"brand"`
	UnitPrice      *decimal.Decimal `json:"unit_price"`
	MinStock       *int64           `json:"min_stock"`
	MaxStock       *int64           `json:"max_stock"`
	NotifyLowStock *bool            `json:"notify_low_stock"`
}

// ProductResponse salida de un producto con disponibilidad derivada.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int64           `json:"quantity"`
	StockAvailable int64           `json:"stock_available"`
	ReservedStock  int64           `json:"reserved_stock"`
	MinStock       *int64          `json:"min_stock,omitempty"`
	MaxStock       *int64          `json:"max_stock,omitempty"`
	LastAuditDate  *time.Time      `json:"last_audit_date,omitempty"`
	LastAuditCount *int64          `json:"last_audit_count,omitempty"`
	NotifyLowStock bool            `json:"notify_low_stock"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
