package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea de venta en la creación.
type SaleItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
}

// CreateSaleRequest entrada para crear una venta (nace PENDIENTE).
// Los totales se calculan aquí y no se recalculan en transiciones.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	Tax           decimal.Decimal   `json:"tax"`
	Discount      decimal.Decimal   `json:"discount"`
	PaymentMethod string            `json:"payment_method"`
	CustomerID    *string           `json:"customer_id"`
	Notes         string            `json:"notes"`
}

// UpdateSaleStatusRequest entrada para una transición de estado manual.
type UpdateSaleStatusRequest struct {
	Status string `json:"status"`
}

// SaleItemResponse una línea de venta en respuestas.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerID    *string            `json:"customer_id,omitempty"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Tax           decimal.Decimal    `json:"tax"`
	Discount      decimal.Decimal    `json:"discount"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
