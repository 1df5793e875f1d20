package dto

import "time"

// ReconcileRequest entrada para una conciliación de conteo físico.
type ReconcileRequest struct {
	ProductID     string  `json:"product_id"`
	ExpectedCount int64   `json:"expected_count"`
	ActualCount   int64   `json:"actual_count"`
	Notes         *string `json:"notes"`
}

// AuditResponse salida de una conciliación.
type AuditResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ExpectedCount int64     `json:"expected_count"`
	ActualCount   int64     `json:"actual_count"`
	Difference    int64     `json:"difference"`
	AuditDate     time.Time `json:"audit_date"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Notes         *string   `json:"notes,omitempty"`
}
