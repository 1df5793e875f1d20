package dto

import (
	"github.com/shopspring/decimal"
)

// DemandForecastDTO pronóstico de demanda de un producto.
type DemandForecastDTO struct {
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	AvgDailyDemand  decimal.Decimal `json:"avg_daily_demand"`
	PredictedDemand decimal.Decimal `json:"predicted_demand"`
	HorizonDays     int             `json:"horizon_days"`
	Confidence      decimal.Decimal `json:"confidence"`
	Risk            string          `json:"risk"`
	SampleSize      int             `json:"sample_size"`
}

// ReorderSuggestionDTO recomendación de reposición con severidad.
type ReorderSuggestionDTO struct {
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	CurrentStock      int64           `json:"current_stock"`
	SafetyStock       decimal.Decimal `json:"safety_stock"`
	OptimalStock      decimal.Decimal `json:"optimal_stock"`
	SuggestedOrderQty decimal.Decimal `json:"suggested_order_qty"`
	Severity          string          `json:"severity"`
	Priority          int             `json:"priority"`
}

// PatternReportDTO reporte agregado de stock muerto, sobrestock y estacionalidad.
type PatternReportDTO struct {
	DeadStock   []DeadStockDTO   `json:"dead_stock"`
	Overstock   []OverstockDTO   `json:"overstock"`
	Seasonality []SeasonalityDTO `json:"seasonality"`
}

// DeadStockDTO producto con stock sin ventas recientes.
type DeadStockDTO struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	CurrentStock  int64  `json:"current_stock"`
	DaysSinceSale int    `json:"days_since_sale"` // -1 si nunca se vendió
}

// OverstockDTO producto con cobertura excesiva.
type OverstockDTO struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	CurrentStock   int64           `json:"current_stock"`
	MonthlyDemand  decimal.Decimal `json:"monthly_demand"`
	CoverageMonths decimal.Decimal `json:"coverage_months"`
}

// SeasonalityDTO índice estacional por mes (1 = promedio).
type SeasonalityDTO struct {
	Month int             `json:"month"`
	Index decimal.Decimal `json:"index"`
}
