package forecast

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de riesgo/severidad para los análisis de stock.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeverityLow      = "LOW"
)

// SalePoint es un dato puntual del historial de ventas de un producto.
type SalePoint struct {
	Date     time.Time
	Quantity int64
}

// DemandForecast es la estimación de demanda de un producto sobre un horizonte.
// Confidence va de 0 a 1 y escala con el tamaño de la muestra.
type DemandForecast struct {
	ProductID       string
	AvgDailyDemand  decimal.Decimal
	PredictedDemand decimal.Decimal
	HorizonDays     int
	Confidence      decimal.Decimal
	Risk            string // CRITICAL, HIGH, MEDIUM, LOW según stock/demanda
	SampleSize      int
}

// PredictDemand estima la demanda del horizonte como promedio diario histórico
// × días. Con menos de 2 puntos degrada a un pronóstico de confianza cero en
// lugar de dividir por cero.
func PredictDemand(productID string, history []SalePoint, currentStock int64, horizonDays int) DemandForecast {
	f := DemandForecast{
		ProductID:       productID,
		HorizonDays:     horizonDays,
		AvgDailyDemand:  decimal.Zero,
		PredictedDemand: decimal.Zero,
		Confidence:      decimal.Zero,
		Risk:            SeverityLow,
		SampleSize:      len(history),
	}
	if len(history) < 2 || horizonDays <= 0 {
		return f
	}

	first, last := history[0].Date, history[0].Date
	var total int64
	for _, p := range history {
		total += p.Quantity
		if p.Date.Before(first) {
			first = p.Date
		}
		if p.Date.After(last) {
			last = p.Date
		}
	}
	spanDays := int64(last.Sub(first).Hours()/24) + 1
	if spanDays < 1 {
		spanDays = 1
	}

	f.AvgDailyDemand = decimal.NewFromInt(total).Div(decimal.NewFromInt(spanDays))
	f.PredictedDemand = f.AvgDailyDemand.Mul(decimal.NewFromInt(int64(horizonDays))).Round(2)

	// Confianza n/(n+10): crece con la muestra, satura hacia 1.
	n := decimal.NewFromInt(int64(len(history)))
	f.Confidence = n.Div(n.Add(decimal.NewFromInt(10))).Round(2)

	f.Risk = demandRisk(currentStock, f.PredictedDemand)
	return f
}

// demandRisk clasifica por la razón stock actual / demanda prevista.
func demandRisk(currentStock int64, predicted decimal.Decimal) string {
	if predicted.LessThanOrEqual(decimal.Zero) {
		return SeverityLow
	}
	ratio := decimal.NewFromInt(currentStock).Div(predicted)
	switch {
	case ratio.LessThanOrEqual(decimal.Zero):
		return SeverityCritical
	case ratio.LessThan(decimal.NewFromFloat(0.5)):
		return SeverityHigh
	case ratio.LessThan(decimal.NewFromInt(1)):
		return SeverityMedium
	default:
		return SeverityLow
	}
}
