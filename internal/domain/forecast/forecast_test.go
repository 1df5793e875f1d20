package forecast_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/forecast"
)

func dia(offset int) time.Time {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicción de demanda
// ──────────────────────────────────────────────────────────────────────────────

// Historial escaso (<2 puntos): degradar a confianza cero, nunca dividir por cero.
func TestPredictDemand_HistorialEscasoDegradaAConfianzaCero(t *testing.T) {
	for _, history := range [][]forecast.SalePoint{
		nil,
		{},
		{{Date: dia(0), Quantity: 5}},
	} {
		f := forecast.PredictDemand("p1", history, 10, 30)
		assert.True(t, f.Confidence.IsZero(), "confianza debe ser cero con %d puntos", len(history))
		assert.True(t, f.PredictedDemand.IsZero())
		assert.Equal(t, forecast.SeverityLow, f.Risk)
	}
}

func TestPredictDemand_PromedioDiarioPorHorizonte(t *testing.T) {
	// 10 unidades en un lapso de 5 días (días 0..4) → 2/día → 60 en 30 días.
	history := []forecast.SalePoint{
		{Date: dia(0), Quantity: 2},
		{Date: dia(1), Quantity: 2},
		{Date: dia(2), Quantity: 2},
		{Date: dia(3), Quantity: 2},
		{Date: dia(4), Quantity: 2},
	}
	f := forecast.PredictDemand("p1", history, 100, 30)

	assert.True(t, f.PredictedDemand.Equal(decimal.NewFromInt(60)), "demanda prevista = %s", f.PredictedDemand)
	assert.True(t, f.Confidence.GreaterThan(decimal.Zero))
	assert.Equal(t, 5, f.SampleSize)
}

func TestPredictDemand_RiesgoPorRazonStockDemanda(t *testing.T) {
	history := []forecast.SalePoint{
		{Date: dia(0), Quantity: 10},
		{Date: dia(9), Quantity: 10},
	}
	// 20 unidades / 10 días = 2/día → 60 previsto a 30 días.
	casos := []struct {
		stock  int64
		riesgo string
	}{
		{0, forecast.SeverityCritical},
		{20, forecast.SeverityHigh},   // ratio 0.33
		{45, forecast.SeverityMedium}, // ratio 0.75
		{90, forecast.SeverityLow},    // ratio 1.5
	}
	for _, c := range casos {
		f := forecast.PredictDemand("p1", history, c.stock, 30)
		assert.Equal(t, c.riesgo, f.Risk, "stock %d", c.stock)
	}
}

// La confianza crece con la muestra.
func TestPredictDemand_ConfianzaEscalaConMuestra(t *testing.T) {
	corto := []forecast.SalePoint{{Date: dia(0), Quantity: 1}, {Date: dia(1), Quantity: 1}}
	largo := make([]forecast.SalePoint, 0, 40)
	for i := 0; i < 40; i++ {
		largo = append(largo, forecast.SalePoint{Date: dia(i), Quantity: 1})
	}
	fc := forecast.PredictDemand("p1", corto, 10, 30)
	fl := forecast.PredictDemand("p1", largo, 10, 30)
	assert.True(t, fl.Confidence.GreaterThan(fc.Confidence))
	assert.True(t, fl.Confidence.LessThanOrEqual(decimal.NewFromInt(1)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Optimización de reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestSuggestReorder_BandaDeSeguridad(t *testing.T) {
	p := entity.Product{ID: "p1", Name: "Collar", StockAvailable: 5}
	// demanda 2/día, lead 7, volatilidad 0.25 → seguridad 17.5, óptimo 26.25.
	params := forecast.ReorderParams{LeadTimeDays: 7, Volatility: decimal.NewFromFloat(0.25)}
	s := forecast.SuggestReorder(p, decimal.NewFromInt(2), params)

	assert.True(t, s.SafetyStock.Equal(decimal.NewFromFloat(17.5)), "seguridad = %s", s.SafetyStock)
	assert.True(t, s.OptimalStock.Equal(decimal.NewFromFloat(26.25)), "óptimo = %s", s.OptimalStock)
	assert.True(t, s.SuggestedOrderQty.Equal(decimal.NewFromFloat(21.25)))
	assert.Equal(t, forecast.SeverityHigh, s.Severity, "stock 5 < seguridad 17.5")
}

func TestSuggestReorder_Severidades(t *testing.T) {
	params := forecast.ReorderParams{LeadTimeDays: 7, Volatility: decimal.NewFromFloat(0.25)}
	demanda := decimal.NewFromInt(2) // seguridad 17.5, óptimo 26.25
	casos := []struct {
		stock     int64
		severidad string
	}{
		{0, forecast.SeverityCritical},
		{10, forecast.SeverityHigh},
		{20, forecast.SeverityMedium},
		{30, forecast.SeverityLow},
	}
	for _, c := range casos {
		s := forecast.SuggestReorder(entity.Product{ID: "p1", StockAvailable: c.stock}, demanda, params)
		assert.Equal(t, c.severidad, s.Severity, "stock %d", c.stock)
	}
}

func TestSuggestReorders_PrioridadPorSeveridadYDeficit(t *testing.T) {
	products := []*entity.Product{
		{ID: "ok", Name: "A", StockAvailable: 100},
		{ID: "critico", Name: "B", StockAvailable: 0},
		{ID: "medio", Name: "C", StockAvailable: 20},
	}
	demand := map[string]decimal.Decimal{
		"ok": decimal.NewFromInt(2), "critico": decimal.NewFromInt(2), "medio": decimal.NewFromInt(2),
	}
	out := forecast.SuggestReorders(products, demand, forecast.DefaultReorderParams())

	require.Len(t, out, 3)
	assert.Equal(t, "critico", out[0].ProductID)
	assert.Equal(t, 1, out[0].Priority)
	assert.Equal(t, "ok", out[2].ProductID)
}

// Sin demanda conocida no debe reventar: sugiere cero con severidad por stock.
func TestSuggestReorders_SinDemandaNoRevienta(t *testing.T) {
	products := []*entity.Product{{ID: "p1", Name: "A", StockAvailable: 3}}
	out := forecast.SuggestReorders(products, map[string]decimal.Decimal{}, forecast.DefaultReorderParams())
	require.Len(t, out, 1)
	assert.True(t, out[0].SuggestedOrderQty.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Patrones: stock muerto, sobrestock, estacionalidad
// ──────────────────────────────────────────────────────────────────────────────

func TestDetectDeadStock_MasDe90DiasSinVenta(t *testing.T) {
	now := dia(0)
	products := []*entity.Product{
		{ID: "muerto", Name: "A", StockAvailable: 5},
		{ID: "activo", Name: "B", StockAvailable: 5},
		{ID: "sinstock", Name: "C", StockAvailable: 0},
		{ID: "nunca", Name: "D", StockAvailable: 2},
	}
	lastSale := map[string]time.Time{
		"muerto":   now.AddDate(0, 0, -120),
		"activo":   now.AddDate(0, 0, -10),
		"sinstock": now.AddDate(0, 0, -200),
	}
	dead := forecast.DetectDeadStock(products, lastSale, now)

	require.Len(t, dead, 2)
	ids := []string{dead[0].ProductID, dead[1].ProductID}
	assert.Contains(t, ids, "muerto")
	assert.Contains(t, ids, "nunca", "un producto con stock que nunca se vendió es stock muerto")
}

func TestDetectOverstock_PorCoberturaEnMeses(t *testing.T) {
	products := []*entity.Product{
		{ID: "sobrado", Name: "A", StockAvailable: 100},
		{ID: "normal", Name: "B", StockAvailable: 10},
		{ID: "sindemanda", Name: "C", StockAvailable: 500},
	}
	demand := map[string]decimal.Decimal{
		"sobrado": decimal.NewFromInt(10), // cobertura 10 meses
		"normal":  decimal.NewFromInt(10), // cobertura 1 mes
	}
	over := forecast.DetectOverstock(products, demand, decimal.NewFromInt(3))

	require.Len(t, over, 1)
	assert.Equal(t, "sobrado", over[0].ProductID)
	assert.True(t, over[0].CoverageMonths.Equal(decimal.NewFromInt(10)))
}

func TestSeasonalIndexes_HistorialVacioDevuelveNil(t *testing.T) {
	assert.Nil(t, forecast.SeasonalIndexes(nil))
	assert.Nil(t, forecast.SeasonalIndexes([]forecast.SalePoint{}))
}

func TestSeasonalIndexes_MesFuerteIndiceMayorAUno(t *testing.T) {
	history := []forecast.SalePoint{
		{Date: time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC), Quantity: 30},
		{Date: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), Quantity: 10},
	}
	points := forecast.SeasonalIndexes(history)
	require.Len(t, points, 2)

	byMonth := map[time.Month]decimal.Decimal{}
	for _, p := range points {
		byMonth[p.Month] = p.Index
	}
	assert.True(t, byMonth[time.December].GreaterThan(decimal.NewFromInt(1)))
	assert.True(t, byMonth[time.June].LessThan(decimal.NewFromInt(1)))
}
