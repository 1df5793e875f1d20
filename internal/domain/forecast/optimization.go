package forecast

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
)

// ReorderSuggestion es la recomendación de reposición para un producto.
// SafetyStock = demanda diaria × lead time × (1 + volatilidad);
// OptimalStock = SafetyStock × 1.5.
type ReorderSuggestion struct {
	ProductID         string
	ProductName       string
	CurrentStock      int64
	SafetyStock       decimal.Decimal
	OptimalStock      decimal.Decimal
	SuggestedOrderQty decimal.Decimal
	Severity          string // CRITICAL, HIGH, MEDIUM, LOW
	Priority          int    // 1 = más urgente
}

// ReorderParams parámetros del cálculo de reposición.
type ReorderParams struct {
	LeadTimeDays int
	Volatility   decimal.Decimal // fracción, ej. 0.25
}

// DefaultReorderParams valores razonables para una pyme sin datos de proveedor.
func DefaultReorderParams() ReorderParams {
	return ReorderParams{LeadTimeDays: 7, Volatility: decimal.NewFromFloat(0.25)}
}

// SuggestReorder calcula la banda de seguridad/óptimo de un producto y marca
// la severidad según cuánto se desvía el stock actual de esa banda.
func SuggestReorder(p entity.Product, avgDailyDemand decimal.Decimal, params ReorderParams) ReorderSuggestion {
	if avgDailyDemand.LessThan(decimal.Zero) {
		avgDailyDemand = decimal.Zero
	}
	one := decimal.NewFromInt(1)
	safety := avgDailyDemand.
		Mul(decimal.NewFromInt(int64(params.LeadTimeDays))).
		Mul(one.Add(params.Volatility)).
		Round(2)
	optimal := safety.Mul(decimal.NewFromFloat(1.5)).Round(2)

	current := decimal.NewFromInt(p.StockAvailable)
	suggested := optimal.Sub(current)
	if suggested.LessThan(decimal.Zero) {
		suggested = decimal.Zero
	}

	return ReorderSuggestion{
		ProductID:         p.ID,
		ProductName:       p.Name,
		CurrentStock:      p.StockAvailable,
		SafetyStock:       safety,
		OptimalStock:      optimal,
		SuggestedOrderQty: suggested,
		Severity:          reorderSeverity(current, safety, optimal),
	}
}

func reorderSeverity(current, safety, optimal decimal.Decimal) string {
	switch {
	case current.LessThanOrEqual(decimal.Zero):
		return SeverityCritical
	case current.LessThan(safety):
		return SeverityHigh
	case current.LessThan(optimal):
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// SuggestReorders calcula la sugerencia de cada producto y asigna prioridad:
// primero por severidad, luego por mayor déficit contra el óptimo.
func SuggestReorders(products []*entity.Product, demandByProduct map[string]decimal.Decimal, params ReorderParams) []ReorderSuggestion {
	rank := map[string]int{SeverityCritical: 0, SeverityHigh: 1, SeverityMedium: 2, SeverityLow: 3}

	suggestions := make([]ReorderSuggestion, 0, len(products))
	for _, p := range products {
		suggestions = append(suggestions, SuggestReorder(*p, demandByProduct[p.ID], params))
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if rank[a.Severity] != rank[b.Severity] {
			return rank[a.Severity] < rank[b.Severity]
		}
		return a.SuggestedOrderQty.GreaterThan(b.SuggestedOrderQty)
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions
}
