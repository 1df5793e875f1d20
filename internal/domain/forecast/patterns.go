package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
)

// DeadStockThresholdDays días sin ventas a partir de los cuales un producto
// con stock se considera muerto.
const DeadStockThresholdDays = 90

// DeadStockItem producto con stock y sin ventas recientes.
type DeadStockItem struct {
	ProductID     string
	ProductName   string
	CurrentStock  int64
	DaysSinceSale int // -1 si nunca se vendió
}

// OverstockItem producto cuyo stock supera un múltiplo de su demanda mensual.
type OverstockItem struct {
	ProductID      string
	ProductName    string
	CurrentStock   int64
	MonthlyDemand  decimal.Decimal
	CoverageMonths decimal.Decimal
}

// SeasonalPoint índice estacional de un mes calendario (1 = promedio).
type SeasonalPoint struct {
	Month time.Month
	Index decimal.Decimal
}

// DetectDeadStock devuelve los productos con stock cuya última venta es más
// vieja que el umbral (o que nunca se vendieron).
func DetectDeadStock(products []*entity.Product, lastSale map[string]time.Time, now time.Time) []DeadStockItem {
	var dead []DeadStockItem
	for _, p := range products {
		if p.StockAvailable <= 0 {
			continue
		}
		last, ok := lastSale[p.ID]
		if !ok {
			dead = append(dead, DeadStockItem{ProductID: p.ID, ProductName: p.Name, CurrentStock: p.StockAvailable, DaysSinceSale: -1})
			continue
		}
		days := int(now.Sub(last).Hours() / 24)
		if days > DeadStockThresholdDays {
			dead = append(dead, DeadStockItem{ProductID: p.ID, ProductName: p.Name, CurrentStock: p.StockAvailable, DaysSinceSale: days})
		}
	}
	return dead
}

// DetectOverstock marca productos con cobertura mayor a maxCoverageMonths
// meses de demanda. Productos sin demanda medible se omiten (no hay razón
// que calcular sin dividir por cero).
func DetectOverstock(products []*entity.Product, monthlyDemand map[string]decimal.Decimal, maxCoverageMonths decimal.Decimal) []OverstockItem {
	var over []OverstockItem
	for _, p := range products {
		demand, ok := monthlyDemand[p.ID]
		if !ok || demand.LessThanOrEqual(decimal.Zero) {
			continue
		}
		coverage := decimal.NewFromInt(p.StockAvailable).Div(demand).Round(2)
		if coverage.GreaterThan(maxCoverageMonths) {
			over = append(over, OverstockItem{
				ProductID:      p.ID,
				ProductName:    p.Name,
				CurrentStock:   p.StockAvailable,
				MonthlyDemand:  demand,
				CoverageMonths: coverage,
			})
		}
	}
	return over
}

// SeasonalIndexes calcula un índice por mes calendario: ventas del mes sobre
// el promedio mensual global. Con historial vacío devuelve nil.
func SeasonalIndexes(history []SalePoint) []SeasonalPoint {
	if len(history) == 0 {
		return nil
	}
	byMonth := make(map[time.Month]int64)
	var total int64
	for _, p := range history {
		byMonth[p.Date.Month()] += p.Quantity
		total += p.Quantity
	}
	if total == 0 || len(byMonth) == 0 {
		return nil
	}
	avg := decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(len(byMonth))))

	points := make([]SeasonalPoint, 0, len(byMonth))
	for m := time.January; m <= time.December; m++ {
		qty, ok := byMonth[m]
		if !ok {
			continue
		}
		points = append(points, SeasonalPoint{
			Month: m,
			Index: decimal.NewFromInt(qty).Div(avg).Round(2),
		})
	}
	return points
}
