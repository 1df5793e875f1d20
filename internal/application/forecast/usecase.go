package forecast

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	domforecast "github.com/jhoicas/Ventario-api/internal/domain/forecast"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
	domstock "github.com/jhoicas/Ventario-api/internal/domain/stock"
)

// Ventanas de historial para los análisis.
const (
	demandHistoryDays  = 180
	reorderHistoryDays = 90
	forecastScanLimit  = 500
)

// UseCase expone los motores de pronóstico y optimización como análisis batch
// de solo lectura sobre instantáneas de productos y ventas completadas. Sin
// camino de escritura ni estado propio: funciones puras sobre el historial.
type UseCase struct {
	productRepo repository.ProductRepository
	resRepo     repository.ReservationRepository
	saleRepo    repository.SaleRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	productRepo repository.ProductRepository,
	resRepo repository.ReservationRepository,
	saleRepo repository.SaleRepository,
) *UseCase {
	return &UseCase{productRepo: productRepo, resRepo: resRepo, saleRepo: saleRepo}
}

// snapshot carga productos con disponibilidad derivada y el historial de
// líneas vendidas de la ventana dada, agrupado por producto.
func (uc *UseCase) snapshot(ctx context.Context, actor domain.Actor, historyDays int) (
	products []*entity.Product, history map[string][]domforecast.SalePoint, err error,
) {
	now := time.Now()
	raw, err := uc.productRepo.ListByUser(ctx, actor.UserID, forecastScanLimit, 0)
	if err != nil {
		return nil, nil, err
	}
	reservations, err := uc.resRepo.ListLive(ctx, actor.UserID, "", now)
	if err != nil {
		return nil, nil, err
	}
	projected := domstock.WithStockInfoAll(raw, reservations, now)

	lines, err := uc.saleRepo.CompletedLines(ctx, actor.UserID, now.AddDate(0, 0, -historyDays))
	if err != nil {
		return nil, nil, err
	}
	history = make(map[string][]domforecast.SalePoint)
	for _, l := range lines {
		history[l.ProductID] = append(history[l.ProductID], domforecast.SalePoint{Date: l.Date, Quantity: l.Quantity})
	}
	return projected, history, nil
}

// Demand pronostica la demanda de cada producto sobre el horizonte dado.
// Historial escaso degrada a confianza cero, nunca revienta.
func (uc *UseCase) Demand(ctx context.Context, actor domain.Actor, horizonDays int) ([]dto.DemandForecastDTO, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	if horizonDays <= 0 {
		horizonDays = 30
	}
	products, history, err := uc.snapshot(ctx, actor, demandHistoryDays)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DemandForecastDTO, 0, len(products))
	for _, p := range products {
		f := domforecast.PredictDemand(p.ID, history[p.ID], p.StockAvailable, horizonDays)
		out = append(out, dto.DemandForecastDTO{
			ProductID:       f.ProductID,
			ProductName:     p.Name,
			AvgDailyDemand:  f.AvgDailyDemand,
			PredictedDemand: f.PredictedDemand,
			HorizonDays:     f.HorizonDays,
			Confidence:      f.Confidence,
			Risk:            f.Risk,
			SampleSize:      f.SampleSize,
		})
	}
	return out, nil
}

// Reorders genera recomendaciones de reposición priorizadas por severidad.
func (uc *UseCase) Reorders(ctx context.Context, actor domain.Actor) ([]dto.ReorderSuggestionDTO, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	products, history, err := uc.snapshot(ctx, actor, reorderHistoryDays)
	if err != nil {
		return nil, err
	}
	demand := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		f := domforecast.PredictDemand(p.ID, history[p.ID], p.StockAvailable, 1)
		demand[p.ID] = f.AvgDailyDemand
	}
	suggestions := domforecast.SuggestReorders(products, demand, domforecast.DefaultReorderParams())

	out := make([]dto.ReorderSuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, dto.ReorderSuggestionDTO{
			ProductID:         s.ProductID,
			ProductName:       s.ProductName,
			CurrentStock:      s.CurrentStock,
			SafetyStock:       s.SafetyStock,
			OptimalStock:      s.OptimalStock,
			SuggestedOrderQty: s.SuggestedOrderQty,
			Severity:          s.Severity,
			Priority:          s.Priority,
		})
	}
	return out, nil
}

// Patterns detecta stock muerto, sobrestock y estacionalidad sobre un año de
// historial.
func (uc *UseCase) Patterns(ctx context.Context, actor domain.Actor) (*dto.PatternReportDTO, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	products, history, err := uc.snapshot(ctx, actor, 365)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lastSale := make(map[string]time.Time)
	monthlyDemand := make(map[string]decimal.Decimal)
	var allPoints []domforecast.SalePoint
	for id, points := range history {
		var total int64
		for _, pt := range points {
			total += pt.Quantity
			if pt.Date.After(lastSale[id]) {
				lastSale[id] = pt.Date
			}
			allPoints = append(allPoints, pt)
		}
		monthlyDemand[id] = decimal.NewFromInt(total).Div(decimal.NewFromInt(12)).Round(2)
	}

	report := &dto.PatternReportDTO{
		DeadStock:   []dto.DeadStockDTO{},
		Overstock:   []dto.OverstockDTO{},
		Seasonality: []dto.SeasonalityDTO{},
	}
	for _, d := range domforecast.DetectDeadStock(products, lastSale, now) {
		report.DeadStock = append(report.DeadStock, dto.DeadStockDTO{
			ProductID:     d.ProductID,
			ProductName:   d.ProductName,
			CurrentStock:  d.CurrentStock,
			DaysSinceSale: d.DaysSinceSale,
		})
	}
	for _, o := range domforecast.DetectOverstock(products, monthlyDemand, decimal.NewFromInt(3)) {
		report.Overstock = append(report.Overstock, dto.OverstockDTO{
			ProductID:      o.ProductID,
			ProductName:    o.ProductName,
			CurrentStock:   o.CurrentStock,
			MonthlyDemand:  o.MonthlyDemand,
			CoverageMonths: o.CoverageMonths,
		})
	}
	for _, s := range domforecast.SeasonalIndexes(allPoints) {
		report.Seasonality = append(report.Seasonality, dto.SeasonalityDTO{Month: int(s.Month), Index: s.Index})
	}
	return report, nil
}
