package stock

import (
	"fmt"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
)

// EvaluateAlerts inspecciona un producto que ya trae la disponibilidad
// derivada y devuelve 0..3 alertas. Las reglas son independientes: un producto
// degenerado (min > max) puede emitir MIN_STOCK y MAX_STOCK a la vez.
// Sin efectos secundarios; el reconocimiento se superpone aparte.
func EvaluateAlerts(p entity.Product) []entity.StockAlert {
	var alerts []entity.StockAlert

	if p.StockAvailable <= 0 {
		alerts = append(alerts, entity.StockAlert{
			ProductID:    p.ID,
			ProductName:  p.Name,
			Type:         entity.AlertTypeOutOfStock,
			CurrentStock: p.StockAvailable,
			Threshold:    0,
			Message:      fmt.Sprintf("%s está agotado", p.Name),
		})
	}
	if p.MinStock != nil && p.StockAvailable > 0 && p.StockAvailable <= *p.MinStock {
		alerts = append(alerts, entity.StockAlert{
			ProductID:    p.ID,
			ProductName:  p.Name,
			Type:         entity.AlertTypeMinStock,
			CurrentStock: p.StockAvailable,
			Threshold:    *p.MinStock,
			Message:      fmt.Sprintf("%s por debajo del stock mínimo (%d)", p.Name, *p.MinStock),
		})
	}
	if p.MaxStock != nil && p.StockAvailable >= *p.MaxStock {
		alerts = append(alerts, entity.StockAlert{
			ProductID:    p.ID,
			ProductName:  p.Name,
			Type:         entity.AlertTypeMaxStock,
			CurrentStock: p.StockAvailable,
			Threshold:    *p.MaxStock,
			Message:      fmt.Sprintf("%s por encima del stock máximo (%d)", p.Name, *p.MaxStock),
		})
	}
	return alerts
}
