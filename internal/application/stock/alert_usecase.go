package stock

import (
	"context"
	"time"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
	domstock "github.com/jhoicas/Ventario-api/internal/domain/stock"
)

// alertScanPage tamaño de página del barrido de productos por evaluación.
const alertScanPage = 500

// AlertUseCase evalúa las reglas de alerta sobre los productos del tenant con
// disponibilidad derivada, y superpone el estado de reconocimiento persistido.
// El reconocimiento es pegajoso por identidad {productID, tipo}: una
// reevaluación no lo pisa; solo se limpia cuando la condición sale de rango,
// de modo que el próximo disparo vuelva a alertar.
type AlertUseCase struct {
	productRepo repository.ProductRepository
	resRepo     repository.ReservationRepository
	ackRepo     repository.AlertAckRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(
	productRepo repository.ProductRepository,
	resRepo repository.ReservationRepository,
	ackRepo repository.AlertAckRepository,
) *AlertUseCase {
	return &AlertUseCase{productRepo: productRepo, resRepo: resRepo, ackRepo: ackRepo}
}

// Evaluate recalcula las alertas desde el estado actual de productos y
// reservas. Idempotente: evaluar dos veces seguidas produce lo mismo y no
// resucita reconocimientos.
func (uc *AlertUseCase) Evaluate(ctx context.Context, actor domain.Actor) ([]dto.AlertResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	now := time.Now()

	// Barrido paginado: la evaluación cubre todos los productos del tenant,
	// no solo la primera página.
	var products []*entity.Product
	for offset := 0; ; offset += alertScanPage {
		page, err := uc.productRepo.ListByUser(ctx, actor.UserID, alertScanPage, offset)
		if err != nil {
			return nil, err
		}
		products = append(products, page...)
		if len(page) < alertScanPage {
			break
		}
	}
	reservations, err := uc.resRepo.ListLive(ctx, actor.UserID, "", now)
	if err != nil {
		return nil, err
	}

	var alerts []entity.StockAlert
	for _, p := range domstock.WithStockInfoAll(products, reservations, now) {
		alerts = append(alerts, domstock.EvaluateAlerts(*p)...)
	}

	acks, err := uc.ackRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	acked := make(map[string]bool, len(acks))
	for _, a := range acks {
		acked[a.ProductID+"|"+a.AlertType] = true
	}
	active := make(map[string]bool, len(alerts))

	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		key := a.ProductID + "|" + a.Type
		active[key] = true
		out = append(out, dto.AlertResponse{
			ProductID:    a.ProductID,
			ProductName:  a.ProductName,
			Type:         a.Type,
			CurrentStock: a.CurrentStock,
			Threshold:    a.Threshold,
			Message:      a.Message,
			Acknowledged: acked[key],
		})
	}

	// La condición salió de rango: limpiar el ack para que el próximo disparo
	// de esa identidad vuelva a alertar.
	for _, a := range acks {
		if !active[a.ProductID+"|"+a.AlertType] {
			if err := uc.ackRepo.Delete(ctx, actor.UserID, a.ProductID, a.AlertType); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Acknowledge persiste el reconocimiento de la alerta {productID, alertType}.
func (uc *AlertUseCase) Acknowledge(ctx context.Context, actor domain.Actor, in dto.AcknowledgeAlertRequest) error {
	if !actor.Valid() {
		return domain.ErrUnauthenticated
	}
	switch in.AlertType {
	case entity.AlertTypeMinStock, entity.AlertTypeMaxStock, entity.AlertTypeOutOfStock:
	default:
		return domain.ErrInvalidInput
	}
	if in.ProductID == "" {
		return domain.ErrInvalidInput
	}
	return uc.ackRepo.Upsert(ctx, &entity.AlertAck{
		UserID:         actor.UserID,
		ProductID:      in.ProductID,
		AlertType:      in.AlertType,
		AcknowledgedAt: time.Now(),
	})
}
