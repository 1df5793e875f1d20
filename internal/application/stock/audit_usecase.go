package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/repository"
)

// AuditUseCase concilia conteos físicos contra el saldo esperado. Persiste el
// registro inmutable de auditoría, escribe el conteo real como saldo
// autoritativo y deja traza en el libro con un movimiento compensatorio, todo
// en una transacción: el override nunca queda sin su contraparte en el libro.
type AuditUseCase struct {
	txRunner    AuditTxRunner
	productRepo repository.ProductRepository
	auditRepo   repository.InventoryAuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(
	txRunner AuditTxRunner,
	productRepo repository.ProductRepository,
	auditRepo repository.InventoryAuditRepository,
) *AuditUseCase {
	return &AuditUseCase{txRunner: txRunner, productRepo: productRepo, auditRepo: auditRepo}
}

// Reconcile registra la auditoría con difference = actual − expected y aplica
// la corrección. El movimiento compensatorio respeta el invariante de signo:
// sobrante como AJUSTE (+diff), faltante como MERMA (−|diff|) — el stock que
// falta en un conteo físico es exactamente una merma.
func (uc *AuditUseCase) Reconcile(ctx context.Context, actor domain.Actor, in dto.ReconcileRequest) (*dto.AuditResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	if in.ProductID == "" || in.ExpectedCount < 0 || in.ActualCount < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	difference := in.ActualCount - in.ExpectedCount
	audit := &entity.InventoryAudit{
		ID:            uuid.New().String(),
		ProductID:     in.ProductID,
		ExpectedCount: in.ExpectedCount,
		ActualCount:   in.ActualCount,
		Difference:    difference,
		AuditDate:     now,
		UserID:        actor.UserID,
		UserName:      actor.UserName,
		Notes:         in.Notes,
	}

	err := uc.txRunner.RunAudit(ctx, func(
		auditRepo repository.InventoryAuditRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, actor.UserID, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := auditRepo.Create(ctx, audit); err != nil {
			return err
		}
		if difference != 0 {
			movType := entity.MovementTypeAjuste
			amount := difference
			if difference < 0 {
				movType = entity.MovementTypeMerma
			}
			auditRef := audit.ID
			mov := &entity.StockMovement{
				ID:          uuid.New().String(),
				ProductID:   in.ProductID,
				Type:        movType,
				Amount:      amount,
				Reason:      fmt.Sprintf("conciliación de auditoría: esperado %d, contado %d", in.ExpectedCount, in.ActualCount),
				UserID:      actor.UserID,
				UserName:    actor.UserName,
				ReferenceID: &auditRef,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
		}
		return productRepo.OverrideStock(ctx, in.ProductID, in.ActualCount, now)
	})
	if err != nil {
		return nil, err
	}
	return toAuditResponse(audit), nil
}

// History lista auditorías del tenant, más recientes primero.
func (uc *AuditUseCase) History(ctx context.Context, actor domain.Actor, productID string, page dto.PageRequest) ([]dto.AuditResponse, error) {
	if !actor.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	page.DefaultPage()
	list, err := uc.auditRepo.ListByUser(ctx, actor.UserID, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAuditResponse(a))
	}
	return out, nil
}

func toAuditResponse(a *entity.InventoryAudit) *dto.AuditResponse {
	return &dto.AuditResponse{
		ID:            a.ID,
		ProductID:     a.ProductID,
		ExpectedCount: a.ExpectedCount,
		ActualCount:   a.ActualCount,
		Difference:    a.Difference,
		AuditDate:     a.AuditDate,
		UserID:        a.UserID,
		UserName:      a.UserName,
		Notes:         a.Notes,
	}
}
