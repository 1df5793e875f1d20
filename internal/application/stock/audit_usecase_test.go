package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/application/stock"
	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/infrastructure/memory"
)

func newAudit(store *memory.Store) *stock.AuditUseCase {
	return stock.NewAuditUseCase(store.TxRunner(), store.ProductRepository(), store.AuditRepository())
}

// Faltante: esperado 20, contado 17 → difference −3, MERMA −3 en el libro y
// el conteo físico como saldo autoritativo.
func TestReconcile_FaltanteEmiteMerma(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 20)
	uc := newAudit(store)
	ctx := context.Background()

	out, err := uc.Reconcile(ctx, testActor, dto.ReconcileRequest{
		ProductID: "p1", ExpectedCount: 20, ActualCount: 17,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-3), out.Difference)

	available, _ := productStock(t, store, "p1")
	assert.Equal(t, int64(17), available, "el conteo físico es el saldo autoritativo")

	movs, err := store.MovementRepository().ListByReference(ctx, testActor.UserID, out.ID)
	require.NoError(t, err)
	require.Len(t, movs, 1, "debe quedar exactamente un movimiento compensatorio")
	assert.Equal(t, entity.MovementTypeMerma, movs[0].Type)
	assert.Equal(t, int64(-3), movs[0].Amount)

	p, err := store.ProductRepository().GetByID(ctx, testActor.UserID, "p1")
	require.NoError(t, err)
	require.NotNil(t, p.LastAuditCount)
	assert.Equal(t, int64(17), *p.LastAuditCount)
	assert.NotNil(t, p.LastAuditDate)
}

// Sobrante: esperado 10, contado 12 → AJUSTE +2.
func TestReconcile_SobranteEmiteAjuste(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 10)
	uc := newAudit(store)
	ctx := context.Background()

	out, err := uc.Reconcile(ctx, testActor, dto.ReconcileRequest{
		ProductID: "p1", ExpectedCount: 10, ActualCount: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Difference)

	available, _ := productStock(t, store, "p1")
	assert.Equal(t, int64(12), available)

	movs, err := store.MovementRepository().ListByReference(ctx, testActor.UserID, out.ID)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeAjuste, movs[0].Type)
	assert.Equal(t, int64(2), movs[0].Amount)
}

// Sin diferencia: queda el registro de auditoría pero ningún movimiento.
func TestReconcile_SinDiferenciaNoMueveElLibro(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 8)
	uc := newAudit(store)
	ctx := context.Background()

	out, err := uc.Reconcile(ctx, testActor, dto.ReconcileRequest{
		ProductID: "p1", ExpectedCount: 8, ActualCount: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Difference)

	movs, err := store.MovementRepository().ListByReference(ctx, testActor.UserID, out.ID)
	require.NoError(t, err)
	assert.Empty(t, movs)

	history, err := uc.History(ctx, testActor, "p1", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestReconcile_Rechazos(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 10)
	uc := newAudit(store)
	ctx := context.Background()

	_, err := uc.Reconcile(ctx, domain.Actor{}, dto.ReconcileRequest{ProductID: "p1"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = uc.Reconcile(ctx, testActor, dto.ReconcileRequest{
		ProductID: "desconocido", ExpectedCount: 1, ActualCount: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Reconcile(ctx, testActor, dto.ReconcileRequest{
		ProductID: "p1", ExpectedCount: -1, ActualCount: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "los conteos no pueden ser negativos")
}
