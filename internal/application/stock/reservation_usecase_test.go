package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/application/stock"
	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/infrastructure/memory"
)

func newReservation(store *memory.Store) *stock.ReservationUseCase {
	return stock.NewReservationUseCase(store.ReservationRepository(), store.ProductRepository())
}

func TestReserve_CreaYLista(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 10)
	uc := newReservation(store)
	ctx := context.Background()

	expires := time.Now().Add(time.Hour)
	out, err := uc.Reserve(ctx, testActor, dto.ReserveRequest{
		ProductID: "p1", Quantity: 4, OrderID: "orden-1", ExpiresAt: &expires,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.Quantity)

	live, err := uc.ListLive(ctx, testActor, "p1")
	require.NoError(t, err)
	assert.Len(t, live, 1)

	// El saldo almacenado no se toca: la reserva solo descuenta en proyección.
	available, _ := productStock(t, store, "p1")
	assert.Equal(t, int64(10), available)
}

// Reservar más que el stock disponible no falla: la proyección acota en cero.
func TestReserve_PermisivaSobreStock(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 2)
	uc := newReservation(store)

	_, err := uc.Reserve(context.Background(), testActor, dto.ReserveRequest{
		ProductID: "p1", Quantity: 50, OrderID: "orden-1",
	})
	assert.NoError(t, err)
}

func TestListLive_ExcluyeExpiradas(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 10)
	uc := newReservation(store)
	ctx := context.Background()

	// Sembrada directamente con expiración pasada: debe quedar invisible
	// sin ninguna transición explícita.
	past := time.Now().Add(-time.Minute)
	require.NoError(t, store.ReservationRepository().Create(ctx, &entity.ProductReservation{
		ID: "r-expirada", ProductID: "p1", Quantity: 3, OrderID: "o1",
		ExpiresAt: &past, UserID: testActor.UserID,
	}))
	require.NoError(t, store.ReservationRepository().Create(ctx, &entity.ProductReservation{
		ID: "r-viva", ProductID: "p1", Quantity: 2, OrderID: "o2",
		UserID: testActor.UserID,
	}))

	live, err := uc.ListLive(ctx, testActor, "p1")
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, "r-viva", live[0].ID)
}

func TestCancel_NoOpSiNoExiste(t *testing.T) {
	store := memory.NewStore()
	uc := newReservation(store)

	err := uc.Cancel(context.Background(), testActor, "inexistente")
	assert.NoError(t, err, "cancelar una reserva ausente es un no-op exitoso")
}

func TestReserve_Rechazos(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 10)
	uc := newReservation(store)
	ctx := context.Background()

	_, err := uc.Reserve(ctx, testActor, dto.ReserveRequest{ProductID: "p1", Quantity: 0, OrderID: "o1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	past := time.Now().Add(-time.Second)
	_, err = uc.Reserve(ctx, testActor, dto.ReserveRequest{
		ProductID: "p1", Quantity: 1, OrderID: "o1", ExpiresAt: &past,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "expiración en el pasado no crea nada")

	_, err = uc.Reserve(ctx, testActor, dto.ReserveRequest{ProductID: "desconocido", Quantity: 1, OrderID: "o1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
