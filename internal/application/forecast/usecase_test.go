package forecast_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/application/forecast"
	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/infrastructure/memory"
)

var testActor = domain.Actor{UserID: "user-1", UserName: "tester"}

func newEnv(t *testing.T) (*memory.Store, *forecast.UseCase) {
	t.Helper()
	store := memory.NewStore()
	uc := forecast.NewUseCase(store.ProductRepository(), store.ReservationRepository(), store.SaleRepository())
	return store, uc
}

func seedProduct(t *testing.T, store *memory.Store, id string, stockAvailable int64) {
	t.Helper()
	now := time.Now()
	err := store.ProductRepository().Create(context.Background(), &entity.Product{
		ID:             id,
		UserID:         testActor.UserID,
		Name:           "Producto " + id,
		UnitPrice:      decimal.NewFromInt(10),
		Quantity:       stockAvailable,
		StockAvailable: stockAvailable,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	require.NoError(t, err)
}

// seedCompletedSale siembra directamente una venta COMPLETADA con fecha en el
// pasado, como historial para los motores.
func seedCompletedSale(t *testing.T, store *memory.Store, id, productID string, qty int64, daysAgo int) {
	t.Helper()
	date := time.Now().AddDate(0, 0, -daysAgo)
	err := store.SaleRepository().Create(context.Background(), &entity.Sale{
		ID:     id,
		UserID: testActor.UserID,
		Items: []entity.SaleItem{
			{ProductID: productID, Quantity: qty, UnitPrice: decimal.NewFromInt(10)},
		},
		PaymentMethod: "EFECTIVO",
		Status:        entity.SaleStatusCompletada,
		StockApplied:  true,
		CreatedAt:     date,
		UpdatedAt:     date,
	})
	require.NoError(t, err)
}

func findDemand(list []dto.DemandForecastDTO, productID string) *dto.DemandForecastDTO {
	for i := range list {
		if list[i].ProductID == productID {
			return &list[i]
		}
	}
	return nil
}

func TestDemand_SoloVentasCompletadasAlimentanElPronostico(t *testing.T) {
	store, uc := newEnv(t)
	seedProduct(t, store, "vendido", 10)
	seedProduct(t, store, "sin-historial", 10)
	ctx := context.Background()

	// Dos ventas: 6 unidades en un lapso de 6 días → 1/día.
	seedCompletedSale(t, store, "s1", "vendido", 2, 10)
	seedCompletedSale(t, store, "s2", "vendido", 4, 5)

	// Una venta PENDIENTE no cuenta como demanda.
	now := time.Now()
	require.NoError(t, store.SaleRepository().Create(ctx, &entity.Sale{
		ID: "s3", UserID: testActor.UserID, Status: entity.SaleStatusPendiente,
		Items:     []entity.SaleItem{{ProductID: "sin-historial", Quantity: 100, UnitPrice: decimal.NewFromInt(1)}},
		CreatedAt: now, UpdatedAt: now,
	}))

	out, err := uc.Demand(ctx, testActor, 30)
	require.NoError(t, err)

	sold := findDemand(out, "vendido")
	require.NotNil(t, sold)
	assert.Equal(t, 2, sold.SampleSize)
	assert.True(t, sold.AvgDailyDemand.Equal(decimal.NewFromInt(1)), "6 unidades en 6 días: %s", sold.AvgDailyDemand)
	assert.True(t, sold.PredictedDemand.Equal(decimal.NewFromInt(30)), "pronóstico a 30 días: %s", sold.PredictedDemand)
	assert.True(t, sold.Confidence.GreaterThan(decimal.Zero))

	cold := findDemand(out, "sin-historial")
	require.NotNil(t, cold, "todos los productos aparecen, con o sin historial")
	assert.Equal(t, 0, cold.SampleSize, "la venta PENDIENTE no alimenta el historial")
	assert.True(t, cold.Confidence.IsZero(), "sin historial la confianza degrada a cero")
}

func TestDemand_HorizonteInvalidoUsaDefault(t *testing.T) {
	store, uc := newEnv(t)
	seedProduct(t, store, "p1", 10)

	out, err := uc.Demand(context.Background(), testActor, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 30, out[0].HorizonDays)
}

func TestReorders_ProductoSinStockEsPrioritario(t *testing.T) {
	store, uc := newEnv(t)
	seedProduct(t, store, "agotado", 0)
	seedProduct(t, store, "holgado", 500)
	ctx := context.Background()

	seedCompletedSale(t, store, "s1", "agotado", 5, 20)
	seedCompletedSale(t, store, "s2", "agotado", 5, 10)
	seedCompletedSale(t, store, "s3", "holgado", 5, 20)
	seedCompletedSale(t, store, "s4", "holgado", 5, 10)

	out, err := uc.Reorders(ctx, testActor)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	assert.Equal(t, "agotado", out[0].ProductID, "el agotado con demanda encabeza la lista")
	assert.Equal(t, 1, out[0].Priority)
	assert.True(t, out[0].SuggestedOrderQty.GreaterThan(decimal.Zero))
}

func TestPatterns_StockMuertoNuncaVendido(t *testing.T) {
	store, uc := newEnv(t)
	seedProduct(t, store, "muerto", 40)
	seedProduct(t, store, "activo", 10)
	seedCompletedSale(t, store, "s1", "activo", 3, 7)
	seedCompletedSale(t, store, "s2", "activo", 3, 3)

	out, err := uc.Patterns(context.Background(), testActor)
	require.NoError(t, err)

	require.Len(t, out.DeadStock, 1)
	assert.Equal(t, "muerto", out.DeadStock[0].ProductID)
	assert.Equal(t, -1, out.DeadStock[0].DaysSinceSale, "-1 marca que nunca se vendió")

	assert.NotEmpty(t, out.Seasonality, "con historial debe haber índices estacionales")
}
