package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/stock"
)

func ptrInt64(n int64) *int64 { return &n }

func TestEvaluateAlerts_AgotadoEmiteUnaSolaAlerta(t *testing.T) {
	p := entity.Product{ID: "p1", Name: "Collar", StockAvailable: 0}

	alerts := stock.EvaluateAlerts(p)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertTypeOutOfStock, alerts[0].Type)
	assert.Equal(t, int64(0), alerts[0].Threshold)
	assert.Equal(t, int64(0), alerts[0].CurrentStock)
}

func TestEvaluateAlerts_StockMinimo(t *testing.T) {
	p := entity.Product{ID: "p1", Name: "Collar", StockAvailable: 5, MinStock: ptrInt64(10)}

	alerts := stock.EvaluateAlerts(p)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertTypeMinStock, alerts[0].Type)
	assert.Equal(t, int64(10), alerts[0].Threshold)
	assert.Equal(t, int64(5), alerts[0].CurrentStock)
}

func TestEvaluateAlerts_StockMaximo(t *testing.T) {
	p := entity.Product{ID: "p1", Name: "Collar", StockAvailable: 50, MaxStock: ptrInt64(40)}

	alerts := stock.EvaluateAlerts(p)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertTypeMaxStock, alerts[0].Type)
}

// Las reglas son independientes, no mutuamente excluyentes: un producto
// con umbrales degenerados (min > max) emite ambas alertas a la vez.
func TestEvaluateAlerts_UmbralesDegeneradosEmitenAmbas(t *testing.T) {
	p := entity.Product{
		ID: "p1", Name: "Collar", StockAvailable: 5,
		MinStock: ptrInt64(10), MaxStock: ptrInt64(3),
	}

	alerts := stock.EvaluateAlerts(p)
	require.Len(t, alerts, 2)
	tipos := []string{alerts[0].Type, alerts[1].Type}
	assert.Contains(t, tipos, entity.AlertTypeMinStock)
	assert.Contains(t, tipos, entity.AlertTypeMaxStock)
}

func TestEvaluateAlerts_SinUmbralesNiAgotamientoNoEmite(t *testing.T) {
	p := entity.Product{ID: "p1", Name: "Collar", StockAvailable: 20}
	assert.Empty(t, stock.EvaluateAlerts(p))
}

// Determinismo: misma entrada, misma salida.
func TestEvaluateAlerts_Deterministico(t *testing.T) {
	p := entity.Product{ID: "p1", Name: "Collar", StockAvailable: 5, MinStock: ptrInt64(10)}
	assert.Equal(t, stock.EvaluateAlerts(p), stock.EvaluateAlerts(p))
}
