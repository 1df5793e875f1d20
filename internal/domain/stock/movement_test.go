package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
	"github.com/jhoicas/Ventario-api/internal/domain/stock"
)

// Invariante de signo: ENTRADA/AJUSTE ⇒ monto ≥ 0, SALIDA/MERMA ⇒ monto ≤ 0,
// sin importar el signo con el que llegue el monto del caller.
func TestNormalizeAmount_CoaccionaSignoPorTipo(t *testing.T) {
	cases := []struct {
		tipo     string
		entrada  int64
		esperado int64
	}{
		{entity.MovementTypeEntrada, 10, 10},
		{entity.MovementTypeEntrada, -10, 10},
		{entity.MovementTypeAjuste, 7, 7},
		{entity.MovementTypeAjuste, -7, 7},
		{entity.MovementTypeSalida, 5, -5},
		{entity.MovementTypeSalida, -5, -5},
		{entity.MovementTypeMerma, 3, -3},
		{entity.MovementTypeMerma, -3, -3},
	}
	for _, c := range cases {
		got, err := stock.NormalizeAmount(c.tipo, c.entrada)
		require.NoError(t, err, "tipo %s", c.tipo)
		assert.Equal(t, c.esperado, got, "tipo %s con monto %d", c.tipo, c.entrada)
	}
}

// TRANSFERENCIA conserva el signo explícito de cada pata.
func TestNormalizeAmount_TransferenciaConservaSigno(t *testing.T) {
	out, err := stock.NormalizeAmount(entity.MovementTypeTransferencia, -5)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), out)

	in, err := stock.NormalizeAmount(entity.MovementTypeTransferencia, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), in)
	assert.Zero(t, out+in, "las dos patas de una transferencia deben sumar cero")
}

func TestNormalizeAmount_TipoDesconocidoFalla(t *testing.T) {
	_, err := stock.NormalizeAmount("REGALO", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
