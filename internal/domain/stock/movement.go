package stock

import (
	"github.com/jhoicas/Ventario-api/internal/domain"
	"github.com/jhoicas/Ventario-api/internal/domain/entity"
)

// NormalizeAmount coacciona el signo del monto según el tipo de movimiento
// antes de persistir: ENTRADA/AJUSTE siempre positivos, SALIDA/MERMA siempre
// negativos. TRANSFERENCIA conserva el signo explícito de cada pata para que
// la transferencia sume cero entre ubicaciones.
func NormalizeAmount(movementType string, amount int64) (int64, error) {
	switch movementType {
	case entity.MovementTypeEntrada, entity.MovementTypeAjuste:
		return abs(amount), nil
	case entity.MovementTypeSalida, entity.MovementTypeMerma:
		return -abs(amount), nil
	case entity.MovementTypeTransferencia:
		return amount, nil
	}
	return 0, domain.ErrInvalidInput
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
