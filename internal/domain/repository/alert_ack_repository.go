package repository

import (
	"context"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
)

// AlertAckRepository puerto para el estado de reconocimiento de alertas,
// con identidad {userID, productID, alertType}.
type AlertAckRepository interface {
	Upsert(ctx context.Context, ack *entity.AlertAck) error
	ListByUser(ctx context.Context, userID string) ([]*entity.AlertAck, error)
	// Delete limpia el reconocimiento cuando la condición sale de rango;
	// no es error si no existe.
	Delete(ctx context.Context, userID, productID, alertType string) error
}
