package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Ventario-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isTransient reconoce fallas reintentables del almacén: timeouts de red o de
// context, y los SQLSTATE de conexión (clase 08), saturación de conexiones
// (53300) y apagado del servidor (57P01).
func isTransient(err error) bool {
	if pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "08") ||
			pgErr.Code == "53300" ||
			pgErr.Code == "57P01"
	}
	return false
}

// wrapStoreErr envuelve errores de infraestructura del almacén. Las fallas
// transitorias quedan marcadas con ErrTransientStore para que la capa HTTP
// las distinga de errores permanentes (503 vs 500).
func wrapStoreErr(op string, err error) error {
	if isTransient(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrTransientStore, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
