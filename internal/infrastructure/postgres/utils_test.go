package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ventario-api/internal/domain"
)

func TestWrapStoreErr_FallasTransitoriasQuedanMarcadas(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"conexión caída (clase 08)", &pgconn.PgError{Code: "08006"}},
		{"demasiadas conexiones", &pgconn.PgError{Code: "53300"}},
		{"apagado del servidor", &pgconn.PgError{Code: "57P01"}},
		{"deadline del contexto", context.DeadlineExceeded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := wrapStoreErr("list products", tc.err)
			assert.ErrorIs(t, wrapped, domain.ErrTransientStore,
				"la falla debe distinguirse como reintentable")
		})
	}
}

func TestWrapStoreErr_FallasPermanentesNoSeMarcan(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"columna inexistente", &pgconn.PgError{Code: "42703"}},
		{"violación de único", &pgconn.PgError{Code: "23505"}},
		{"error genérico", errors.New("scan: tipo inesperado")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := wrapStoreErr("insert product", tc.err)
			assert.NotErrorIs(t, wrapped, domain.ErrTransientStore)
			assert.ErrorContains(t, wrapped, "insert product:", "conserva la operación en el mensaje")
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "08006"}))
}
