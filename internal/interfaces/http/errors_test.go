package http

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/internal/domain"
)

func responseFor(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/fallo", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest("GET", "/fallo", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// Una caída transitoria del almacén debe responder 503, no 500: el cliente
// puede reintentar.
func TestRespondError_AlmacenTransitorioDevuelve503(t *testing.T) {
	err := fmt.Errorf("list products: %w: conexión rechazada", domain.ErrTransientStore)
	status, body := responseFor(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "UNAVAILABLE", body.Code)
}

func TestRespondError_MapeoPorTipoDeError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"no autenticado", domain.ErrUnauthenticated, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"no encontrado", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"transición inválida", domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
		{"entrada inválida", domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{"duplicado", domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{"desconocido", fmt.Errorf("algo explotó"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := responseFor(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}
