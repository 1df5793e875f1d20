package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	apphttp "github.com/jhoicas/Ventario-api/internal/interfaces/http"
	"github.com/jhoicas/Ventario-api/pkg/config"
	pkgjwt "github.com/jhoicas/Ventario-api/pkg/jwt"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer, Expiration: testExpMin}
}

func postToken(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestTokenHandler_EmiteTokenUsable(t *testing.T) {
	app := fiber.New()
	app.Post("/api/auth/token", apphttp.NewAuthHandler(testJWTConfig()).Token)

	resp := postToken(t, app, `{"user_id":"u-42","user_name":"ana"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, testExpMin, out.ExpiresInMinutes)

	// El token emitido debe pasar el mismo Parse que usa el middleware.
	userID, userName, err := pkgjwt.Parse(testJWTSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-42", userID)
	assert.Equal(t, "ana", userName)
}

func TestTokenHandler_IdentidadIncompleta(t *testing.T) {
	app := fiber.New()
	app.Post("/api/auth/token", apphttp.NewAuthHandler(testJWTConfig()).Token)

	resp := postToken(t, app, `{"user_id":"u-42"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// La ruta de emisión solo existe en development: en producción el router no
// la registra y cae en el middleware de autenticación del grupo /api.
func TestTokenHandler_NoSeRegistraFueraDeDevelopment(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Env: "production", JWT: testJWTConfig()})

	resp := postToken(t, app, `{"user_id":"u-42","user_name":"ana"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "sin ruta de emisión, manda el middleware")
}

func TestTokenHandler_RegistradaEnDevelopmentSinAutenticacion(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Env: "development", JWT: testJWTConfig()})

	resp := postToken(t, app, `{"user_id":"u-42","user_name":"ana"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "la emisión queda fuera del grupo protegido")
}
