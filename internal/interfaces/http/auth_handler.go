package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventario-api/internal/application/dto"
	"github.com/jhoicas/Ventario-api/pkg/config"
	"github.com/jhoicas/Ventario-api/pkg/jwt"
)

// AuthHandler emite tokens Bearer de prueba. Solo se registra en development:
// en los demás entornos la identidad la provee un emisor externo y esta ruta
// no existe.
type AuthHandler struct {
	cfg config.JWTConfig
}

// NewAuthHandler construye el handler con la configuración JWT.
func NewAuthHandler(cfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Token godoc
// @Summary      Emitir token de prueba (solo development)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "user_id, user_name"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.UserID == "" || in.UserName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "user_id y user_name son requeridos",
		})
	}
	token, err := jwt.Generate(h.cfg.Secret, in.UserID, in.UserName, h.cfg.Issuer, h.cfg.Expiration)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.TokenResponse{
		Token:            token,
		TokenType:        "Bearer",
		ExpiresInMinutes: h.cfg.Expiration,
	})
}
