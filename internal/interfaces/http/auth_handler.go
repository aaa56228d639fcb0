package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/punto-bazar-api/internal/application/auth"
	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
)

// AuthHandler login del back-office (público).
type AuthHandler struct {
	uc *auth.AuthUseCase
	errorMapper
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, m errorMapper) *AuthHandler {
	return &AuthHandler{uc: uc, errorMapper: m}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Usuario y clave"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(out)
}
