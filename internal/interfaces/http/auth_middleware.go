package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/pkg/jwt"
)

// Locals keys del operador autenticado.
const (
	LocalUsername = "usuario"
	LocalName     = "nombre"
)

// AuthMiddleware valida el Bearer Token JWT y deja usuario y nombre en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Mensaje: "Se requiere iniciar sesión."})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Mensaje: "Formato: Bearer <token>."})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Mensaje: "Token vacío."})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Mensaje: "Sesión inválida o vencida."})
		}
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalName, claims.Name)
		return c.Next()
	}
}

// GetUsername devuelve el usuario autenticado (vacío si la ruta no pasó por AuthMiddleware).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}
