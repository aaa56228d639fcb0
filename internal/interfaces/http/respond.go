package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/domain"
)

// Mensajes de 404 por recurso.
const (
	msgProductNotFound  = "Producto no encontrado."
	msgResellerNotFound = "Revendedor no encontrado."
	msgCampaignNotFound = "Campaña no encontrada."
	msgCustomerNotFound = "Cliente no encontrado."
	msgSaleNotFound     = "Venta no encontrada."
)

// errorMapper traduce errores de dominio a status + ErrorResponse.
type errorMapper struct {
	log zerolog.Logger
}

// fail responde según el tipo de error. Los 500 llevan mensaje genérico; el detalle solo va al log.
func (m errorMapper) fail(c *fiber.Ctx, err error, notFound string) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Mensaje: ve.Message})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Mensaje: notFound})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Mensaje: "Usuario o clave incorrectos."})
	}
	m.log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Mensaje: "Error interno."})
}

// parseBody decodifica el JSON del cuerpo. Un cuerpo vacío deja out en cero.
func parseBody(c *fiber.Ctx, out any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, out)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Mensaje: "Cuerpo inválido."})
}

// idParam lee :id. Un id no numérico se trata como inexistente.
func idParam(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Mensaje: msg})
}
