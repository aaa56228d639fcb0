package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/application/usecase"
)

// ResellerHandler maneja /api/revendedores.
type ResellerHandler struct {
	uc *usecase.ResellerUseCase
	errorMapper
}

// NewResellerHandler construye el handler.
func NewResellerHandler(uc *usecase.ResellerUseCase, m errorMapper) *ResellerHandler {
	return &ResellerHandler{uc: uc, errorMapper: m}
}

// List godoc
// @Summary      Listar revendedores
// @Tags         revendedores
// @Produce      json
// @Success      200  {array}  dto.ResellerResponse
// @Router       /api/revendedores [get]
func (h *ResellerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return h.fail(c, err, msgResellerNotFound)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear revendedor
// @Tags         revendedores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResellerRequest  true  "Datos del revendedor"
// @Success      200   {object}  dto.ResellerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/revendedores [post]
func (h *ResellerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResellerRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.fail(c, err, msgResellerNotFound)
	}
	return c.JSON(out)
}

// SetActive godoc
// @Summary      Activar, desactivar o alternar revendedor
// @Tags         revendedores
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true   "ID"
// @Param        body  body  dto.SetActiveRequest  false  "activo (opcional)"
// @Success      200   {object}  dto.ResellerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/revendedores/{id}/activo [patch]
func (h *ResellerHandler) SetActive(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c, msgResellerNotFound)
	}
	var in dto.SetActiveRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetActive(c.Context(), id, in)
	if err != nil {
		return h.fail(c, err, msgResellerNotFound)
	}
	return c.JSON(out)
}
