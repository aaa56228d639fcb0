package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/application/usecase"
)

// CustomerHandler maneja /api/clientes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
	errorMapper
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, m errorMapper) *CustomerHandler {
	return &CustomerHandler{uc: uc, errorMapper: m}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/clientes [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return h.fail(c, err, msgCustomerNotFound)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.fail(c, err, msgCustomerNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [patch]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c, msgCustomerNotFound)
	}
	var in dto.UpdateCustomerRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return h.fail(c, err, msgCustomerNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clientes
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c, msgCustomerNotFound)
	}
	out, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return h.fail(c, err, msgCustomerNotFound)
	}
	return c.JSON(out)
}
