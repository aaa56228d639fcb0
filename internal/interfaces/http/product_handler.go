package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/application/usecase"
)

// ProductHandler maneja /api/productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
	errorMapper
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, m errorMapper) *ProductHandler {
	return &ProductHandler{uc: uc, errorMapper: m}
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return h.fail(c, err, msgProductNotFound)
	}
	return c.JSON(list)
}

// ListActive godoc
// @Summary      Catálogo público
// @Description  Productos activos con stock mayor a cero.
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/productos/activos [get]
func (h *ProductHandler) ListActive(c *fiber.Ctx) error {
	list, err := h.uc.ListActive(c.Context())
	if err != nil {
		return h.fail(c, err, msgProductNotFound)
	}
	return c.JSON(list)
}

// ListOnPromotion godoc
// @Summary      Productos en oferta
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/productos/ofertas [get]
func (h *ProductHandler) ListOnPromotion(c *fiber.Ctx) error {
	list, err := h.uc.ListOnPromotion(c.Context())
	if err != nil {
		return h.fail(c, err, msgProductNotFound)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c, msgProductNotFound)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return h.fail(c, err, msgProductNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.fail(c, err, msgProductNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Solo se modifican las claves presentes en el cuerpo.
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c, msgProductNotFound)
	}
	var in dto.UpdateProductRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return h.fail(c, err, msgProductNotFound)
	}
	return c.JSON(out)
}

// SetActive godoc
// @Summary      Activar, desactivar o alternar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true   "ID"
// @Param        body  body  dto.SetActiveRequest  false  "activo (opcional)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/activo [patch]
func (h *ProductHandler) SetActive(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c, msgProductNotFound)
	}
	var in dto.SetActiveRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetActive(c.Context(), id, in)
	if err != nil {
		return h.fail(c, err, msgProductNotFound)
	}
	return c.JSON(out)
}

// SetStock godoc
// @Summary      Fijar stock
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID"
// @Param        body  body  dto.SetStockRequest  true  "stock"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/stock [patch]
func (h *ProductHandler) SetStock(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c, msgProductNotFound)
	}
	var in dto.SetStockRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetStock(c.Context(), id, in)
	if err != nil {
		return h.fail(c, err, msgProductNotFound)
	}
	return c.JSON(out)
}

// SetPromotion godoc
// @Summary      Fijar o quitar oferta
// @Description  Tipo vacío o valor menor o igual a cero quita la oferta.
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID"
// @Param        body  body  dto.SetPromotionRequest  true  "oferta_tipo, oferta_valor, oferta_etiqueta"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/oferta [patch]
func (h *ProductHandler) SetPromotion(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c, msgProductNotFound)
	}
	var in dto.SetPromotionRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetPromotion(c.Context(), id, in)
	if err != nil {
		return h.fail(c, err, msgProductNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c, msgProductNotFound)
	}
	out, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return h.fail(c, err, msgProductNotFound)
	}
	return c.JSON(out)
}
