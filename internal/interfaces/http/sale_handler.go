package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/application/sales"
)

// SaleHandler maneja /api/ventas.
type SaleHandler struct {
	record  *sales.RecordSaleUseCase
	query   *sales.QueryUseCase
	receipt *sales.ReceiptUseCase
	errorMapper
}

// NewSaleHandler construye el handler.
func NewSaleHandler(record *sales.RecordSaleUseCase, query *sales.QueryUseCase, receipt *sales.ReceiptUseCase, m errorMapper) *SaleHandler {
	return &SaleHandler{record: record, query: query, receipt: receipt, errorMapper: m}
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	list, err := h.query.List(c.Context())
	if err != nil {
		return h.fail(c, err, msgSaleNotFound)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Registrar venta
// @Description  Calcula total y comisión, descuenta stock y resuelve o crea el cliente.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "items o producto_id + cantidad_producto"
// @Success      200   {object}  dto.SaleResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.record.Execute(c.Context(), in)
	if err != nil {
		return h.fail(c, err, msgSaleNotFound)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c, msgSaleNotFound)
	}
	out, err := h.query.GetByID(c.Context(), id)
	if err != nil {
		return h.fail(c, err, msgSaleNotFound)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de la venta
// @Tags         ventas
// @Produce      application/pdf
// @Param        id   path  int  true  "ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/comprobante [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c, msgSaleNotFound)
	}
	pdf, filename, err := h.receipt.Download(c.Context(), id)
	if err != nil {
		return h.fail(c, err, msgSaleNotFound)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
