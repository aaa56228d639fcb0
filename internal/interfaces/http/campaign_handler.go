package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/application/usecase"
)

// CampaignHandler maneja /api/campanias.
type CampaignHandler struct {
	uc *usecase.CampaignUseCase
	errorMapper
}

// NewCampaignHandler construye el handler.
func NewCampaignHandler(uc *usecase.CampaignUseCase, m errorMapper) *CampaignHandler {
	return &CampaignHandler{uc: uc, errorMapper: m}
}

// List godoc
// @Summary      Listar campañas
// @Tags         campanias
// @Produce      json
// @Success      200  {array}  dto.CampaignResponse
// @Router       /api/campanias [get]
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return h.fail(c, err, msgCampaignNotFound)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear campaña
// @Description  Si activa es verdadero, el resto de las campañas queda inactiva.
// @Tags         campanias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCampaignRequest  true  "titulo o texto"
// @Success      200   {object}  dto.CampaignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/campanias [post]
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCampaignRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.fail(c, err, msgCampaignNotFound)
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Activar campaña (exclusiva)
// @Tags         campanias
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.CampaignResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/campanias/{id}/activa [patch]
func (h *CampaignHandler) Activate(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c, msgCampaignNotFound)
	}
	out, err := h.uc.Activate(c.Context(), id)
	if err != nil {
		return h.fail(c, err, msgCampaignNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar campaña
// @Tags         campanias
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.CampaignResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/campanias/{id} [delete]
func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c, msgCampaignNotFound)
	}
	out, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return h.fail(c, err, msgCampaignNotFound)
	}
	return c.JSON(out)
}

// Today godoc
// @Summary      Campaña del día
// @Description  La campaña activa más reciente, o null.
// @Tags         campanias
// @Produce      json
// @Success      200  {object}  dto.CampaignResponse
// @Router       /api/campanias/hoy [get]
func (h *CampaignHandler) Today(c *fiber.Ctx) error {
	out, err := h.uc.Today(c.Context())
	if err != nil {
		return h.fail(c, err, msgCampaignNotFound)
	}
	if out == nil {
		return c.JSON(nil)
	}
	return c.JSON(out)
}
