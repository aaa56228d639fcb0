package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/application/usecase"
)

// AIHandler redacción asistida. Siempre responde 200: sin IA el front usa su texto local.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// DescribeProduct godoc
// @Summary      Redactar descripción de producto con IA
// @Description  ok=false con texto vacío si el servicio no está configurado o falla.
// @Tags         ia
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductDescriptionRequest  true  "nombre, categoria, detalles, colores, tamanos"
// @Success      200   {object}  dto.ProductDescriptionResponse
// @Router       /api/ia/descripcion-producto [post]
func (h *AIHandler) DescribeProduct(c *fiber.Ctx) error {
	var in dto.ProductDescriptionRequest
	if err := parseBody(c, &in); err != nil {
		return c.JSON(dto.ProductDescriptionResponse{OK: false})
	}
	return c.JSON(h.uc.DescribeProduct(c.Context(), in))
}

// DraftCampaign godoc
// @Summary      Redactar campaña con IA
// @Description  Devuelve título, cuerpo, CTA y hashtags; ok=false si el servicio no responde.
// @Tags         ia
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CampaignDraftRequest  true  "idea, tipo, tono"
// @Success      200   {object}  dto.CampaignDraftResponse
// @Router       /api/ia/campania [post]
func (h *AIHandler) DraftCampaign(c *fiber.Ctx) error {
	var in dto.CampaignDraftRequest
	if err := parseBody(c, &in); err != nil {
		return c.JSON(dto.CampaignDraftResponse{OK: false})
	}
	return c.JSON(h.uc.DraftCampaign(c.Context(), in))
}
