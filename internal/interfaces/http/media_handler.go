package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/punto-bazar-api/internal/application/usecase"
)

// uploadField nombre del campo multipart que envía el admin.
const uploadField = "imagen"

// MediaHandler subida de imágenes de producto.
type MediaHandler struct {
	uc *usecase.MediaUseCase
	errorMapper
}

// NewMediaHandler construye el handler.
func NewMediaHandler(uc *usecase.MediaUseCase, m errorMapper) *MediaHandler {
	return &MediaHandler{uc: uc, errorMapper: m}
}

// Upload godoc
// @Summary      Subir imagen
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Param        imagen  formData  file  true  "Archivo de imagen"
// @Success      200     {object}  dto.UploadResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/upload-imagen [post]
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	var (
		filename, contentType string
		data                  []byte
	)
	if fh, err := c.FormFile(uploadField); err == nil {
		f, err := fh.Open()
		if err != nil {
			return h.fail(c, err, "")
		}
		defer f.Close()
		if data, err = io.ReadAll(f); err != nil {
			return h.fail(c, err, "")
		}
		if data == nil {
			data = []byte{} // el archivo llegó aunque esté vacío
		}
		filename = fh.Filename
		contentType = fh.Header.Get(fiber.HeaderContentType)
	}
	out, err := h.uc.Upload(c.Context(), filename, contentType, data)
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(out)
}
