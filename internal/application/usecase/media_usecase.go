package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/application/ports"
	"github.com/jhoicas/punto-bazar-api/internal/domain"
)

// MediaUseCase sube imágenes de producto al almacén configurado.
type MediaUseCase struct {
	storage ports.MediaStorage
}

// NewMediaUseCase construye el caso de uso.
func NewMediaUseCase(storage ports.MediaStorage) *MediaUseCase {
	return &MediaUseCase{storage: storage}
}

// defaultImageExt extensión para archivos subidos sin extensión.
const defaultImageExt = ".jpg"

// Upload guarda el archivo con un nombre único (uuid + extensión del archivo subido) y devuelve su URL.
// data nil significa que no llegó archivo; un archivo de 0 bytes es válido.
func (uc *MediaUseCase) Upload(ctx context.Context, filename, contentType string, data []byte) (*dto.UploadResponse, error) {
	if data == nil {
		return nil, domain.NewValidationError("No se recibió archivo.")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = defaultImageExt
	}
	key := uuid.NewString() + ext
	url, err := uc.storage.Save(ctx, key, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("guardar imagen %s: %w", key, err)
	}
	return &dto.UploadResponse{OK: true, URL: url}, nil
}
