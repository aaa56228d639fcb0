package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/domain"
	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

// CampaignUseCase CRUD de campañas con una sola activa a la vez.
type CampaignUseCase struct {
	repo repository.CampaignRepository
	now  func() time.Time
}

// NewCampaignUseCase construye el caso de uso.
func NewCampaignUseCase(repo repository.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, now: time.Now}
}

// Create crea la campaña; si viene activa, desactiva todas las demás.
func (uc *CampaignUseCase) Create(ctx context.Context, in dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	if err := dto.Validate(in, "Se necesita al menos título o texto."); err != nil {
		return nil, err
	}
	c := &entity.Campaign{
		Title:     in.Titulo,
		Text:      in.Texto,
		Active:    in.Activa.Truthy(),
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCampaignResponse(c), nil
}

// List devuelve todas las campañas.
func (uc *CampaignUseCase) List(ctx context.Context) ([]*dto.CampaignResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CampaignResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCampaignResponse(c))
	}
	return out, nil
}

// Activate deja a id como la única campaña activa.
func (uc *CampaignUseCase) Activate(ctx context.Context, id int64) (*dto.CampaignResponse, error) {
	c, err := uc.repo.Activate(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCampaignResponse(c), nil
}

// Delete elimina la campaña y la devuelve.
func (uc *CampaignUseCase) Delete(ctx context.Context, id int64) (*dto.CampaignResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toCampaignResponse(c), nil
}

// Today devuelve la campaña activa más reciente, o nil si no hay ninguna.
func (uc *CampaignUseCase) Today(ctx context.Context) (*dto.CampaignResponse, error) {
	c, err := uc.repo.LatestActive(ctx)
	if err != nil || c == nil {
		return nil, err
	}
	return toCampaignResponse(c), nil
}

func toCampaignResponse(c *entity.Campaign) *dto.CampaignResponse {
	return &dto.CampaignResponse{
		ID:       c.ID,
		Titulo:   c.Title,
		Texto:    c.Text,
		Activa:   c.Active,
		CreadaEn: c.CreatedAt,
	}
}
