package usecase

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/domain"
	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

// ResellerUseCase alta, listado y activación de revendedores.
type ResellerUseCase struct {
	repo repository.ResellerRepository
}

// NewResellerUseCase construye el caso de uso.
func NewResellerUseCase(repo repository.ResellerRepository) *ResellerUseCase {
	return &ResellerUseCase{repo: repo}
}

// Create da de alta un revendedor activo.
func (uc *ResellerUseCase) Create(ctx context.Context, in dto.CreateResellerRequest) (*dto.ResellerResponse, error) {
	if err := dto.Validate(in, "Nombre es obligatorio."); err != nil {
		return nil, err
	}
	r := &entity.Reseller{
		Name:            in.Nombre,
		Phone:           in.Telefono,
		Zone:            in.Zona,
		Active:          true,
		AcceptsWhatsApp: in.AceptaWhatsApp.Truthy(),
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toResellerResponse(r), nil
}

// List devuelve todos los revendedores por id.
func (uc *ResellerUseCase) List(ctx context.Context) ([]*dto.ResellerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ResellerResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toResellerResponse(r))
	}
	return out, nil
}

// SetActive fija activo si vino un booleano; si no, lo alterna.
func (uc *ResellerUseCase) SetActive(ctx context.Context, id int64, in dto.SetActiveRequest) (*dto.ResellerResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if b, ok := in.Activo.Bool(); ok {
		r.Active = b
	} else {
		r.Active = !r.Active
	}
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toResellerResponse(r), nil
}

func toResellerResponse(r *entity.Reseller) *dto.ResellerResponse {
	return &dto.ResellerResponse{
		ID:             r.ID,
		Nombre:         r.Name,
		Telefono:       r.Phone,
		Zona:           r.Zone,
		Activo:         r.Active,
		AceptaWhatsApp: r.AcceptsWhatsApp,
	}
}
