package sales

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/domain"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

// QueryUseCase lectura del historial de ventas.
type QueryUseCase struct {
	repo repository.SaleRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(repo repository.SaleRepository) *QueryUseCase {
	return &QueryUseCase{repo: repo}
}

// List devuelve todas las ventas en orden de alta.
func (uc *QueryUseCase) List(ctx context.Context) ([]*dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleResponse(s))
	}
	return out, nil
}

// GetByID obtiene una venta.
func (uc *QueryUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return ToSaleResponse(s), nil
}
