package repository

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
)

// SaleRepository persistencia append-only de ventas.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
}
