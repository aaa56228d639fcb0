package repository

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
)

// ResellerRepository define el puerto de persistencia para Reseller (DIP).
type ResellerRepository interface {
	// Create asigna el ID desde la secuencia del almacenamiento.
	Create(ctx context.Context, r *entity.Reseller) error
	GetByID(ctx context.Context, id int64) (*entity.Reseller, error)
	List(ctx context.Context) ([]*entity.Reseller, error)
	Update(ctx context.Context, r *entity.Reseller) error
}
