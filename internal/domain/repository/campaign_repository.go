package repository

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
)

// CampaignRepository define el puerto de persistencia para Campaign.
// Las implementaciones garantizan como máximo una campaña activa.
type CampaignRepository interface {
	// Create asigna el ID; si c.Active desactiva todas las demás en la misma operación.
	Create(ctx context.Context, c *entity.Campaign) error
	GetByID(ctx context.Context, id int64) (*entity.Campaign, error)
	List(ctx context.Context) ([]*entity.Campaign, error)
	// Activate marca id como la única activa. Devuelve (nil, nil) si id no existe (y no toca nada).
	Activate(ctx context.Context, id int64) (*entity.Campaign, error)
	// LatestActive devuelve (nil, nil) si no hay ninguna activa.
	LatestActive(ctx context.Context) (*entity.Campaign, error)
	Delete(ctx context.Context, id int64) error
}
