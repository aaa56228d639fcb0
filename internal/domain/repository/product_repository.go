package repository

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	// Create asigna el ID desde una secuencia atómica (nunca max(id)+1).
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// List devuelve todos los productos ordenados por id ascendente.
	List(ctx context.Context) ([]*entity.Product, error)
	// Modify lee, aplica fn y escribe el producto como una sola operación atómica:
	// ninguna otra escritura (venta, stock, oferta) se intercala entre la lectura y la escritura.
	// Devuelve (nil, nil) si no existe.
	Modify(ctx context.Context, id int64, fn func(p *entity.Product)) (*entity.Product, error)
	// UpdateStock fija el stock sin tocar la oferta. Devuelve (nil, nil) si no existe.
	UpdateStock(ctx context.Context, id int64, stock int) (*entity.Product, error)
	// UpdatePromotion fija la oferta sin tocar el stock. Devuelve (nil, nil) si no existe.
	UpdatePromotion(ctx context.Context, id int64, promo entity.Promotion) (*entity.Product, error)
	// DecrementStock descuenta qty con piso en 0 en una sola operación. Devuelve (nil, nil) si no existe.
	DecrementStock(ctx context.Context, id int64, qty int) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
