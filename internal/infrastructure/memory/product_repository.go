package memory

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación en memoria de repository.ProductRepository.
type ProductRepository struct {
	s *Store
}

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepository {
	return &ProductRepository{s: s}
}

func productID(p *entity.Product) int64 { return p.ID }

func (r *ProductRepository) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.nextProduct
	r.s.nextProduct++
	r.s.products = append(r.s.products, cloneProduct(p))
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.products, id, productID)
	if i < 0 {
		return nil, nil
	}
	return cloneProduct(r.s.products[i]), nil
}

// List por id ascendente (los ids crecen con el alta).
func (r *ProductRepository) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *ProductRepository) Modify(_ context.Context, id int64, fn func(*entity.Product)) (*entity.Product, error) {
	return r.mutate(id, fn)
}

func (r *ProductRepository) UpdateStock(_ context.Context, id int64, stock int) (*entity.Product, error) {
	return r.mutate(id, func(p *entity.Product) { p.Stock = stock })
}

func (r *ProductRepository) UpdatePromotion(_ context.Context, id int64, promo entity.Promotion) (*entity.Product, error) {
	return r.mutate(id, func(p *entity.Product) { p.Promotion = promo })
}

func (r *ProductRepository) DecrementStock(_ context.Context, id int64, qty int) (*entity.Product, error) {
	return r.mutate(id, func(p *entity.Product) { p.DecrementStock(qty) })
}

func (r *ProductRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := indexOf(r.s.products, id, productID); i >= 0 {
		r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
	}
	return nil
}

// mutate aplica fn al registro guardado bajo el lock; (nil, nil) si no existe.
func (r *ProductRepository) mutate(id int64, fn func(*entity.Product)) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.products, id, productID)
	if i < 0 {
		return nil, nil
	}
	fn(r.s.products[i])
	return cloneProduct(r.s.products[i]), nil
}
