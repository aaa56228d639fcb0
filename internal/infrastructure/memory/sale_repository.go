package memory

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepository)(nil)

// SaleRepository ventas en memoria, append-only.
type SaleRepository struct {
	s *Store
}

// NewSaleRepository construye el repositorio.
func NewSaleRepository(s *Store) *SaleRepository {
	return &SaleRepository{s: s}
}

func (r *SaleRepository) Create(_ context.Context, in *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	in.ID = r.s.nextSale
	r.s.nextSale++
	r.s.sales = append(r.s.sales, cloneSale(in))
	return nil
}

func (r *SaleRepository) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.sales, id, func(s *entity.Sale) int64 { return s.ID })
	if i < 0 {
		return nil, nil
	}
	return cloneSale(r.s.sales[i]), nil
}

func (r *SaleRepository) List(_ context.Context) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Sale, 0, len(r.s.sales))
	for _, s := range r.s.sales {
		out = append(out, cloneSale(s))
	}
	return out, nil
}
