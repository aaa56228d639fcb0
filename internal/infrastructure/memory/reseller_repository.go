package memory

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

var _ repository.ResellerRepository = (*ResellerRepository)(nil)

// ResellerRepository implementación en memoria de repository.ResellerRepository.
type ResellerRepository struct {
	s *Store
}

// NewResellerRepository construye el repositorio.
func NewResellerRepository(s *Store) *ResellerRepository {
	return &ResellerRepository{s: s}
}

func resellerID(r *entity.Reseller) int64 { return r.ID }

// Create asigna el ID y guarda una copia.
func (r *ResellerRepository) Create(_ context.Context, in *entity.Reseller) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	in.ID = r.s.nextReseller
	r.s.nextReseller++
	c := *in
	r.s.resellers = append(r.s.resellers, &c)
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ResellerRepository) GetByID(_ context.Context, id int64) (*entity.Reseller, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.resellers, id, resellerID)
	if i < 0 {
		return nil, nil
	}
	c := *r.s.resellers[i]
	return &c, nil
}

// List en orden de alta.
func (r *ResellerRepository) List(_ context.Context) ([]*entity.Reseller, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Reseller, 0, len(r.s.resellers))
	for _, x := range r.s.resellers {
		c := *x
		out = append(out, &c)
	}
	return out, nil
}

// Update reemplaza el registro; si no existe no hace nada.
func (r *ResellerRepository) Update(_ context.Context, in *entity.Reseller) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := indexOf(r.s.resellers, in.ID, resellerID); i >= 0 {
		c := *in
		r.s.resellers[i] = &c
	}
	return nil
}
