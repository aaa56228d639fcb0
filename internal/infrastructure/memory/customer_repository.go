package memory

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository implementación en memoria de repository.CustomerRepository.
type CustomerRepository struct {
	s *Store
}

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository(s *Store) *CustomerRepository {
	return &CustomerRepository{s: s}
}

func customerID(c *entity.Customer) int64 { return c.ID }

func (r *CustomerRepository) Create(_ context.Context, in *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	in.ID = r.s.nextCustomer
	r.s.nextCustomer++
	c := *in
	r.s.customers = append(r.s.customers, &c)
	return nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.customers, id, customerID)
	if i < 0 {
		return nil, nil
	}
	c := *r.s.customers[i]
	return &c, nil
}

func (r *CustomerRepository) List(_ context.Context) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Customer, 0, len(r.s.customers))
	for _, x := range r.s.customers {
		c := *x
		out = append(out, &c)
	}
	return out, nil
}

func (r *CustomerRepository) Update(_ context.Context, in *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := indexOf(r.s.customers, in.ID, customerID); i >= 0 {
		c := *in
		r.s.customers[i] = &c
	}
	return nil
}

func (r *CustomerRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := indexOf(r.s.customers, id, customerID); i >= 0 {
		r.s.customers = append(r.s.customers[:i], r.s.customers[i+1:]...)
	}
	return nil
}
