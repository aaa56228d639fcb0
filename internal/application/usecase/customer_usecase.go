package usecase

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/domain"
	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in, "Nombre es obligatorio."); err != nil {
		return nil, err
	}
	c := &entity.Customer{
		Name:  in.Nombre,
		Phone: in.Telefono,
		Zone:  in.Zona,
		Notes: in.Notas,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return ToCustomerResponse(c), nil
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToCustomerResponse(c))
	}
	return out, nil
}

// Update aplica solo los campos presentes. El nombre no puede quedar vacío.
// Las ventas pasadas conservan el nombre copiado al vender.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre.Present() {
		if in.Nombre.String() == "" {
			return nil, domain.NewValidationError("Nombre es obligatorio.")
		}
		c.Name = in.Nombre.String()
	}
	if in.Telefono.Present() {
		c.Phone = in.Telefono.String()
	}
	if in.Zona.Present() {
		c.Zone = in.Zona.String()
	}
	if in.Notas.Present() {
		c.Notes = in.Notas.String()
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return ToCustomerResponse(c), nil
}

// Delete elimina el cliente y lo devuelve. Las ventas que lo referencian quedan con el id colgado.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return ToCustomerResponse(c), nil
}

// ToCustomerResponse mapea la entidad a su salida HTTP.
func ToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:       c.ID,
		Nombre:   c.Name,
		Telefono: c.Phone,
		Zona:     c.Zone,
		Notas:    c.Notes,
	}
}
