package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/domain"
	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

// defaultCreateStock stock inicial cuando el alta no lo informa.
const defaultCreateStock = 1

// ProductUseCase catálogo: CRUD, stock, activación y ofertas.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// List todos los productos por id ascendente.
func (uc *ProductUseCase) List(ctx context.Context) ([]*dto.ProductResponse, error) {
	return uc.filtered(ctx, nil)
}

// ListActive productos activos con stock (catálogo público).
func (uc *ProductUseCase) ListActive(ctx context.Context) ([]*dto.ProductResponse, error) {
	return uc.filtered(ctx, (*entity.Product).IsAvailable)
}

// ListOnPromotion productos con oferta vigente.
func (uc *ProductUseCase) ListOnPromotion(ctx context.Context) ([]*dto.ProductResponse, error) {
	return uc.filtered(ctx, (*entity.Product).OnPromotion)
}

func (uc *ProductUseCase) filtered(ctx context.Context, keep func(*entity.Product) bool) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if keep == nil || keep(p) {
			out = append(out, ToProductResponse(p))
		}
	}
	return out, nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}

// Create da de alta un producto activo. Stock ausente o "" arranca en 1.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Nombre == "" || !in.Precio.Truthy() {
		return nil, domain.NewValidationError("Nombre y precio son obligatorios.")
	}
	stock := defaultCreateStock
	if in.Stock.Present() && !in.Stock.IsEmptyString() {
		stock = in.Stock.Int()
	}
	now := uc.now().UTC()
	p := &entity.Product{
		Name:        in.Nombre,
		Description: in.Descripcion,
		Price:       in.Precio.Decimal(),
		Category:    in.Categoria,
		ImageURL:    in.ImagenURL,
		Colors:      in.Colores.StringList(),
		Sizes:       in.Tamanos.StringList(),
		Stock:       stock,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}

// Update aplica solo las claves presentes. Una oferta ausente del cuerpo nunca se limpia;
// si alguna clave de oferta viene, se normaliza junto con las que ya tenía el producto.
// Los cambios se aplican sobre el registro vigente, sin pisar stock ni oferta escritos en paralelo.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	now := uc.now().UTC()
	return uc.modify(ctx, id, func(p *entity.Product) {
		if in.Nombre.Present() {
			p.Name = in.Nombre.String()
		}
		if in.Descripcion.Present() {
			p.Description = in.Descripcion.String()
		}
		if in.Precio.Present() {
			p.Price = in.Precio.Decimal()
		}
		if in.Categoria.Present() {
			p.Category = in.Categoria.String()
		}
		if in.ImagenURL.Present() {
			p.ImageURL = in.ImagenURL.String()
		}
		if in.Colores.Present() {
			p.Colors = in.Colores.StringList()
		}
		if in.Tamanos.Present() {
			p.Sizes = in.Tamanos.StringList()
		}
		if in.Stock.Present() {
			p.Stock = in.Stock.Int()
		}
		if b, ok := in.Activo.Bool(); ok {
			p.Active = b
		}
		if in.HasPromotion() {
			t, v, label := p.Promotion.Type, p.Promotion.Value, p.Promotion.Label
			if in.OfertaTipo.Present() {
				t = entity.ParsePromotionType(in.OfertaTipo.String())
			}
			if in.OfertaValor.Present() {
				v = in.OfertaValor.Decimal()
			}
			if in.OfertaEtiqueta.Present() {
				label = in.OfertaEtiqueta.String()
			}
			p.Promotion = entity.NewPromotion(t, v, label)
		}
		p.UpdatedAt = now
	})
}

// SetActive fija activo si vino un booleano; si no, lo alterna sobre el valor vigente.
func (uc *ProductUseCase) SetActive(ctx context.Context, id int64, in dto.SetActiveRequest) (*dto.ProductResponse, error) {
	now := uc.now().UTC()
	return uc.modify(ctx, id, func(p *entity.Product) {
		if b, ok := in.Activo.Bool(); ok {
			p.Active = b
		} else {
			p.Active = !p.Active
		}
		p.UpdatedAt = now
	})
}

func (uc *ProductUseCase) modify(ctx context.Context, id int64, fn func(*entity.Product)) (*dto.ProductResponse, error) {
	p, err := uc.repo.Modify(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return ToProductResponse(p), nil
}

// SetStock fija el stock absoluto. No toca la oferta.
func (uc *ProductUseCase) SetStock(ctx context.Context, id int64, in dto.SetStockRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.UpdateStock(ctx, id, in.Stock.Int())
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return ToProductResponse(p), nil
}

// SetPromotion fija o limpia la oferta. Tipo vacío o valor <= 0 limpia los tres campos.
// No toca el stock.
func (uc *ProductUseCase) SetPromotion(ctx context.Context, id int64, in dto.SetPromotionRequest) (*dto.ProductResponse, error) {
	promo := entity.NewPromotion(entity.ParsePromotionType(in.OfertaTipo), in.OfertaValor.Decimal(), in.OfertaEtiqueta)
	p, err := uc.repo.UpdatePromotion(ctx, id, promo)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return ToProductResponse(p), nil
}

// Delete elimina el producto y lo devuelve. Las ventas pasadas conservan el id.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}

func (uc *ProductUseCase) get(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ToProductResponse mapea la entidad a su salida HTTP (montos como número JSON).
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	out := &dto.ProductResponse{
		ID:            p.ID,
		Nombre:        p.Name,
		Descripcion:   p.Description,
		Precio:        p.Price.InexactFloat64(),
		PrecioFinal:   p.EffectivePrice().InexactFloat64(),
		Categoria:     p.Category,
		ImagenURL:     p.ImageURL,
		Colores:       nonNil(p.Colors),
		Tamanos:       nonNil(p.Sizes),
		Stock:         p.Stock,
		Activo:        p.Active,
		CreadoEn:      p.CreatedAt,
		ActualizadoEn: p.UpdatedAt,
	}
	if p.Promotion.IsSet() {
		t := string(p.Promotion.Type)
		v := p.Promotion.Value.InexactFloat64()
		out.OfertaTipo = &t
		out.OfertaValor = &v
		out.OfertaEtiqueta = p.Promotion.Label
		out.OfertaActiva = true
		out.OfertaTexto = p.Promotion.Label
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
