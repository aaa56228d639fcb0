package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, price, category, image_url, colors, sizes, stock, active,
	promo_type, promo_value, promo_label, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	var promoType string
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL, &p.Colors, &p.Sizes,
		&p.Stock, &p.Active, &promoType, &p.Promotion.Value, &p.Promotion.Label, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Promotion.Type = entity.PromotionType(promoType)
	return &p, nil
}

// getOne escanea una fila; ErrNoRows → (nil, nil).
func getOne(row pgx.Row, op string) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Create inserta y asigna el id desde la secuencia BIGSERIAL.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO products (name, description, price, category, image_url, colors, sizes, stock, active,
			promo_type, promo_value, promo_label, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		p.Name, p.Description, p.Price, p.Category, p.ImageURL, textArray(p.Colors), textArray(p.Sizes),
		p.Stock, p.Active, string(p.Promotion.Type), p.Promotion.Value, p.Promotion.Label, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return getOne(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id), "get product")
}

// List todos los productos por id ascendente.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Modify bloquea la fila (FOR UPDATE), aplica fn y escribe el registro dentro de la misma
// transacción (savepoint si q ya es una tx).
func (r *ProductRepo) Modify(ctx context.Context, id int64, fn func(*entity.Product)) (*entity.Product, error) {
	var out *entity.Product
	err := pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		p, err := getOne(tx.QueryRow(ctx,
			`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id), "lock product")
		if err != nil || p == nil {
			return err
		}
		fn(p)
		out, err = getOne(tx.QueryRow(ctx, `
			UPDATE products SET name = $2, description = $3, price = $4, category = $5, image_url = $6,
				colors = $7, sizes = $8, stock = $9, active = $10, promo_type = $11, promo_value = $12,
				promo_label = $13, updated_at = $14
			WHERE id = $1 RETURNING `+productColumns,
			p.ID, p.Name, p.Description, p.Price, p.Category, p.ImageURL, textArray(p.Colors), textArray(p.Sizes),
			p.Stock, p.Active, string(p.Promotion.Type), p.Promotion.Value, p.Promotion.Label, p.UpdatedAt,
		), "update product")
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStock fija el stock sin tocar la oferta.
func (r *ProductRepo) UpdateStock(ctx context.Context, id int64, stock int) (*entity.Product, error) {
	return getOne(r.q.QueryRow(ctx,
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1 RETURNING `+productColumns,
		id, stock,
	), "update product stock")
}

// UpdatePromotion fija la oferta sin tocar el stock.
func (r *ProductRepo) UpdatePromotion(ctx context.Context, id int64, promo entity.Promotion) (*entity.Product, error) {
	return getOne(r.q.QueryRow(ctx,
		`UPDATE products SET promo_type = $2, promo_value = $3, promo_label = $4, updated_at = now()
		 WHERE id = $1 RETURNING `+productColumns,
		id, string(promo.Type), promo.Value, promo.Label,
	), "update product promotion")
}

// DecrementStock descuenta con piso en 0 en un solo UPDATE. Corre en su propio savepoint
// (o transacción, si q es el pool) para que un fallo no aborte la transacción de la venta.
func (r *ProductRepo) DecrementStock(ctx context.Context, id int64, qty int) (*entity.Product, error) {
	var p *entity.Product
	err := pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		var err error
		p, err = getOne(tx.QueryRow(ctx,
			`UPDATE products SET stock = GREATEST(stock - $2, 0), updated_at = now() WHERE id = $1 RETURNING `+productColumns,
			id, qty,
		), "decrement product stock")
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Delete elimina el producto; las ventas conservan el id.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
