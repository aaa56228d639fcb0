package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

var _ repository.ResellerRepository = (*ResellerRepo)(nil)

// ResellerRepo implementación de ResellerRepository (usable con pool o tx).
type ResellerRepo struct {
	q Querier
}

// NewResellerRepository construye el adaptador.
func NewResellerRepository(q Querier) *ResellerRepo {
	return &ResellerRepo{q: q}
}

func (r *ResellerRepo) Create(ctx context.Context, in *entity.Reseller) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO resellers (name, phone, zone, active, accepts_whatsapp) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		in.Name, in.Phone, in.Zone, in.Active, in.AcceptsWhatsApp,
	).Scan(&in.ID)
	if err != nil {
		return fmt.Errorf("insert reseller: %w", err)
	}
	return nil
}

func (r *ResellerRepo) GetByID(ctx context.Context, id int64) (*entity.Reseller, error) {
	var x entity.Reseller
	err := r.q.QueryRow(ctx,
		`SELECT id, name, phone, zone, active, accepts_whatsapp FROM resellers WHERE id = $1`, id,
	).Scan(&x.ID, &x.Name, &x.Phone, &x.Zone, &x.Active, &x.AcceptsWhatsApp)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reseller: %w", err)
	}
	return &x, nil
}

func (r *ResellerRepo) List(ctx context.Context) ([]*entity.Reseller, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, phone, zone, active, accepts_whatsapp FROM resellers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list resellers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reseller
	for rows.Next() {
		var x entity.Reseller
		if err := rows.Scan(&x.ID, &x.Name, &x.Phone, &x.Zone, &x.Active, &x.AcceptsWhatsApp); err != nil {
			return nil, fmt.Errorf("scan reseller: %w", err)
		}
		list = append(list, &x)
	}
	return list, rows.Err()
}

func (r *ResellerRepo) Update(ctx context.Context, in *entity.Reseller) error {
	_, err := r.q.Exec(ctx,
		`UPDATE resellers SET name = $2, phone = $3, zone = $4, active = $5, accepts_whatsapp = $6 WHERE id = $1`,
		in.ID, in.Name, in.Phone, in.Zone, in.Active, in.AcceptsWhatsApp,
	)
	if err != nil {
		return fmt.Errorf("update reseller: %w", err)
	}
	return nil
}
