package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

// ErrConcurrentActivation otra activación ganó la carrera contra el índice único de campaña activa.
var ErrConcurrentActivation = errors.New("otra campaña se activó en paralelo")

// CampaignRepo implementación de CampaignRepository. La exclusividad la garantiza el índice
// parcial campaigns_single_active; desactivar y activar van en la misma transacción.
type CampaignRepo struct {
	q Querier
}

// NewCampaignRepository construye el adaptador.
func NewCampaignRepository(q Querier) *CampaignRepo {
	return &CampaignRepo{q: q}
}

func scanCampaign(row rowScanner) (*entity.Campaign, error) {
	var c entity.Campaign
	if err := row.Scan(&c.ID, &c.Title, &c.Text, &c.Active, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) Create(ctx context.Context, c *entity.Campaign) error {
	err := pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		if c.Active {
			if _, err := tx.Exec(ctx, `UPDATE campaigns SET active = FALSE WHERE active`); err != nil {
				return err
			}
		}
		return tx.QueryRow(ctx,
			`INSERT INTO campaigns (title, text, active, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
			c.Title, c.Text, c.Active, c.CreatedAt,
		).Scan(&c.ID)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConcurrentActivation
		}
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepo) GetByID(ctx context.Context, id int64) (*entity.Campaign, error) {
	c, err := scanCampaign(r.q.QueryRow(ctx,
		`SELECT id, title, text, active, created_at FROM campaigns WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return c, nil
}

func (r *CampaignRepo) List(ctx context.Context) ([]*entity.Campaign, error) {
	rows, err := r.q.Query(ctx, `SELECT id, title, text, active, created_at FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()
	var list []*entity.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Activate bloquea la fila, desactiva las demás y activa id. Si id no existe no toca nada.
func (r *CampaignRepo) Activate(ctx context.Context, id int64) (*entity.Campaign, error) {
	var out *entity.Campaign
	err := pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT TRUE FROM campaigns WHERE id = $1 FOR UPDATE`, id).Scan(&exists); err != nil {
			if isNoRows(err) {
				return nil
			}
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE campaigns SET active = FALSE WHERE active AND id <> $1`, id); err != nil {
			return err
		}
		c, err := scanCampaign(tx.QueryRow(ctx,
			`UPDATE campaigns SET active = TRUE WHERE id = $1 RETURNING id, title, text, active, created_at`, id))
		if err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConcurrentActivation
		}
		return nil, fmt.Errorf("activate campaign: %w", err)
	}
	return out, nil
}

func (r *CampaignRepo) LatestActive(ctx context.Context) (*entity.Campaign, error) {
	c, err := scanCampaign(r.q.QueryRow(ctx,
		`SELECT id, title, text, active, created_at FROM campaigns WHERE active
		 ORDER BY created_at DESC, id DESC LIMIT 1`))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest active campaign: %w", err)
	}
	return c, nil
}

func (r *CampaignRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	return nil
}
