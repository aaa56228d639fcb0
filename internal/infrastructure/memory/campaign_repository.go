package memory

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

var _ repository.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository implementación en memoria. La exclusividad de la campaña activa
// se aplica bajo el mismo lock que la escritura.
type CampaignRepository struct {
	s *Store
}

// NewCampaignRepository construye el repositorio.
func NewCampaignRepository(s *Store) *CampaignRepository {
	return &CampaignRepository{s: s}
}

func campaignID(c *entity.Campaign) int64 { return c.ID }

func (r *CampaignRepository) Create(_ context.Context, in *entity.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	in.ID = r.s.nextCampaign
	r.s.nextCampaign++
	if in.Active {
		r.deactivateAll()
	}
	c := *in
	r.s.campaigns = append(r.s.campaigns, &c)
	return nil
}

func (r *CampaignRepository) GetByID(_ context.Context, id int64) (*entity.Campaign, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.campaigns, id, campaignID)
	if i < 0 {
		return nil, nil
	}
	c := *r.s.campaigns[i]
	return &c, nil
}

func (r *CampaignRepository) List(_ context.Context) ([]*entity.Campaign, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Campaign, 0, len(r.s.campaigns))
	for _, x := range r.s.campaigns {
		c := *x
		out = append(out, &c)
	}
	return out, nil
}

// Activate no toca nada si id no existe.
func (r *CampaignRepository) Activate(_ context.Context, id int64) (*entity.Campaign, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.campaigns, id, campaignID)
	if i < 0 {
		return nil, nil
	}
	r.deactivateAll()
	r.s.campaigns[i].Active = true
	c := *r.s.campaigns[i]
	return &c, nil
}

func (r *CampaignRepository) LatestActive(_ context.Context) (*entity.Campaign, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var best *entity.Campaign
	for _, c := range r.s.campaigns {
		if c.Active && (best == nil || c.NewerThan(best)) {
			best = c
		}
	}
	if best == nil {
		return nil, nil
	}
	c := *best
	return &c, nil
}

func (r *CampaignRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := indexOf(r.s.campaigns, id, campaignID); i >= 0 {
		r.s.campaigns = append(r.s.campaigns[:i], r.s.campaigns[i+1:]...)
	}
	return nil
}

// deactivateAll requiere mu tomado.
func (r *CampaignRepository) deactivateAll() {
	for _, c := range r.s.campaigns {
		c.Active = false
	}
}
