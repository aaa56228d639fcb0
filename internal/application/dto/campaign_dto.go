package dto

import "time"

// CreateCampaignRequest al menos título o texto.
type CreateCampaignRequest struct {
	Titulo string `json:"titulo" validate:"required_without=Texto"`
	Texto  string `json:"texto" validate:"required_without=Titulo"`
	Activa Value  `json:"activa"`
}

// CampaignResponse salida de una campaña.
type CampaignResponse struct {
	ID       int64     `json:"id"`
	Titulo   string    `json:"titulo"`
	Texto    string    `json:"texto"`
	Activa   bool      `json:"activa"`
	CreadaEn time.Time `json:"creada_en"`
}
