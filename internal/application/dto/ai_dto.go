package dto

// ProductDescriptionRequest entrada de POST /api/ia/descripcion-producto.
type ProductDescriptionRequest struct {
	Nombre    string `json:"nombre"`
	Categoria string `json:"categoria"`
	Detalles  string `json:"detalles"`
	Colores   Value  `json:"colores"`
	Tamanos   Value  `json:"tamanos"`
}

// ProductDescriptionResponse ok=false indica que el front debe usar su texto local.
type ProductDescriptionResponse struct {
	OK    bool   `json:"ok"`
	Texto string `json:"texto"`
}

// CampaignDraftRequest entrada de POST /api/ia/campania.
type CampaignDraftRequest struct {
	Idea string `json:"idea"`
	Tipo string `json:"tipo"`
	Tono string `json:"tono"`
}

// CampaignDraftResponse secciones extraídas del texto generado.
type CampaignDraftResponse struct {
	OK       bool   `json:"ok"`
	Titulo   string `json:"titulo"`
	Cuerpo   string `json:"cuerpo"`
	CTA      string `json:"cta"`
	Hashtags string `json:"hashtags"`
}
