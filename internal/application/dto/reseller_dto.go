package dto

// CreateResellerRequest entrada para alta de revendedor.
type CreateResellerRequest struct {
	Nombre         string `json:"nombre" validate:"required"`
	Telefono       string `json:"telefono"`
	Zona           string `json:"zona"`
	AceptaWhatsApp Value  `json:"acepta_whatsapp"`
}

// SetActiveRequest cuerpo de PATCH .../activo y .../activa. Sin booleano, se alterna.
type SetActiveRequest struct {
	Activo Value `json:"activo"`
}

// ResellerResponse salida de un revendedor.
type ResellerResponse struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	Telefono       string `json:"telefono"`
	Zona           string `json:"zona"`
	Activo         bool   `json:"activo"`
	AceptaWhatsApp bool   `json:"acepta_whatsapp"`
}
