package dto

// CreateCustomerRequest entrada para alta de cliente.
type CreateCustomerRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Telefono string `json:"telefono"`
	Zona     string `json:"zona"`
	Notas    string `json:"notas"`
}

// UpdateCustomerRequest solo se aplican los campos presentes.
type UpdateCustomerRequest struct {
	Nombre   Value `json:"nombre"`
	Telefono Value `json:"telefono"`
	Zona     Value `json:"zona"`
	Notas    Value `json:"notas"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Zona     string `json:"zona"`
	Notas    string `json:"notas"`
}
