package dto

// LoginRequest entrada para login del back-office.
type LoginRequest struct {
	Usuario  string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida del login. Token solo si JWT_SECRET está configurado.
type LoginResponse struct {
	OK     bool   `json:"ok"`
	Nombre string `json:"nombre"`
	Token  string `json:"token,omitempty"`
}
