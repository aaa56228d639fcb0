package dto

// ErrorResponse cuerpo de error HTTP. El front solo lee mensaje.
type ErrorResponse struct {
	Code    string `json:"code"`
	Mensaje string `json:"mensaje"`
}

// OKResponse respuesta mínima de éxito.
type OKResponse struct {
	OK bool `json:"ok"`
}
