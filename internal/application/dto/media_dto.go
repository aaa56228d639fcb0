package dto

// UploadResponse salida de POST /api/upload-imagen.
type UploadResponse struct {
	OK  bool   `json:"ok"`
	URL string `json:"url"`
}
