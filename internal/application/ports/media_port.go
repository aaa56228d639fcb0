package ports

import "context"

// MediaStorage puerto de salida hacia el almacén de imágenes (bucket/CDN).
// La única promesa: aceptar un archivo y devolver una URL durable.
type MediaStorage interface {
	Save(ctx context.Context, key, contentType string, data []byte) (url string, err error)
}
