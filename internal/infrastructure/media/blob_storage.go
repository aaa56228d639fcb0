package media

import (
	"context"
	"fmt"
	"os"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/jhoicas/punto-bazar-api/internal/application/ports"
	"github.com/jhoicas/punto-bazar-api/pkg/config"
)

var _ ports.MediaStorage = (*BlobStorage)(nil)

// BlobStorage guarda imágenes en un bucket de gocloud.dev (archivo local, S3 o GCS).
type BlobStorage struct {
	bucket    *blob.Bucket
	publicURL string
}

// NewBlobStorage envuelve un bucket ya abierto. publicURL es el prefijo con el que se sirven las claves.
func NewBlobStorage(bucket *blob.Bucket, publicURL string) *BlobStorage {
	return &BlobStorage{bucket: bucket, publicURL: publicURL}
}

// Open abre el bucket de MEDIA_BUCKET_URL o, si no hay, un fileblob sobre MEDIA_DIR (lo crea si falta).
func Open(ctx context.Context, cfg config.MediaConfig) (*BlobStorage, error) {
	if cfg.BucketURL != "" {
		b, err := blob.OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, fmt.Errorf("media: abrir bucket %s: %w", cfg.BucketURL, err)
		}
		return NewBlobStorage(b, cfg.PublicURL), nil
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("media: crear %s: %w", cfg.Dir, err)
	}
	b, err := fileblob.OpenBucket(cfg.Dir, nil)
	if err != nil {
		return nil, fmt.Errorf("media: abrir %s: %w", cfg.Dir, err)
	}
	return NewBlobStorage(b, cfg.PublicURL), nil
}

// Save escribe el objeto y devuelve publicURL/key.
func (s *BlobStorage) Save(ctx context.Context, key, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", fmt.Errorf("media: escribir %s: %w", key, err)
	}
	return s.publicURL + "/" + key, nil
}

// Close libera el bucket.
func (s *BlobStorage) Close() error {
	return s.bucket.Close()
}
