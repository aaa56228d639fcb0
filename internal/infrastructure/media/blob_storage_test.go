package media_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"github.com/jhoicas/punto-bazar-api/internal/infrastructure/media"
	"github.com/jhoicas/punto-bazar-api/pkg/config"
)

func TestBlobStorage_SaveDevuelveURLPublica(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	s := media.NewBlobStorage(bucket, "/uploads")
	defer s.Close()

	url, err := s.Save(ctx, "abc.png", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc.png", url)

	data, err := bucket.ReadAll(ctx, "abc.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestOpen_DirectorioLocal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := media.Open(context.Background(), config.MediaConfig{Dir: dir, PublicURL: "/uploads"})
	require.NoError(t, err)
	defer s.Close()

	url, err := s.Save(context.Background(), "foto.jpg", "image/jpeg", []byte("jpg"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/foto.jpg", url)

	got, err := os.ReadFile(filepath.Join(dir, "foto.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpg"), got)
}
