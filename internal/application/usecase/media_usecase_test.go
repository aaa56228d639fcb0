package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/punto-bazar-api/internal/application/usecase"
	"github.com/jhoicas/punto-bazar-api/internal/domain"
)

type fakeStorage struct {
	keys []string
}

func (f *fakeStorage) Save(_ context.Context, key, _ string, _ []byte) (string, error) {
	f.keys = append(f.keys, key)
	return "/uploads/" + key, nil
}

func TestMediaUseCase_UploadNombreUnicoConExtension(t *testing.T) {
	st := &fakeStorage{}
	uc := usecase.NewMediaUseCase(st)

	a, err := uc.Upload(context.Background(), "foto.JPG", "image/jpeg", []byte("x"))
	require.NoError(t, err)
	b, err := uc.Upload(context.Background(), "foto.JPG", "image/jpeg", []byte("x"))
	require.NoError(t, err)

	assert.True(t, a.OK)
	assert.True(t, strings.HasPrefix(a.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(a.URL, ".jpg"))
	assert.NotEqual(t, a.URL, b.URL)
}

func TestMediaUseCase_SinExtensionUsaJpg(t *testing.T) {
	st := &fakeStorage{}
	out, err := usecase.NewMediaUseCase(st).Upload(context.Background(), "foto", "image/jpeg", []byte("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.URL, ".jpg"), out.URL)
	require.Len(t, st.keys, 1)
	assert.True(t, strings.HasSuffix(st.keys[0], ".jpg"))
}

func TestMediaUseCase_ArchivoVacioSeAcepta(t *testing.T) {
	st := &fakeStorage{}
	out, err := usecase.NewMediaUseCase(st).Upload(context.Background(), "vacia.png", "image/png", []byte{})
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.True(t, strings.HasSuffix(out.URL, ".png"), out.URL)
}

func TestMediaUseCase_SinArchivo(t *testing.T) {
	uc := usecase.NewMediaUseCase(&fakeStorage{})
	_, err := uc.Upload(context.Background(), "x.png", "image/png", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "No se recibió archivo.", err.Error())
}
