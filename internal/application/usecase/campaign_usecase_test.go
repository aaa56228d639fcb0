package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/application/usecase"
	"github.com/jhoicas/punto-bazar-api/internal/domain"
	"github.com/jhoicas/punto-bazar-api/internal/infrastructure/memory"
)

func TestCampaignUseCase_CrearActivaDesactivaLasDemas(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCampaignUseCase(memory.NewCampaignRepository(memory.NewStore()))

	a, err := uc.Create(ctx, dto.CreateCampaignRequest{Titulo: "A", Activa: dto.V(true)})
	require.NoError(t, err)
	b, err := uc.Create(ctx, dto.CreateCampaignRequest{Texto: "B", Activa: dto.V(true)})
	require.NoError(t, err)

	list, _ := uc.List(ctx)
	for _, c := range list {
		assert.Equal(t, c.ID == b.ID, c.Activa)
	}

	today, err := uc.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, b.ID, today.ID)

	_, err = uc.Activate(ctx, a.ID)
	require.NoError(t, err)
	today, _ = uc.Today(ctx)
	assert.Equal(t, a.ID, today.ID)
}

func TestCampaignUseCase_ValidaTituloOTexto(t *testing.T) {
	uc := usecase.NewCampaignUseCase(memory.NewCampaignRepository(memory.NewStore()))
	_, err := uc.Create(context.Background(), dto.CreateCampaignRequest{})
	require.Error(t, err)
	assert.Equal(t, "Se necesita al menos título o texto.", err.Error())
}

func TestCampaignUseCase_TodaySinActivasDevuelveNil(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCampaignUseCase(memory.NewCampaignRepository(memory.NewStore()))
	_, _ = uc.Create(ctx, dto.CreateCampaignRequest{Titulo: "inactiva"})

	today, err := uc.Today(ctx)
	require.NoError(t, err)
	assert.Nil(t, today)
}

func TestCampaignUseCase_ActivarYBorrarInexistente(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCampaignUseCase(memory.NewCampaignRepository(memory.NewStore()))
	_, err := uc.Activate(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Delete(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
