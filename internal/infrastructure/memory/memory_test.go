package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/infrastructure/memory"
)

func TestProductRepository_IdsSecuencialesYCopias(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository(memory.NewStore())

	a := &entity.Product{Name: "Taza", Colors: []string{"rojo"}}
	b := &entity.Product{Name: "Plato"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	got.Colors[0] = "azul"
	got.Name = "cambiado"

	again, _ := repo.GetByID(ctx, 1)
	assert.Equal(t, "Taza", again.Name, "el repo devuelve copias")
	assert.Equal(t, []string{"rojo"}, again.Colors)
}

func TestProductRepository_IdNoSeReutilizaTrasBorrar(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository(memory.NewStore())
	a := &entity.Product{Name: "A"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Delete(ctx, a.ID))

	b := &entity.Product{Name: "B"}
	require.NoError(t, repo.Create(ctx, b))
	assert.Equal(t, int64(2), b.ID)
}

func TestProductRepository_DecrementStockConPisoCero(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository(memory.NewStore())
	p := &entity.Product{Name: "Vaso", Stock: 3}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.DecrementStock(ctx, p.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)

	missing, err := repo.DecrementStock(ctx, 99, 1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepository_ModifyConservaCamposNoTocados(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository(memory.NewStore())
	p := &entity.Product{Name: "Vaso", Stock: 3, Active: true}
	require.NoError(t, repo.Create(ctx, p))
	_, err := repo.DecrementStock(ctx, p.ID, 1)
	require.NoError(t, err)

	got, err := repo.Modify(ctx, p.ID, func(x *entity.Product) { x.Name = "Vaso grande" })
	require.NoError(t, err)
	assert.Equal(t, "Vaso grande", got.Name)
	assert.Equal(t, 2, got.Stock)

	got.Stock = 99
	stored, _ := repo.GetByID(ctx, p.ID)
	assert.Equal(t, 2, stored.Stock, "Modify devuelve una copia")

	missing, err := repo.Modify(ctx, 99, func(*entity.Product) { t.Fatal("no debe llamarse") })
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCampaignRepository_UnaSolaActiva(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCampaignRepository(memory.NewStore())
	now := time.Now()

	a := &entity.Campaign{Title: "A", Active: true, CreatedAt: now}
	b := &entity.Campaign{Title: "B", Active: true, CreatedAt: now.Add(time.Second)}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	got, _ := repo.GetByID(ctx, a.ID)
	assert.False(t, got.Active, "crear B activa desactiva A")

	_, err := repo.Activate(ctx, a.ID)
	require.NoError(t, err)
	list, _ := repo.List(ctx)
	active := 0
	for _, c := range list {
		if c.Active {
			active++
			assert.Equal(t, a.ID, c.ID)
		}
	}
	assert.Equal(t, 1, active)

	none, err := repo.Activate(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, none)
	latest, _ := repo.LatestActive(ctx)
	assert.Equal(t, a.ID, latest.ID, "activar un id inexistente no toca nada")
}

func TestCampaignRepository_LatestActiveSinActivas(t *testing.T) {
	repo := memory.NewCampaignRepository(memory.NewStore())
	got, err := repo.LatestActive(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_AdminsSembrados(t *testing.T) {
	users, err := memory.HashAdmins(memory.DefaultAdmins, bcrypt.MinCost)
	require.NoError(t, err)
	repo := memory.NewUserRepository(users)

	u, err := repo.FindByUsername(context.Background(), "ricardo")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Ricardo", u.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("1234")))

	missing, err := repo.FindByUsername(context.Background(), "nadie")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
