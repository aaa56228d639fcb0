package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/punto-bazar-api/internal/application/auth"
	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/domain"
	"github.com/jhoicas/punto-bazar-api/internal/infrastructure/memory"
	"github.com/jhoicas/punto-bazar-api/pkg/jwt"
)

func newAuth(t *testing.T, secret string) *auth.AuthUseCase {
	t.Helper()
	users, err := memory.HashAdmins(memory.DefaultAdmins, bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewAuthUseCase(memory.NewUserRepository(users), auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"})
}

func TestLogin_CredencialesValidasSinSecret(t *testing.T) {
	out, err := newAuth(t, "").Login(context.Background(), dto.LoginRequest{Usuario: "ricardo", Password: "1234"})
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "Ricardo", out.Nombre)
	assert.Empty(t, out.Token)
}

func TestLogin_ConSecretEmiteToken(t *testing.T) {
	out, err := newAuth(t, "s3cr3t").Login(context.Background(), dto.LoginRequest{Usuario: "eliseo", Password: "1234"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := jwt.Parse("s3cr3t", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "eliseo", claims.Username)
	assert.Equal(t, "Eliseo", claims.Name)
}

func TestLogin_ClaveIncorrectaOUsuarioInexistente(t *testing.T) {
	uc := newAuth(t, "")
	_, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "ricardo", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Usuario: "nadie", Password: "1234"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(context.Background(), dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
