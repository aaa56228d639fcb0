package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, AIProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, 20*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "/uploads", cfg.Media.PublicURL)
	assert.False(t, cfg.JWT.AuthRequired)
}

func TestFromViper_HTTPPortGanaSobrePort(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "4000")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.HTTP.Port)

	v.Set("HTTP_PORT", 8081)
	cfg, err = fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.HTTP.Port)
}

func TestFromViper_ValoresInvalidos(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "mongo")
	_, err := fromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("AI_PROVIDER", "ollama")
	_, err = fromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("AUTH_REQUIRED", true)
	_, err = fromViper(v)
	assert.Error(t, err, "AUTH_REQUIRED sin secreto no debe arrancar")
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "bazar", Password: "p@ss:w/rd", DBName: "punto_bazar", SSLMode: "disable"}
	assert.Equal(t, "postgres://bazar:p%40ss%3Aw%2Frd@db:5432/punto_bazar?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
