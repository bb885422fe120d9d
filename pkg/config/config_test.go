package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.API.TimeoutSeconds)
	assert.Equal(t, "/auth/login", cfg.API.LoginPath)
	assert.Equal(t, "0.0.0.0:8080", cfg.Mock.Addr())
	assert.NotEmpty(t, cfg.Storage.Path)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("API_BASE_URL", "https://mall.example.com/api/v1/")
	v.Set("API_TIMEOUT_SECONDS", "3")
	v.Set("STORAGE_PATH", "/tmp/mall.json")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "https://mall.example.com/api/v1", cfg.API.BaseURL, "la barra final se recorta")
	assert.Equal(t, 3, cfg.API.TimeoutSeconds)
	assert.Equal(t, "3s", cfg.API.Timeout().String())
	assert.Equal(t, "/tmp/mall.json", cfg.Storage.Path)
}

func TestFromViper_TimeoutInvalido(t *testing.T) {
	v := viper.New()
	v.Set("API_TIMEOUT_SECONDS", 0)

	_, err := fromViper(v)
	assert.Error(t, err)
}
