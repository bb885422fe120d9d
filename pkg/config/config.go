package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente y del backend simulado
// (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Storage StorageConfig
	Mock    MockConfig
	JWT     JWTConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	Currency string // ISO 4217 para mostrar totales (CNY, USD, ...)
	Language string // etiqueta BCP 47 para formatear montos
}

// APIConfig configuración del gateway HTTP.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
	LoginPath      string // una respuesta 401 sobre esta ruta es credencial rechazada, no sesión expirada
}

// Timeout devuelve el timeout de cada llamada como time.Duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StorageConfig ubicación del almacenamiento persistente de la sesión.
type StorageConfig struct {
	Path string
}

// MockConfig servidor simulado (cmd/mockapi).
type MockConfig struct {
	Host   string
	Port   int
	Prefix string
}

// Addr devuelve la dirección de escucha (host:port).
func (c MockConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de los tokens emitidos por el backend simulado.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, STORAGE_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "mall-client"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			Currency: getString(v, "CURRENCY", "CNY"),
			Language: getString(v, "LANGUAGE", "en"),
		},
		API: APIConfig{
			BaseURL:        strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:8080/api"), "/"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 10),
			LoginPath:      getString(v, "API_LOGIN_PATH", "/auth/login"),
		},
		Storage: StorageConfig{
			Path: getString(v, "STORAGE_PATH", defaultStoragePath()),
		},
		Mock: MockConfig{
			Host:   getString(v, "MOCK_HOST", "0.0.0.0"),
			Port:   getInt(v, "MOCK_PORT", 8080),
			Prefix: getString(v, "MOCK_PREFIX", "/api"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "mall-mock-secret"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 1440),
			Issuer:     getString(v, "JWT_ISSUER", "mall-mock"),
		},
	}

	if cfg.API.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("config: API_TIMEOUT_SECONDS debe ser positivo, recibido %d", cfg.API.TimeoutSeconds)
	}
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL vacío")
	}
	return cfg, nil
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".mall", "session.json")
	}
	return filepath.Join(home, ".mall", "session.json")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
