package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env and optionally a file).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Store   StoreConfig
	Catalog CatalogConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig settings for the storefront HTTP server.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig settings for the remote delivery backend.
type BackendConfig struct {
	BaseURL       string        // single origin per deployment
	Timeout       time.Duration // per-request timeout
	AuthRetryMax  int           // attempts for /auth/check when rate-limited
	AuthRetryWait time.Duration // delay between those attempts
}

// StoreConfig settings for the durable local key-value store.
type StoreConfig struct {
	Path string // JSON file path; the localStorage stand-in
}

// CatalogConfig page sizes for the browsing surfaces.
type CatalogConfig struct {
	MenuPageSize   int // recommended-items grid
	OrdersPageSize int // order-history list
	ServerPaged    bool
}

// Load reads configuration from environment variables (and optionally a file).
// Env vars take priority. Expected names: APP_ENV, HTTP_PORT, BACKEND_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional configuration file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore if missing

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignore if missing

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "fooddelivery-storefront"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL:       getString(v, "BACKEND_URL", "http://localhost:8080"),
			Timeout:       time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 10)) * time.Second,
			AuthRetryMax:  getInt(v, "BACKEND_AUTH_RETRY_MAX", 3),
			AuthRetryWait: time.Duration(getInt(v, "BACKEND_AUTH_RETRY_MS", 500)) * time.Millisecond,
		},
		Store: StoreConfig{
			Path: getString(v, "STORE_PATH", "./data/localstore.json"),
		},
		Catalog: CatalogConfig{
			MenuPageSize:   getInt(v, "MENU_PAGE_SIZE", 5),
			OrdersPageSize: getInt(v, "ORDERS_PAGE_SIZE", 4),
			ServerPaged:    getBool(v, "CATALOG_SERVER_PAGED", false),
		},
	}

	return cfg, nil
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
