package buildCFG

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/config"
)

type ServerConfig struct {
	Port string
}

type StoreConfig struct {
	Path string
}

type AdminConfig struct {
	Pass string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func BuildServerConfig(cfg *config.Config, log *zerolog.Logger) ServerConfig {
	port := getEnv("PORT", cfg.GetString("server.port"))
	if port == "" {
		port = "8080"
	}
	return ServerConfig{Port: port}
}

func BuildStoreConfig(cfg *config.Config, log *zerolog.Logger) StoreConfig {
	path := getEnv("DB_PATH", cfg.GetString("storage.path"))
	if path == "" {
		path = "./data.sqlite3"
	}
	return StoreConfig{Path: path}
}

func BuildAdminConfig(cfg *config.Config, log *zerolog.Logger) AdminConfig {
	pass := getEnv("ADMIN_PASS", cfg.GetString("admin.pass"))
	if pass == "" {
		log.Warn().Msg("admin pass is empty, admin endpoints will reject all requests")
	}
	return AdminConfig{Pass: pass}
}

func BuildCORSConfig(cfg *config.Config, log *zerolog.Logger) CORSConfig {
	raw := getEnv("ALLOWED_ORIGINS", cfg.GetString("cors.allowed_origins"))

	origins := make([]string, 0)
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		log.Warn().Msg("no allowed origins configured, permitting all origins")
	}
	return CORSConfig{AllowedOrigins: origins}
}

// Environment variables take precedence over config.yaml values.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
