package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
// Every field has a working fallback so a bare `go run ./cmd/server`
// comes up without any setup.
type Config struct {
	DBDSN         string
	SessionSecret string
	UploadDir     string
	Port          string
	AdminPassword string

	// MaxUploadBytes caps multipart memory per request.
	MaxUploadBytes int64

	// TemplatesGlob is relative to the working directory; tests override it.
	TemplatesGlob string
}

// Load reads .env from the usual places (repo root, or one/two levels up
// when running from cmd/server) and applies env overrides.
func Load() Config {
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	return Config{
		DBDSN:          getenv("DB_DSN", "host=localhost user=postgres password=postgres dbname=gothicshop port=5432 sslmode=disable"),
		SessionSecret:  getenv("SESSION_SECRET", "gothic_vibe_secret_key_2023"),
		UploadDir:      getenv("UPLOAD_DIR", "static/uploads"),
		Port:           getenv("APP_PORT", "8080"),
		AdminPassword:  getenv("ADMIN_PASSWORD", "Fatiha123@#"),
		MaxUploadBytes: 16 << 20,
		TemplatesGlob:  "internal/web/templates/**/*.tmpl",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
