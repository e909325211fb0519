package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the backend.
type ServiceConfig struct {
	Port           string
	AppEnv         string
	AllowedOrigins []string

	NominatimURL   string
	OSRMURL        string
	GeocodeTimeout time.Duration
	RoutingTimeout time.Duration

	GroqAPIKey  string
	GroqURL     string
	ChatTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:8080,http://localhost:5173,*")
	v.SetDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org/search")
	v.SetDefault("OSRM_URL", "https://router.project-osrm.org/route/v1/driving")
	v.SetDefault("GEOCODE_TIMEOUT", "10s")
	v.SetDefault("ROUTING_TIMEOUT", "15s")
	v.SetDefault("GROQ_API_KEY", "")
	v.SetDefault("GROQ_URL", "https://api.groq.com/openai/v1/chat/completions")
	v.SetDefault("CHAT_TIMEOUT", "30s")

	return &ServiceConfig{
		Port:           normalizePort(v.GetString("PORT")),
		AppEnv:         v.GetString("APP_ENV"),
		AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
		NominatimURL:   v.GetString("NOMINATIM_URL"),
		OSRMURL:        v.GetString("OSRM_URL"),
		GeocodeTimeout: v.GetDuration("GEOCODE_TIMEOUT"),
		RoutingTimeout: v.GetDuration("ROUTING_TIMEOUT"),
		GroqAPIKey:     v.GetString("GROQ_API_KEY"),
		GroqURL:        v.GetString("GROQ_URL"),
		ChatTimeout:    v.GetDuration("CHAT_TIMEOUT"),
	}, nil
}

// normalizePort accepts "8080" or ":8080" and returns a listen address.
func normalizePort(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// splitOrigins parses a comma-separated origin list, dropping empty entries.
func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
