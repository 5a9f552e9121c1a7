package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	ServerPort int

	// Redis
	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int

	// Admission pipeline
	RateLimit      int
	RateWindow     time.Duration
	MaxBodyBytes   int64
	AllowedOrigins []string

	// Salebot upstream
	SalebotBaseURL         string
	SalebotAPIKey          string
	SalebotGroupID         string
	SalebotGroupIDVK       string
	UpstreamConnectTimeout time.Duration
	UpstreamTimeout        time.Duration
	UpstreamErrorLog       string
}

// defaultOrigins is the production allow-list: the site itself, the VK
// iframe hosts and the local-development hosts.
var defaultOrigins = []string{
	"https://egorsokolov.ru",
	"https://vk.com",
	"https://m.vk.com",
	"http://localhost:8080",
	"http://192.168.0.44:8080",
}

func Load() (*Config, error) {
	viper.Reset()

	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("")

	// Reads .env when present; env vars alone are fine too.
	_ = viper.ReadInConfig()

	viper.SetDefault("RATE_LIMIT", 10)
	viper.SetDefault("RATE_WINDOW", "60s")
	viper.SetDefault("MAX_BODY_BYTES", 16384)
	viper.SetDefault("SALEBOT_BASE_URL", "https://chatter.salebot.pro")
	viper.SetDefault("UPSTREAM_CONNECT_TIMEOUT", "5s")
	viper.SetDefault("UPSTREAM_TIMEOUT", "10s")
	viper.SetDefault("UPSTREAM_ERROR_LOG", "api-errors.log")

	cfg := &Config{
		ServerPort:             viper.GetInt("SERVER_PORT"),
		RedisHost:              viper.GetString("REDIS_HOST"),
		RedisPort:              viper.GetInt("REDIS_PORT"),
		RedisPassword:          viper.GetString("REDIS_PASSWORD"),
		RedisDB:                viper.GetInt("REDIS_DB"),
		RateLimit:              viper.GetInt("RATE_LIMIT"),
		RateWindow:             viper.GetDuration("RATE_WINDOW"),
		MaxBodyBytes:           viper.GetInt64("MAX_BODY_BYTES"),
		AllowedOrigins:         parseOrigins(viper.GetString("ALLOWED_ORIGINS")),
		SalebotBaseURL:         strings.TrimRight(viper.GetString("SALEBOT_BASE_URL"), "/"),
		SalebotAPIKey:          viper.GetString("SALEBOT_API_KEY"),
		SalebotGroupID:         viper.GetString("SALEBOT_GROUP_ID"),
		SalebotGroupIDVK:       viper.GetString("SALEBOT_GROUP_ID_VK"),
		UpstreamConnectTimeout: viper.GetDuration("UPSTREAM_CONNECT_TIMEOUT"),
		UpstreamTimeout:        viper.GetDuration("UPSTREAM_TIMEOUT"),
		UpstreamErrorLog:       viper.GetString("UPSTREAM_ERROR_LOG"),
	}

	// Required fields. Upstream credentials are deliberately not
	// required here: a missing key fails the forwarding request with
	// 500, not the whole service.
	if cfg.ServerPort <= 0 {
		return nil, fmt.Errorf("SERVER_PORT is required and must be positive")
	}
	if cfg.RedisHost == "" {
		return nil, fmt.Errorf("REDIS_HOST is required")
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT must be positive")
	}
	if cfg.RateWindow <= 0 {
		return nil, fmt.Errorf("RATE_WINDOW must be positive")
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	if cfg.UpstreamConnectTimeout <= 0 || cfg.UpstreamTimeout <= 0 {
		return nil, fmt.Errorf("upstream timeouts must be positive")
	}

	return cfg, nil
}

// parseOrigins splits a comma-separated allow-list. An empty value keeps
// the production defaults.
func parseOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return defaultOrigins
	}

	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return defaultOrigins
	}
	return origins
}
