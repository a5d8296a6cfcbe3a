package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment. When env file paths are
// given, the first one that loads wins; otherwise a .env in the working
// directory is tried. A missing file is not an error, the process
// environment alone is enough.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	loaded := false
	for _, path := range envFilePath {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("environment file not loaded", "path", path, "error", err)
			continue
		}
		logger.Info("environment loaded from file", "path", path)
		loaded = true
		break
	}
	if !loaded && len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found, using system environment variables")
		}
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"use_tls", cfg.Server.UseTLS,
		"api_key", maskValue(cfg.Auth.APIKey),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
