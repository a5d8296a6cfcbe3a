// Package config loads application configuration from the environment, with
// optional .env file support.
package config

import "time"

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host        string `envconfig:"HOST" default:"0.0.0.0"`
	Port        int    `envconfig:"PORT" default:"3000"`
	UseTLS      bool   `envconfig:"USE_TLS" default:"false"`
	TLSCertFile string `envconfig:"TLS_CERT_FILE" default:"./cert/cert.pem"`
	TLSKeyFile  string `envconfig:"TLS_KEY_FILE" default:"./cert/key.pem"`
}

// AuthConfig holds the API key every /accounts request must present.
type AuthConfig struct {
	APIKey string `envconfig:"API_KEY" required:"true"`
}

// RateLimitConfig bounds the request rate per client IP.
type RateLimitConfig struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// App is the root configuration for the accounts API.
type App struct {
	Env       string          `envconfig:"ENV"`
	Server    ServerConfig    `envconfig:"SERVER"`
	Auth      AuthConfig      `envconfig:"AUTH"`
	RateLimit RateLimitConfig `envconfig:"RATE_LIMIT"`
}
