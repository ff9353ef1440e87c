package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// DefaultCORSOrigin is the local development frontend address.
const DefaultCORSOrigin = "http://localhost:5173"

// AppInfo describes the running service. It is reported in logs and in the
// generated OpenAPI document.
type AppInfo struct {
	Title       string
	Description string
	Version     string
}

// DefaultAppInfo returns the service metadata.
func DefaultAppInfo() AppInfo {
	return AppInfo{
		Title:       "API",
		Description: "FastAPI backend",
		Version:     "0.1.0",
	}
}

// Config holds application configuration
type Config struct {
	ServerPort      string        `env:"SERVER_PORT" envDefault:"8000" validate:"required,tcp_port"`
	ServerDebugMode bool          `env:"SERVER_DEBUG_MODE" envDefault:"false"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s" validate:"gt=0"`

	// CORSOrigins is computed once at startup and never modified afterwards.
	CORSOrigins Origins `env:"CORS_ORIGINS" envDefault:"http://localhost:5173"`

	OTELEnabled  bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" validate:"required_if=OTELEnabled true"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"false"`
	MetricsAddr    string `env:"METRICS_ADDR" envDefault:":9090" validate:"omitempty,hostname_port"`

	Info AppInfo
}

// Origins is an ordered list of allowed CORS origins.
type Origins []string

// UnmarshalText implements encoding.TextUnmarshaler using ParseOrigins.
func (o *Origins) UnmarshalText(text []byte) error {
	*o = ParseOrigins(string(text))
	return nil
}

// String joins the origins back into their comma-separated form.
func (o Origins) String() string {
	return strings.Join(o, ",")
}

// ParseOrigins splits a comma-separated origin list, trims each entry and
// drops empty ones. Order is preserved. The result is never nil.
func ParseOrigins(raw string) []string {
	origins := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom loads configuration from the given environment instead of the
// process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Info = DefaultAppInfo()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks field constraints and the cross-field rules tags cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.MetricsEnabled && c.MetricsAddr == "" {
		return fmt.Errorf("METRICS_ADDR is required when METRICS_ENABLED is set")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.ServerPort
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("tcp_port", validateTCPPort); err != nil {
		panic(fmt.Sprintf("failed to register tcp_port validator: %v", err))
	}
	return v
}

// validateTCPPort accepts a decimal port number in 1..65535.
func validateTCPPort(fl validator.FieldLevel) bool {
	port, err := strconv.Atoi(fl.Field().String())
	if err != nil {
		return false
	}
	return port >= 1 && port <= 65535
}
