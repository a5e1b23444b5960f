// Package app composes the feature modules into the root web handler and
// owns the HTTP server lifecycle.
package app

import (
	"errors"
	"flag"
	"strings"

	platformconfig "github.com/kaarlekaarle/commons-web/internal/platform/config"
)

// Config captures startup inputs for the web service.
type Config struct {
	// HTTPAddr is the listen address for the browser-facing server.
	HTTPAddr string `env:"COMMONS_WEB_HTTP_ADDR" envDefault:"localhost:8090"`
	// APIBaseURL locates the REST backend.
	APIBaseURL string `env:"COMMONS_WEB_API_BASE_URL" envDefault:"http://localhost:8000"`
	// DBPath is the sqlite file backing sessions and the page cache.
	DBPath string `env:"COMMONS_WEB_DB_PATH" envDefault:"commons-web.db"`
	// TrustForwardedProto enables X-Forwarded-Proto scheme resolution. Only
	// turn this on behind a proxy that strips the header from client traffic.
	TrustForwardedProto bool `env:"COMMONS_WEB_TRUST_FORWARDED_PROTO"`
	// DemoMode serves fixture data instead of calling the backend.
	DemoMode bool `env:"COMMONS_WEB_DEMO"`
	// APIDebug records recent backend calls and exposes them at /debug/api.
	APIDebug bool `env:"COMMONS_WEB_API_DEBUG"`
}

// ParseConfig loads service configuration from the environment, with flags
// taking precedence over environment values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformconfig.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if fs != nil {
		fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
		fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "REST backend base URL")
		fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "sqlite database path")
		fs.BoolVar(&cfg.DemoMode, "demo", cfg.DemoMode, "serve fixture data instead of the backend")
		fs.BoolVar(&cfg.APIDebug, "api-debug", cfg.APIDebug, "expose recent backend calls at /debug/api")
		if err := fs.Parse(args); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return errors.New("http address is required")
	}
	if !cfg.DemoMode && strings.TrimSpace(cfg.APIBaseURL) == "" {
		return errors.New("api base url is required")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return errors.New("db path is required")
	}
	return nil
}
