package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the site configuration: listen address, asset locations, backend
// base URLs, and banner timing. Values come from defaults, then an optional
// YAML file, then environment overrides.
type Config struct {
	Addr         string  `yaml:"addr"`
	SiteName     string  `yaml:"site_name"`
	TemplatesDir string  `yaml:"templates_dir"`
	PublicDir    string  `yaml:"public_dir"`
	Backend      Backend `yaml:"backend"`

	// BannerDelaySeconds is how long the payment-status banner stays before
	// the page refreshes back to the clean URL.
	BannerDelaySeconds int `yaml:"banner_delay_seconds"`
}

// Backend holds the API base URLs. BaseURL forces one endpoint for every
// request; otherwise the serving hostname picks between dev and production.
type Backend struct {
	BaseURL     string `yaml:"base_url"`
	DevBaseURL  string `yaml:"dev_base_url"`
	ProdBaseURL string `yaml:"prod_base_url"`
}

const defaultConfigFile = "config.yaml"

func defaults() Config {
	port := os.Getenv("RTALKS_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	return Config{
		Addr:         ":" + port,
		SiteName:     "R-Talks",
		TemplatesDir: "templates",
		PublicDir:    "public",
		Backend: Backend{
			DevBaseURL:  "http://localhost:5000/api",
			ProdBaseURL: "https://rtalks-back.onrender.com/api",
		},
		BannerDelaySeconds: 8,
	}
}

// Load builds the configuration. A missing file is fine; a malformed one is
// an error.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults + env only
	case err != nil:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if cfg.BannerDelaySeconds <= 0 {
		cfg.BannerDelaySeconds = 8
	}
	if strings.TrimSpace(cfg.SiteName) == "" {
		cfg.SiteName = "R-Talks"
	}
	return cfg, nil
}

// BannerDelay returns the banner-visible duration.
func (c Config) BannerDelay() time.Duration {
	return time.Duration(c.BannerDelaySeconds) * time.Second
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("RTALKS_WEB_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("RTALKS_WEB_API_BASE_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("RTALKS_WEB_TEMPLATES"); v != "" {
		cfg.TemplatesDir = v
	}
	if v := os.Getenv("RTALKS_WEB_PUBLIC"); v != "" {
		cfg.PublicDir = v
	}
}
