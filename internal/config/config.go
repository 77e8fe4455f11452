package config

import (
	"fmt"
	"os"
	"time"

	"email-send-pipeline/internal/models"

	"gopkg.in/yaml.v2"
)

const (
	defaultMailBox     = "Drafts"
	defaultRefreshTime = 30 * time.Second
	defaultWindow      = 24 * time.Hour
	defaultLogLevel    = "info"
	defaultLogFormat   = "json"
)

// Load reads the configuration from the specified YAML file and returns a Config struct
func Load(filepath string) (*models.Config, error) {
	configFile, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var config models.Config
	if err := yaml.Unmarshal(configFile, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filepath, err)
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(cfg *models.Config) {
	if cfg.Outbox.MailBox == "" {
		cfg.Outbox.MailBox = defaultMailBox
	}
	if cfg.Outbox.RefreshTime <= 0 {
		cfg.Outbox.RefreshTime = defaultRefreshTime
	}
	if cfg.Outbox.Window <= 0 {
		cfg.Outbox.Window = defaultWindow
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaultLogFormat
	}
}
