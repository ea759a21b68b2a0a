package config

import (
	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/config"
)

// Load load config file
func Load(cfgFile string, cfg *Config) error {
	config.AutomaticLoadEnv("RWRD")
	if err := config.LoadYaml(cfgFile, cfg); err != nil {
		return err
	}

	defaults(cfg)

	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		return err
	}

	return nil
}

func defaults(cfg *Config) {
	if cfg.App.Location == "" {
		cfg.App.Location = "UTC"
	}

	if cfg.Worker.SnapshotSpec == "" {
		cfg.Worker.SnapshotSpec = "@every 10m"
	}

	if cfg.Worker.EventRetentionDays <= 0 {
		cfg.Worker.EventRetentionDays = 90
	}
}
