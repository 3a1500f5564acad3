// Package session resolves the processing engine session settings from a
// YAML config file, the environment and caller extras.
package session

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/hari-data/hari/internal/yamlutil"
)

// Config holds the session settings. Values from the config file win over
// env-default tags; set environment variables win over both.
type Config struct {
	AppName   string `yaml:"app_name" env:"HARI_APP_NAME" env-default:"hari" env-description:"session application name"`
	MasterURL string `yaml:"master_url" env:"HARI_MASTER_URL" env-description:"cluster master URL"`
	LogLevel  string `yaml:"spark_log_level" env:"HARI_SPARK_LOG_LEVEL" env-default:"WARN" env-description:"engine log level"`
	JarsPath  string `yaml:"jars_path" env:"HARI_JARS_PATH" env-description:"directory holding extra jars"`
}

// LoadConfig reads path, when not empty, and applies the environment. The
// file may name the log level spark_log_level or log_level; a null value
// reads as empty.
func LoadConfig(fsys billy.Filesystem, path string) (Config, error) {
	var cfg Config

	if path != "" {
		values, err := yamlutil.ReadMap(fsys, path)
		if err != nil {
			return Config{}, err
		}
		cfg.AppName = stringValue(values["app_name"])
		cfg.MasterURL = stringValue(values["master_url"])
		cfg.LogLevel = stringValue(values["spark_log_level"])
		if cfg.LogLevel == "" {
			cfg.LogLevel = stringValue(values["log_level"])
		}
		cfg.JarsPath = stringValue(values["jars_path"])
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read session environment: %w", err)
	}
	return cfg, nil
}

// EnvUsage describes the environment variables LoadConfig honours.
func EnvUsage() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}

func stringValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
