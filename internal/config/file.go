package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/tweetheure/internal/flagx"
	"github.com/dmitrijs2005/tweetheure/internal/models"
	"github.com/dmitrijs2005/tweetheure/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape shared by JSON and YAML config files.
// Pointer fields distinguish "absent" from a zero value so a file only
// overrides what it names.
type FileConfig struct {
	DefaultBackend *string         `json:"default_backend" yaml:"default_backend"`
	SQLitePath     *string         `json:"sqlite_path" yaml:"sqlite_path"`
	PostgresDSN    *string         `json:"postgres_dsn" yaml:"postgres_dsn"`
	JSONPath       *string         `json:"json_path" yaml:"json_path"`
	AtomicWrites   *bool           `json:"atomic_writes" yaml:"atomic_writes"`
	SessionPath    *string         `json:"session_path" yaml:"session_path"`
	HashAlgorithm  *string         `json:"hash_algorithm" yaml:"hash_algorithm"`
	BcryptCost     *int            `json:"bcrypt_cost" yaml:"bcrypt_cost"`
	MessageDelay   *timex.Duration `json:"message_delay" yaml:"message_delay"`
	LogFile        *string         `json:"log_file" yaml:"log_file"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file given by -c/-config, if any.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.DefaultBackend != nil {
		cfg.DefaultBackend = mustBackend(*fc.DefaultBackend)
	}
	setString(&cfg.SQLitePath, fc.SQLitePath)
	setString(&cfg.PostgresDSN, fc.PostgresDSN)
	setString(&cfg.JSONPath, fc.JSONPath)
	if fc.AtomicWrites != nil {
		cfg.AtomicWrites = *fc.AtomicWrites
	}
	setString(&cfg.SessionPath, fc.SessionPath)
	setString(&cfg.HashAlgorithm, fc.HashAlgorithm)
	if fc.BcryptCost != nil {
		cfg.BcryptCost = *fc.BcryptCost
	}
	if fc.MessageDelay != nil {
		cfg.MessageDelay = fc.MessageDelay.Duration
	}
	setString(&cfg.LogFile, fc.LogFile)
	setString(&cfg.LogLevel, fc.LogLevel)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// mustBackend parses a backend name; "" means unset.
func mustBackend(s string) models.BackendKind {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	kind, err := models.ParseBackendKind(s)
	if err != nil {
		panic(err)
	}
	return kind
}
