package config

import (
	"time"

	"github.com/dmitrijs2005/tweetheure/internal/cryptox"
	"github.com/dmitrijs2005/tweetheure/internal/models"
)

type Config struct {
	// DefaultBackend is used when no session names a backend. Empty means
	// ask the user at startup.
	DefaultBackend models.BackendKind

	SQLitePath string
	// PostgresDSN switches the relational backend to PostgreSQL when set.
	PostgresDSN  string
	JSONPath     string
	AtomicWrites bool

	SessionPath string

	HashAlgorithm string
	BcryptCost    int

	MessageDelay time.Duration

	LogFile  string
	LogLevel string
}

// LoadDefaults populates c with the defaults.
func (c *Config) LoadDefaults() {
	c.DefaultBackend = ""
	c.SQLitePath = "tweetheure.db"
	c.PostgresDSN = ""
	c.JSONPath = "data.json"
	c.AtomicWrites = false
	c.SessionPath = ".session"
	c.HashAlgorithm = cryptox.AlgorithmBcrypt
	c.BcryptCost = 0
	c.MessageDelay = 2 * time.Second
	c.LogFile = "tweetheure.log"
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the config file, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
