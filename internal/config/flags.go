package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/tweetheure/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
//	-b string   default backend: sql or json
//	-d string   SQLite database path
//	-p string   PostgreSQL DSN (relational backend uses PostgreSQL when set)
//	-j string   JSON data file path
//	-s string   session file path
//	-l string   log file path ("" disables logging)
//	-w int      message delay in milliseconds
//	-h string   password hash algorithm: bcrypt or argon2id
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-p", "-j", "-s", "-l", "-w", "-h"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	backend := fs.String("b", string(cfg.DefaultBackend), "default storage backend (sql or json)")
	fs.StringVar(&cfg.SQLitePath, "d", cfg.SQLitePath, "SQLite database path")
	fs.StringVar(&cfg.PostgresDSN, "p", cfg.PostgresDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.JSONPath, "j", cfg.JSONPath, "JSON data file path")
	fs.StringVar(&cfg.SessionPath, "s", cfg.SessionPath, "session file path")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path")
	delay := fs.Int("w", int(cfg.MessageDelay.Milliseconds()), "message delay (in milliseconds)")
	fs.StringVar(&cfg.HashAlgorithm, "h", cfg.HashAlgorithm, "password hash algorithm (bcrypt or argon2id)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.DefaultBackend = mustBackend(*backend)
	cfg.MessageDelay = time.Duration(*delay) * time.Millisecond
}
