package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultLogFile   = "intake_audit.log"
	DefaultLedgerDSN = ":memory:"
)

type Config struct {
	// LogFile is the audit log path. Empty disables audit logging.
	LogFile   string
	LedgerDSN string
	Strict    bool
}

// Load reads envFile if it exists and then the INTAKE_* environment
// variables. Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		LogFile:   DefaultLogFile,
		LedgerDSN: DefaultLedgerDSN,
	}

	if v, ok := os.LookupEnv("INTAKE_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v := os.Getenv("INTAKE_LEDGER_DSN"); v != "" {
		cfg.LedgerDSN = v
	}
	if v := os.Getenv("INTAKE_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("INTAKE_STRICT: %w", err)
		}
		cfg.Strict = strict
	}

	return cfg, nil
}
