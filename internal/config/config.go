package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// StorageFile persists datasets as JSON files on disk.
	StorageFile = "file"
	// StorageNeo4j persists datasets as a job/skill graph.
	StorageNeo4j = "neo4j"
)

// Config contains runtime settings for the analytics server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080

	// GuestLimit caps the records visible to unauthenticated callers.
	GuestLimit int

	Storage struct {
		Backend string // "file" or "neo4j"
		DataDir string // file backend only
	}
	Neo4j struct {
		URI      string
		Username string
		Password string
	}
	Sheets struct {
		CredentialsPath string
		SpreadsheetID   string
	}
}

// Load populates config from the environment, reading .env first if present
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:   "info",
		Host:       "0.0.0.0",
		Port:       "8080",
		GuestLimit: 50,
	}
	cfg.Storage.Backend = StorageFile
	cfg.Storage.DataDir = "data"

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("SKILLVIZ_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("GUEST_DATA_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("invalid GUEST_DATA_LIMIT %q", v)
		}
		cfg.GuestLimit = n
	}

	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}

	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")

	cfg.Sheets.CredentialsPath = os.Getenv("SHEETS_CREDENTIALS_PATH")
	cfg.Sheets.SpreadsheetID = os.Getenv("SHEETS_SPREADSHEET_ID")

	switch cfg.Storage.Backend {
	case StorageFile:
		// nothing to validate, DataDir is created lazily
	case StorageNeo4j:
		var missingVars []string

		if cfg.Neo4j.URI == "" {
			missingVars = append(missingVars, "NEO4J_URI")
		}

		if cfg.Neo4j.Username == "" {
			missingVars = append(missingVars, "NEO4J_USERNAME")
		}

		if cfg.Neo4j.Password == "" {
			missingVars = append(missingVars, "NEO4J_PASSWORD")
		}

		if len(missingVars) > 0 {
			return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
		}
	default:
		return cfg, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.Storage.Backend)
	}

	return cfg, nil
}
