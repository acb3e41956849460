package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files or flags.
type envConfig struct {
	ConfigPath string // SPECBOOK_CONFIG: config file path
	Output     string // SPECBOOK_OUTPUT: output PDF path
	Timeout    string // SPECBOOK_TIMEOUT: build timeout (e.g., 2m)
	DocTitle   string // SPECBOOK_DOC_TITLE: document title
	DocVersion string // SPECBOOK_DOC_VERSION: document version
	PageSize   string // SPECBOOK_PAGE_SIZE: a4, letter, legal
	FooterText string // SPECBOOK_FOOTER_TEXT: running footer label
}

// knownEnvVars lists valid SPECBOOK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SPECBOOK_CONFIG":      true,
	"SPECBOOK_OUTPUT":      true,
	"SPECBOOK_TIMEOUT":     true,
	"SPECBOOK_DOC_TITLE":   true,
	"SPECBOOK_DOC_VERSION": true,
	"SPECBOOK_PAGE_SIZE":   true,
	"SPECBOOK_FOOTER_TEXT": true,
}

// loadEnvConfig loads a .env file if present, then reads SPECBOOK_* values
// from the environment. Real environment variables win over .env entries.
func loadEnvConfig() *envConfig {
	_ = godotenv.Load()

	return &envConfig{
		ConfigPath: os.Getenv("SPECBOOK_CONFIG"),
		Output:     os.Getenv("SPECBOOK_OUTPUT"),
		Timeout:    os.Getenv("SPECBOOK_TIMEOUT"),
		DocTitle:   os.Getenv("SPECBOOK_DOC_TITLE"),
		DocVersion: os.Getenv("SPECBOOK_DOC_VERSION"),
		PageSize:   os.Getenv("SPECBOOK_PAGE_SIZE"),
		FooterText: os.Getenv("SPECBOOK_FOOTER_TEXT"),
	}
}

// warnUnknownEnvVars writes a warning for each SPECBOOK_* variable that is
// set but not recognized, so typos surface instead of silently doing
// nothing.
func warnUnknownEnvVars(w io.Writer) {
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "SPECBOOK_") && !knownEnvVars[name] {
			fmt.Fprintf(w, "Warning: unknown environment variable %s\n", name)
		}
	}
}
