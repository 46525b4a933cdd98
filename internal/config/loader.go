package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables that fill unset endpoint fields, so secrets can be
// kept out of committed configuration.
const (
	envAPIKey    = "TESTLAB_API_KEY"
	envCompanyID = "TESTLAB_COMPANY_ID"
	envURL       = "TESTLAB_URL"
)

// LoadError reports that the configuration file could not be located, read
// or parsed. Like ValidationErrors it is a configuration failure, raised
// before any resource scanning or network activity.
type LoadError struct {
	Path string // empty when no config file was found at all
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error: loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and parses a publish configuration from the given YAML file
// path. After parsing, environment overrides and defaults are applied.
// Failures come back as *LoadError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("parsing YAML: %w", err)}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault searches for a publish config in standard locations and loads
// the first one found. Search order: ./testlab.yaml, ./.testlab.yaml
func LoadDefault() (*Config, error) {
	candidates := []string{"testlab.yaml", ".testlab.yaml"}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return nil, &LoadError{Err: fmt.Errorf("no publish config found (searched: %v)", candidates)}
}

// applyEnv fills endpoint fields left unset in the file from the process
// environment. File values win.
func applyEnv(cfg *Config) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(envAPIKey)
	}
	if cfg.CompanyID == "" {
		cfg.CompanyID = os.Getenv(envCompanyID)
	}
	if cfg.OnpremiseURL == "" {
		cfg.OnpremiseURL = os.Getenv(envURL)
	}
}

// applyDefaults fills fields that have documented default values.
func applyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = FormatJUnit
	}
	if isBlank(cfg.TestRunUser) {
		cfg.TestRunUser = "Maven"
	}
	if isBlank(cfg.ImportTestCasesRootCategory) {
		cfg.ImportTestCasesRootCategory = "Import"
	}
}
