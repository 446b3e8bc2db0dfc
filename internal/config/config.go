package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/aerissecure/reportsheet/tabular"
)

// Environment variables that override the config file.
const (
	EnvSheetName        = "REPORTSHEET_SHEET_NAME"
	EnvSummarySheetName = "REPORTSHEET_SUMMARY_SHEET_NAME"
	EnvHeaderDelimiter  = "REPORTSHEET_HEADER_DELIMITER"
	EnvStorePath        = "REPORTSHEET_STORE_PATH"
	EnvLogLevel         = "REPORTSHEET_LOG_LEVEL"
)

type Config struct {
	// SheetName names the primary sheet of exported workbooks.
	SheetName string `yaml:"sheet_name"`
	// SummarySheetName names the metadata sheet of exported workbooks.
	SummarySheetName string `yaml:"summary_sheet_name"`
	// HeaderDelimiter joins table headers in TABLE: marker cells.
	HeaderDelimiter string `yaml:"header_delimiter"`
	// StorePath is the directory of the document store.
	StorePath string `yaml:"store_path"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	storePath := filepath.Join(".reportsheet", "store")
	if home, err := homedir.Dir(); err == nil {
		storePath = filepath.Join(home, ".reportsheet", "store")
	}
	return &Config{
		SheetName:        tabular.DefaultSheetName,
		SummarySheetName: tabular.DefaultSummarySheetName,
		HeaderDelimiter:  tabular.DefaultHeaderDelimiter,
		StorePath:        storePath,
		LogLevel:         "info",
	}
}

// LoadConfig builds the configuration: defaults, then the YAML file at path
// if it exists, then environment variables (a .env file in the working
// directory is loaded first).
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, errors.Wrapf(err, "expanding config path %q", path)
		}
		file, err := os.ReadFile(expanded)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, errors.Wrapf(err, "reading config %q", expanded)
		default:
			if err := yaml.Unmarshal(file, cfg); err != nil {
				return nil, errors.Wrapf(err, "parsing config %q", expanded)
			}
		}
	}

	// 3. Override with Environment Variables if present
	for env, field := range map[string]*string{
		EnvSheetName:        &cfg.SheetName,
		EnvSummarySheetName: &cfg.SummarySheetName,
		EnvHeaderDelimiter:  &cfg.HeaderDelimiter,
		EnvStorePath:        &cfg.StorePath,
		EnvLogLevel:         &cfg.LogLevel,
	} {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*field = v
		}
	}

	if p, err := homedir.Expand(cfg.StorePath); err == nil {
		cfg.StorePath = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.SheetName == "" || c.SummarySheetName == "" {
		return errors.New("sheet names must not be empty")
	}
	if c.SheetName == c.SummarySheetName {
		return errors.Newf("sheet_name and summary_sheet_name are both %q", c.SheetName)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, errors.Wrapf(err, "invalid log_level %q", c.LogLevel)
	}
	return l, nil
}

// Encoder returns the tabular encoder configured by c.
func (c *Config) Encoder() tabular.Encoder {
	return tabular.Encoder{SheetName: c.SheetName, HeaderDelimiter: c.HeaderDelimiter}
}
