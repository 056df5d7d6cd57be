package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/streetpath/core"
	"github.com/katalvlaran/streetpath/dijkstra"
)

// ErrInvalidConfig indicates a configuration value that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "STREETPATH_"

// Config holds the settings of the HTTP server and the CLI.
type Config struct {
	Addr           string
	DataFile       string
	LogLevel       string
	LogFormat      string
	Frontier       string
	DefaultLabel   string
	CORSOrigins    []string
	MaxUploadBytes int64
	TraceEnabled   bool
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Addr:           ":8080",
		LogLevel:       "info",
		LogFormat:      "json",
		Frontier:       "scan",
		DefaultLabel:   core.DefaultLabel,
		CORSOrigins:    []string{"*"},
		MaxUploadBytes: 32 << 20,
		TraceEnabled:   true,
	}
}

// fileConfig mirrors Config for HCL decoding; nil means "not set".
type fileConfig struct {
	Addr           *string  `hcl:"addr,optional"`
	DataFile       *string  `hcl:"data_file,optional"`
	LogLevel       *string  `hcl:"log_level,optional"`
	LogFormat      *string  `hcl:"log_format,optional"`
	Frontier       *string  `hcl:"frontier,optional"`
	DefaultLabel   *string  `hcl:"default_label,optional"`
	CORSOrigins    []string `hcl:"cors_origins,optional"`
	MaxUploadBytes *int64   `hcl:"max_upload_bytes,optional"`
	TraceEnabled   *bool    `hcl:"trace_enabled,optional"`
}

// Load resolves the configuration from defaults, the HCL file at path (when
// path is not empty) and env, then validates it. A nil env skips the
// environment.
func Load(path string, env Lookup) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	if env != nil {
		if err := cfg.applyEnv(env); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyFile(path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	setString(&c.Addr, fc.Addr)
	setString(&c.DataFile, fc.DataFile)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.LogFormat, fc.LogFormat)
	setString(&c.Frontier, fc.Frontier)
	setString(&c.DefaultLabel, fc.DefaultLabel)
	if fc.CORSOrigins != nil {
		c.CORSOrigins = fc.CORSOrigins
	}
	if fc.MaxUploadBytes != nil {
		c.MaxUploadBytes = *fc.MaxUploadBytes
	}
	if fc.TraceEnabled != nil {
		c.TraceEnabled = *fc.TraceEnabled
	}

	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func (c *Config) applyEnv(env Lookup) error {
	strs := map[string]*string{
		"ADDR":          &c.Addr,
		"DATA_FILE":     &c.DataFile,
		"LOG_LEVEL":     &c.LogLevel,
		"LOG_FORMAT":    &c.LogFormat,
		"FRONTIER":      &c.Frontier,
		"DEFAULT_LABEL": &c.DefaultLabel,
	}
	for key, dst := range strs {
		if v, ok := env(EnvPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := env(EnvPrefix + "CORS_ORIGINS"); ok {
		c.CORSOrigins = splitList(v)
	}
	if v, ok := env(EnvPrefix + "MAX_UPLOAD_BYTES"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sMAX_UPLOAD_BYTES: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.MaxUploadBytes = n
	}
	if v, ok := env(EnvPrefix + "TRACE_ENABLED"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sTRACE_ENABLED: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.TraceEnabled = b
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// Validate checks every field and reports the first problem found.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr is empty", ErrInvalidConfig)
	case c.DefaultLabel == "":
		return fmt.Errorf("%w: default_label is empty", ErrInvalidConfig)
	case c.MaxUploadBytes <= 0:
		return fmt.Errorf("%w: max_upload_bytes must be positive, got %d", ErrInvalidConfig, c.MaxUploadBytes)
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalidConfig, c.LogLevel)
	}

	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format must be 'text' or 'json', got %q", ErrInvalidConfig, c.LogFormat)
	}

	if _, err := dijkstra.ParseFrontier(c.Frontier); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if len(c.CORSOrigins) == 0 {
		return fmt.Errorf("%w: cors_origins is empty; use \"*\" to allow every origin", ErrInvalidConfig)
	}
	for _, o := range c.CORSOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("%w: cors origin %q must be \"*\" or start with http:// or https://", ErrInvalidConfig, o)
		}
	}

	return nil
}

// FrontierKind returns the parsed frontier. Call after Validate.
func (c *Config) FrontierKind() dijkstra.Frontier {
	f, _ := dijkstra.ParseFrontier(c.Frontier)

	return f
}
