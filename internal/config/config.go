package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration structure parsed from bundle.yaml.
// Every field is optional; the zero value plus ApplyDefaults reproduces the
// tool's stock behavior (clang, wasm32, info-level logging).
type Config struct {
	// Toolchain configures the external compiler.
	Toolchain ToolchainConfig `yaml:"toolchain"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// ToolchainConfig selects and parameterizes the compiler invocation.
type ToolchainConfig struct {
	// Compiler is the executable name looked up on the system PATH.
	Compiler string `yaml:"compiler"`
	// Target is the architecture passed to the compiler as --target=<value>.
	Target string `yaml:"target"`
	// ExtraFlags are appended to the invocation before the compile-only flags.
	ExtraFlags []string `yaml:"extra_flags"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// Load reads and validates the configuration at path. A missing file is
// only an error when required is true; otherwise defaults are returned.
func Load(path string, required bool) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			ApplyDefaults(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills in unset fields with their stock values.
func ApplyDefaults(cfg *Config) {
	if cfg.Toolchain.Compiler == "" {
		cfg.Toolchain.Compiler = "clang"
	}
	if cfg.Toolchain.Target == "" {
		cfg.Toolchain.Target = "wasm32"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks the configuration for values that cannot work. It is
// called after ApplyDefaults, so empty fields have already been filled.
func Validate(cfg *Config) error {
	if strings.ContainsAny(cfg.Toolchain.Compiler, " \t") {
		return fmt.Errorf("toolchain.compiler %q must be a single executable name", cfg.Toolchain.Compiler)
	}
	if strings.ContainsAny(cfg.Toolchain.Target, " \t") {
		return fmt.Errorf("toolchain.target %q must not contain whitespace", cfg.Toolchain.Target)
	}
	for _, f := range cfg.Toolchain.ExtraFlags {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("toolchain.extra_flags contains an empty entry")
		}
	}
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported (use debug, info, warn or error)", cfg.Logging.Level)
	}
	return nil
}
