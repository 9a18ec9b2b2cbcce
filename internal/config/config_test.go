package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAbsentOptional(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "bundle.yaml"), false)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Toolchain.Compiler != "clang" || cfg.Toolchain.Target != "wasm32" {
		t.Errorf("defaults not applied: %+v", cfg.Toolchain)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadAbsentRequired(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "bundle.yaml"), true)
	if err == nil {
		t.Fatal("expected error for missing required config file")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.yaml")
	content := `toolchain:
  compiler: cc
  target: wasm32-wasi
  extra_flags: ["-Oz"]
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Toolchain.Compiler != "cc" {
		t.Errorf("compiler = %q, want cc", cfg.Toolchain.Compiler)
	}
	if cfg.Toolchain.Target != "wasm32-wasi" {
		t.Errorf("target = %q, want wasm32-wasi", cfg.Toolchain.Target)
	}
	if len(cfg.Toolchain.ExtraFlags) != 1 || cfg.Toolchain.ExtraFlags[0] != "-Oz" {
		t.Errorf("extra flags = %v", cfg.Toolchain.ExtraFlags)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.yaml")
	if err := os.WriteFile(path, []byte("toolchain: [not a mapping"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, false); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError string
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:      "compiler with whitespace",
			mutate:    func(cfg *Config) { cfg.Toolchain.Compiler = "clang -O2" },
			wantError: "single executable name",
		},
		{
			name:      "target with whitespace",
			mutate:    func(cfg *Config) { cfg.Toolchain.Target = "wasm 32" },
			wantError: "must not contain whitespace",
		},
		{
			name:      "empty extra flag",
			mutate:    func(cfg *Config) { cfg.Toolchain.ExtraFlags = []string{"-Oz", " "} },
			wantError: "empty entry",
		},
		{
			name:      "unknown level",
			mutate:    func(cfg *Config) { cfg.Logging.Level = "trace" },
			wantError: "is not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			ApplyDefaults(&cfg)
			tt.mutate(&cfg)

			err := Validate(&cfg)
			if tt.wantError == "" {
				if err != nil {
					t.Fatalf("Validate failed: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("error = %q, want substring %q", err, tt.wantError)
			}
		})
	}
}
