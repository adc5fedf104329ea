package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dyluth/advent/internal/config"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		force     bool
		setupFunc func(string)
		wantErr   bool
	}{
		{
			name:      "fresh initialization",
			setupFunc: func(dir string) {},
		},
		{
			name:  "force replaces advent.yml and keeps inputs",
			force: true,
			setupFunc: func(dir string) {
				os.WriteFile(filepath.Join(dir, "advent.yml"), []byte("year: [broken"), 0644)
				os.MkdirAll(filepath.Join(dir, "input"), 0755)
				os.WriteFile(filepath.Join(dir, "input", "day1.in"), []byte("3   4\n"), 0644)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setupFunc(dir)

			created, err := Initialize(dir, "input", tt.force)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Initialize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			want := []string{"advent.yml", filepath.Join("input", ".gitignore")}
			if strings.Join(created, ",") != strings.Join(want, ",") {
				t.Errorf("created = %v, want %v", created, want)
			}

			cfg, err := config.Load(filepath.Join(dir, "advent.yml"))
			if err != nil {
				t.Fatalf("generated advent.yml does not load: %v", err)
			}
			defaults := config.Default()
			if cfg.Year != defaults.Year || cfg.InputDir != defaults.InputDir || cfg.LogLevel != defaults.LogLevel {
				t.Errorf("generated config does not match defaults: %+v", cfg)
			}
			if cfg.HTTP.BaseURL != defaults.HTTP.BaseURL || cfg.HTTP.Timeout != defaults.HTTP.Timeout || *cfg.HTTP.Retries != *defaults.HTTP.Retries {
				t.Errorf("generated http section does not match defaults: %+v", cfg.HTTP)
			}
			if *cfg.Cache != *defaults.Cache || *cfg.Bench != *defaults.Bench {
				t.Errorf("generated cache/bench sections do not match defaults: %+v %+v", cfg.Cache, cfg.Bench)
			}

			if tt.force {
				if _, err := os.Stat(filepath.Join(dir, "input", "day1.in")); err != nil {
					t.Errorf("force removed cached input: %v", err)
				}
			}
		})
	}
}

func TestInitialize_RedisURLFromEnvStillSelectsRedis(t *testing.T) {
	dir := t.TempDir()
	if _, err := Initialize(dir, "input", false); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	lookup := func(key string) (string, bool) {
		if key == "AOC_REDIS_URL" {
			return "redis://cache:6379/0", true
		}
		return "", false
	}
	cfg, err := config.Resolve(filepath.Join(dir, "advent.yml"), true, lookup)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.Cache.Backend != config.BackendRedis {
		t.Errorf("backend = %q, want %q", cfg.Cache.Backend, config.BackendRedis)
	}
	if cfg.Cache.RedisURL != "redis://cache:6379/0" {
		t.Errorf("redis_url = %q", cfg.Cache.RedisURL)
	}
}

func TestInitialize_CustomInputDir(t *testing.T) {
	dir := t.TempDir()

	if _, err := Initialize(dir, filepath.Join("data", "inputs"), false); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	ignore, err := os.ReadFile(filepath.Join(dir, "data", "inputs", ".gitignore"))
	if err != nil {
		t.Fatalf("expected .gitignore in input dir: %v", err)
	}
	if string(ignore) != inputIgnore {
		t.Errorf(".gitignore = %q, want %q", ignore, inputIgnore)
	}

	cfg, err := config.Load(filepath.Join(dir, "advent.yml"))
	if err != nil {
		t.Fatalf("generated advent.yml does not load: %v", err)
	}
	if cfg.InputDir != "data/inputs" {
		t.Errorf("input_dir = %q, want %q", cfg.InputDir, "data/inputs")
	}
}

func TestWriteFiles_KeepsExistingIgnore(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "input"), 0755)
	ignorePath := filepath.Join(dir, "input", ".gitignore")
	os.WriteFile(ignorePath, []byte("custom\n"), 0644)

	files, err := getTemplateFiles("input")
	if err != nil {
		t.Fatal(err)
	}
	if err := writeFiles(dir, files); err != nil {
		t.Fatalf("writeFiles() error = %v", err)
	}

	content, _ := os.ReadFile(ignorePath)
	if string(content) != "custom\n" {
		t.Errorf("existing .gitignore was overwritten: %q", content)
	}
}

func TestValidateCreatedFiles(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "advent.yml"), []byte("cache:\n  backend: tape\n"), 0644)

	err := validateCreatedFiles(dir)
	if err == nil {
		t.Fatal("expected error for invalid advent.yml")
	}
	if !strings.Contains(err.Error(), "invalid cache.backend") {
		t.Errorf("unexpected error: %v", err)
	}
}
