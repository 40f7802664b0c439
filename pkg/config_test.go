package pybump

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Config
		wantErr bool
	}{
		{
			name: "full config",
			yaml: "manifest: sub/pyproject.toml\nbump: minor\n",
			want: Config{Manifest: "sub/pyproject.toml", Bump: Minor},
		},
		{
			name: "defaults filled",
			yaml: "bump: major\n",
			want: Config{Manifest: DefaultManifest, Bump: Major},
		},
		{
			name: "empty document",
			yaml: "",
			want: DefaultConfig(),
		},
		{
			name:    "invalid bump",
			yaml:    "bump: bogus\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			yaml:    "manifest: [unterminated\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tt.yaml))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseConfig() = %+v, expected error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig() returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseConfig() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestParseConfigInvalidBumpIsTyped(t *testing.T) {
	_, err := ParseConfig([]byte("bump: bogus\n"))
	if !errors.Is(err, ErrInvalidBumpType) {
		t.Errorf("expected ErrInvalidBumpType, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, DefaultConfigFile))
	if err != nil {
		t.Fatalf("LoadConfig on missing file returned error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig on missing file = %+v, expected defaults", cfg)
	}

	path := filepath.Join(dir, DefaultConfigFile)
	if err := os.WriteFile(path, []byte("manifest: other.toml\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Manifest != filepath.Join(dir, "other.toml") || cfg.Bump != Patch {
		t.Errorf("LoadConfig = %+v", cfg)
	}
}

func TestLoadConfigResolvesManifestAgainstConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "other", "dir")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, DefaultConfigFile)
	if err := os.WriteFile(path, []byte("manifest: core/pyproject.toml\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if want := filepath.Join(dir, "core", "pyproject.toml"); cfg.Manifest != want {
		t.Errorf("Manifest = %q, expected %q", cfg.Manifest, want)
	}

	abs := filepath.Join(t.TempDir(), "pyproject.toml")
	if err := os.WriteFile(path, []byte("manifest: '"+abs+"'\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Manifest != abs {
		t.Errorf("absolute Manifest = %q, expected %q", cfg.Manifest, abs)
	}
}
