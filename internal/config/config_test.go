package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdpage/internal/camo"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Images.Classes != "" {
		t.Errorf("Images.Classes = %q, want empty", cfg.Images.Classes)
	}
	if cfg.Images.Proxy.Host != "" {
		t.Errorf("Images.Proxy.Host = %q, want empty", cfg.Images.Proxy.Host)
	}
	if cfg.Output.Standalone {
		t.Error("Output.Standalone = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value", "", 10, false},
		{"at limit", strings.Repeat("a", 10), 10, false},
		{"over limit", strings.Repeat("a", 11), 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("field", tt.value, tt.maxLength)
			if tt.wantErr && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "proxy with key",
			cfg: Config{Images: ImagesConfig{
				Proxy: ProxyConfig{Host: "https://camo.example.com", Key: "secret"},
			}},
		},
		{
			name: "proxy without key",
			cfg: Config{Images: ImagesConfig{
				Proxy: ProxyConfig{Host: "https://camo.example.com"},
			}},
			wantErr: camo.ErrMissingKey,
		},
		{
			name: "relative proxy host",
			cfg: Config{Images: ImagesConfig{
				Proxy: ProxyConfig{Host: "camo.example.com", Key: "secret"},
			}},
			wantErr: camo.ErrInvalidHost,
		},
		{
			name: "non-http proxy scheme",
			cfg: Config{Images: ImagesConfig{
				Proxy: ProxyConfig{Host: "ftp://camo.example.com", Key: "secret"},
			}},
			wantErr: camo.ErrInvalidHost,
		},
		{
			name:    "image classes too long",
			cfg:     Config{Images: ImagesConfig{Classes: strings.Repeat("x", MaxImageClassesLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "style too long",
			cfg:     Config{Highlight: HighlightConfig{Style: strings.Repeat("x", MaxStyleLength+1)}},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_ProxyErrorsWrapBothSentinels(t *testing.T) {
	cfg := Config{Images: ImagesConfig{Proxy: ProxyConfig{Host: "camo", Key: "secret"}}}

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidField) {
		t.Errorf("Validate() error = %v, want ErrInvalidField", err)
	}
	if !errors.Is(err, camo.ErrInvalidHost) {
		t.Errorf("Validate() error = %v, want camo.ErrInvalidHost", err)
	}
	if !strings.Contains(err.Error(), "images.proxy") {
		t.Errorf("Validate() error = %q, want field name", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "docs.yaml")
		content := `images:
  classes: "rounded shadow"
  proxy:
    host: "https://camo.example.com"
    key: "secret"
highlight:
  style: "github"
output:
  defaultDir: "/srv/pages"
  standalone: true
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Images.Classes != "rounded shadow" {
			t.Errorf("Images.Classes = %q, want %q", cfg.Images.Classes, "rounded shadow")
		}
		if cfg.Images.Proxy.Host != "https://camo.example.com" {
			t.Errorf("Images.Proxy.Host = %q", cfg.Images.Proxy.Host)
		}
		if cfg.Images.Proxy.Key != "secret" {
			t.Errorf("Images.Proxy.Key = %q", cfg.Images.Proxy.Key)
		}
		if cfg.Highlight.Style != "github" {
			t.Errorf("Highlight.Style = %q, want %q", cfg.Highlight.Style, "github")
		}
		if cfg.Output.DefaultDir != "/srv/pages" {
			t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "/srv/pages")
		}
		if !cfg.Output.Standalone {
			t.Error("Output.Standalone = false, want true")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown name returns ErrConfigNotFound listing tried paths", func(t *testing.T) {
		_, err := LoadConfig("definitely-not-a-config-name")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "definitely-not-a-config-name.yaml") {
			t.Errorf("error %q should list tried paths", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(configPath, []byte("toc:\n  depth: 3\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "proxy.yaml")
		content := "images:\n  proxy:\n    host: \"https://camo.example.com\"\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidField) {
			t.Errorf("error = %v, want ErrInvalidField", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("docs")

	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least the local candidates", paths)
	}
	if paths[0] != "docs.yaml" || paths[1] != "docs.yml" {
		t.Errorf("local candidates = %v, want docs.yaml then docs.yml", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, filepath.Join("mdpage", "docs.")) {
			t.Errorf("user candidate %q not under mdpage/", p)
		}
	}
}
