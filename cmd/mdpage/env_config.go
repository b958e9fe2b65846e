package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mdpage/internal/config"
)

// envPrefix marks environment variables owned by mdpage.
const envPrefix = "MDPAGE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDPAGE_CONFIG: config file name or path
	CamoHost   string // MDPAGE_CAMO_HOST: image proxy base URL
	CamoKey    string // MDPAGE_CAMO_KEY: image proxy HMAC key
	ImgClass   string // MDPAGE_IMG_CLASS: classes added to every image
	Workers    int    // MDPAGE_WORKERS: parallel workers
	RawHTML    bool   // MDPAGE_RAW_HTML: pass raw HTML through
}

// knownEnvVars lists valid MDPAGE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDPAGE_CONFIG":    true,
	"MDPAGE_CAMO_HOST": true,
	"MDPAGE_CAMO_KEY":  true,
	"MDPAGE_IMG_CLASS": true,
	"MDPAGE_WORKERS":   true,
	"MDPAGE_RAW_HTML":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed MDPAGE_WORKERS and MDPAGE_RAW_HTML values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDPAGE_CONFIG"),
		CamoHost:   os.Getenv("MDPAGE_CAMO_HOST"),
		CamoKey:    os.Getenv("MDPAGE_CAMO_KEY"),
		ImgClass:   os.Getenv("MDPAGE_IMG_CLASS"),
	}

	if workers := os.Getenv("MDPAGE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if raw := os.Getenv("MDPAGE_RAW_HTML"); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			cfg.RawHTML = b
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized MDPAGE_* variable.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config file values with set environment variables.
// CLI flags are applied afterwards by mergeFlags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.CamoHost != "" {
		cfg.Images.Proxy.Host = env.CamoHost
	}
	if env.CamoKey != "" {
		cfg.Images.Proxy.Key = env.CamoKey
	}
	if env.ImgClass != "" {
		cfg.Images.Classes = env.ImgClass
	}
	if env.RawHTML {
		cfg.Markdown.RawHTML = true
	}
}
