package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/modfence/modfence/core/alias"
	"github.com/modfence/modfence/core/logger"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// RepoRoot anchors every canonical path. Defaults to the working
	// directory when the config file does not set it.
	RepoRoot string `yaml:"repo_root"`

	// Roots are the repo-relative directories walked for source files.
	Roots []string `yaml:"roots"`

	// Extensions lists the recognized source file extensions.
	Extensions []string `yaml:"extensions"`

	// Ignore names directories pruned from every walk.
	Ignore []string `yaml:"ignore"`

	// Aliases is the ordered alias table; first prefix match wins.
	Aliases []alias.Rule `yaml:"aliases"`

	// ModulesRoot is the repo-relative directory whose first-level children
	// are the modules this tool fences.
	ModulesRoot string `yaml:"modules_root"`

	// LegacyRoots are directory names that mark a specifier as still
	// pointing at the pre-migration layout, e.g. "src".
	LegacyRoots []string `yaml:"legacy_roots"`

	Report Report `yaml:"report"`
}

type Report struct {
	Path string `yaml:"path"`
	Rule string `yaml:"rule"`
}

func Default() *Config {
	return &Config{
		Roots:      []string{"src", "app"},
		Extensions: []string{".ts", ".tsx", ".js", ".jsx"},
		Ignore: []string{
			".git", "node_modules", "vendor", ".next",
			"build", "dist", "__pycache__", ".DS_Store",
		},
		Aliases: []alias.Rule{
			{Prefix: "src/modules", Alias: "@/modules"},
			{Prefix: "src/shared", Alias: "@/shared"},
			{Prefix: "src/db", Alias: "@/db"},
			{Prefix: "app", Alias: "@/app"},
			{Prefix: "src/components", Alias: "@/components"},
			{Prefix: "src/types", Alias: "@/types"},
			{Prefix: "src/lib", Alias: "@/lib"},
			{Prefix: "src/hooks", Alias: "@/hooks"},
			{Prefix: "src/stores", Alias: "@/stores"},
			{Prefix: "src/context", Alias: "@/context"},
			{Prefix: "src/guidelines", Alias: "@/guidelines"},
			{Prefix: "assets", Alias: "@/assets"},
		},
		ModulesRoot: "src/modules",
		LegacyRoots: []string{"src"},
		Report: Report{
			Path: "eslint_report.json",
			Rule: "no-restricted-imports",
		},
	}
}

// Load reads the config file at path, or modfence.yaml in the working
// directory when path is empty. Missing file falls back to Default.
func Load(path string) (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}

	filePath := path
	if filePath == "" {
		candidate := filepath.Join(wd, "modfence.yaml")
		if _, err := os.Stat(candidate); err == nil {
			filePath = candidate
		}
	}

	cfg := Default()
	if filePath == "" {
		logger.Debug("No config file found, using default config")
	} else {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
		logger.Debug("Config file found: %s", filePath)
	}

	if cfg.RepoRoot == "" {
		cfg.RepoRoot = wd
	}
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}
