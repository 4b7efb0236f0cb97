package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Intro   SectionConfig `json:"intro" yaml:"intro"`
	Hunk    SectionConfig `json:"hunk" yaml:"hunk"`
	Outro   SectionConfig `json:"outro" yaml:"outro"`
	Diff    DiffConfig    `json:"diff" yaml:"diff"`
	Filters FilterConfig  `json:"filters" yaml:"filters"`
	History HistoryConfig `json:"history" yaml:"history"`
	Export  ExportConfig  `json:"export" yaml:"export"`
}

// SectionConfig lists the template tokens of one assembly phase.
type SectionConfig struct {
	Content []string `json:"content" yaml:"content"`
}

// DiffConfig holds diff rendering options.
type DiffConfig struct {
	ContextLines int `json:"contextLines" yaml:"contextLines"` // Default: 3
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include" yaml:"include"`
	Exclude []string `json:"exclude" yaml:"exclude"`
}

// HistoryConfig bounds the commit listing.
type HistoryConfig struct {
	MaxCommits int    `json:"maxCommits" yaml:"maxCommits"` // 0 lists every ancestor
	Branch     string `json:"branch" yaml:"branch"`         // Default: "HEAD"
}

// ExportConfig holds markdown export options.
type ExportConfig struct {
	Path string `json:"path" yaml:"path"`
}

// DefaultPath is where `init` writes the configuration.
const DefaultPath = ".conseil.json"

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Intro: SectionConfig{
			Content: []string{"heading", "paragraph"},
		},
		Hunk: SectionConfig{
			Content: []string{"subheading", "filename", "diff", "paragraph"},
		},
		Outro: SectionConfig{
			Content: []string{"paragraph"},
		},
		Diff: DiffConfig{
			ContextLines: 3,
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		History: HistoryConfig{
			MaxCommits: 0,
			Branch:     "HEAD",
		},
		Export: ExportConfig{
			Path: "markdown/entry.md",
		},
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Diff.ContextLines < 0 {
		errs = append(errs, fmt.Errorf("diff.contextLines must be >= 0, got %d", c.Diff.ContextLines))
	}
	if c.History.MaxCommits < 0 {
		errs = append(errs, fmt.Errorf("history.maxCommits must be >= 0, got %d", c.History.MaxCommits))
	}
	if strings.TrimSpace(c.Export.Path) == "" {
		errs = append(errs, errors.New("export.path must not be empty"))
	}
	return errors.Join(errs...)
}

// candidatePaths lists the files LoadConfig probes when no path is given.
func candidatePaths() []string {
	candidates := []string{
		".conseil.json",
		".conseil.yaml",
		".conseil.yml",
		filepath.Join("configs", "default.json"),
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		candidates = append(candidates, filepath.Join(home, ".conseil.json"))
	} else if envHome := os.Getenv("HOME"); envHome != "" {
		candidates = append(candidates, filepath.Join(envHome, ".conseil.json"))
	}
	return candidates
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		for _, p := range candidatePaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file. The format follows the extension.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
