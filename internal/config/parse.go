package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	pferrors "github.com/pageforge/pageforge/internal/errors"
)

// Format identifies a supported configuration text encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath infers the encoding from a file extension, defaulting to
// YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// ParseText decodes raw configuration text into a normalized
// PageConfiguration. Malformed text fails with *errors.ParseError; the
// decoded configuration has defaults applied but is not validated.
func ParseText(format Format, text []byte) (*PageConfiguration, error) {
	var cfg PageConfiguration
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(text, &cfg); err != nil {
			return nil, pferrors.NewParseError(string(FormatJSON), "configuration is not valid JSON", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(text, &cfg); err != nil {
			return nil, pferrors.NewParseError(string(FormatYAML), "configuration is not valid YAML", err)
		}
	default:
		return nil, pferrors.NewParseError(string(format), fmt.Sprintf("unsupported configuration format: %s", format), nil)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Load reads, decodes and normalizes a configuration file. Environment
// variable references in the file body are expanded before decoding.
func Load(path string) (*PageConfiguration, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	return ParseText(FormatForPath(path), []byte(expanded))
}

// Init writes an example page configuration to path. Refuses to overwrite an
// existing file unless force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}

	cfg := GenerateDefault()

	var (
		data []byte
		err  error
	)
	if FormatForPath(path) == FormatJSON {
		data, err = json.MarshalIndent(cfg, "", "  ")
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
