package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "xonix.yaml"

// localConfigDir is searched relative to the working directory.
var localConfigDir = "configs"

// Source names where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
)

// Loaded is a resolved configuration and its origin.
type Loaded struct {
	Config XonixConfig
	Source Source
	Path   string // empty for the embedded default
}

// LoadXonix loads the Xonix configuration.
// Search order: customPath -> ~/.arcade/configs/xonix.yaml -> ./configs/xonix.yaml -> embedded default.
// Fields missing from a file keep their default values. Environment
// overrides are applied last, then the result is validated.
func LoadXonix(customPath string) (Loaded, error) {
	loaded, err := locate(customPath)
	if err != nil {
		return loaded, err
	}
	if err := applyEnv(&loaded.Config); err != nil {
		return loaded, err
	}
	if err := loaded.Config.Validate(); err != nil {
		return loaded, fmt.Errorf("validate %s: %w", loaded.describe(), err)
	}
	return loaded, nil
}

func locate(customPath string) (Loaded, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Loaded{}, err
		}
		return Loaded{Config: cfg, Source: SourceCustom, Path: customPath}, nil
	}

	candidates := []struct {
		src  Source
		path string
	}{
		{SourceUser, userConfigPath(FileName)},
		{SourceLocal, filepath.Join(localConfigDir, FileName)},
	}
	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		cfg, err := readFile(c.path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Loaded{}, err
		}
		return Loaded{Config: cfg, Source: c.src, Path: c.path}, nil
	}

	cfg, err := decode(defaultXonixYAML)
	if err != nil {
		// The embedded file is part of the binary; fall back to code defaults.
		cfg = DefaultXonixConfig()
	}
	return Loaded{Config: cfg, Source: SourceEmbedded}, nil
}

func readFile(path string) (XonixConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return XonixConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return XonixConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// decode overlays YAML onto the defaults and rejects unknown keys.
func decode(data []byte) (XonixConfig, error) {
	cfg := DefaultXonixConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg XonixConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func (l Loaded) describe() string {
	if l.Path == "" {
		return string(l.Source)
	}
	return l.Path
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
