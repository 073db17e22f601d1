// Package config loads the optional mkcourses.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/idelchi/mkcourses/internal/courses"
)

const (
	// FileName is the settings file looked up in the search directories.
	FileName = "mkcourses.yaml"
	// DefaultDirectory is the notes directory, relative to the working directory.
	DefaultDirectory = "notes"
)

// Config holds the settings that may come from the settings file.
type Config struct {
	// Directory is the notes directory to scan.
	Directory string `yaml:"directory"`
	// LogLevel is any logrus level name.
	LogLevel string `yaml:"log_level"`
	// Extensionless is the policy for chapter files without an extension.
	Extensionless string `yaml:"extensionless"`

	// Source is the file the settings were read from (empty = defaults only).
	Source string `yaml:"-"`
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		Directory:     DefaultDirectory,
		LogLevel:      logrus.InfoLevel.String(),
		Extensionless: string(courses.Bucket),
	}
}

// SearchPaths returns the candidate settings files in lookup order.
func SearchPaths() []string {
	paths := []string{filepath.Join(".", FileName)}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".mkcourses", FileName))
	}

	return paths
}

// Load reads the settings file. An explicit path must exist; otherwise the
// first file found in SearchPaths is used, and defaults apply if there is none.
func Load(explicit string) (Config, error) {
	if explicit != "" {
		return loadFile(explicit)
	}

	for _, path := range SearchPaths() {
		cfg, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		return cfg, err
	}

	return Default(), nil
}

func loadFile(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening configuration file: %w", err)
	}
	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		return Config{}, fmt.Errorf("parsing configuration file %q: %w", path, err)
	}

	cfg.Source = path

	return cfg, nil
}

// Parse decodes settings from YAML, filling unset keys with defaults.
func Parse(reader io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.Directory) == "" {
		cfg.Directory = DefaultDirectory
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseFromString decodes settings from a YAML string.
func ParseFromString(content string) (Config, error) {
	return Parse(strings.NewReader(content))
}

// Validate checks the log level and extensionless policy.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	if _, err := courses.ParseExtensionless(c.Extensionless); err != nil {
		return err
	}

	return nil
}

// Level returns the parsed log level.
func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log_level: %w", err)
	}

	return level, nil
}

// Policy returns the parsed extensionless policy.
func (c Config) Policy() courses.Extensionless {
	policy, err := courses.ParseExtensionless(c.Extensionless)
	if err != nil {
		return courses.Bucket
	}

	return policy
}
