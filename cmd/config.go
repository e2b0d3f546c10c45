package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable holding the config file path.
const ConfigEnv = "CEDAR_CONFIG"

// Tree forms logged when dump_ast is on.
const (
	DumpFormatLisp = "lisp"
	DumpFormatRPN  = "rpn"
)

// Config is the driver configuration.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	DumpAST     bool   `yaml:"dump_ast"`
	DumpFormat  string `yaml:"dump_format"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "warn",
		Prompt:     "> ",
		DumpFormat: DumpFormatLisp,
	}
}

// LoadConfigFromEnv loads the file named by CEDAR_CONFIG, or returns the
// defaults when the variable is unset.
func LoadConfigFromEnv() (*Config, error) {
	path, ok := os.LookupEnv(ConfigEnv)
	if !ok || path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// LoadConfig reads a YAML config file. Fields missing from the file keep their
// defaults; a missing or empty file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	if err := decodeConfig(file, config); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return config, nil
}

func decodeConfig(r io.Reader, config *Config) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return config.validate()
}

func (c *Config) validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch c.DumpFormat {
	case DumpFormatLisp, DumpFormatRPN:
	default:
		return fmt.Errorf("dump_format: unknown format %q", c.DumpFormat)
	}
	return nil
}

// Level returns the configured log level; validate has already checked it.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
