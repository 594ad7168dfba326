package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tasnim.dev/s3ls/internal/constants"
)

// PathEnv overrides the config file location.
const PathEnv = "S3LS_CONFIG"

// Config holds optional defaults loaded from ~/.config/s3ls/config.yaml.
type Config struct {
	DefaultProfile string `yaml:"default_profile"`
	DefaultRegion  string `yaml:"default_region"`
	DefaultBucket  string `yaml:"default_bucket"`
	Endpoint       string `yaml:"endpoint"`
	PathStyle      bool   `yaml:"path_style"`
	MaxKeys        int32  `yaml:"max_keys"`
	LogLevel       string `yaml:"log_level"`
}

// Path returns the config file location, or "" if it cannot be determined.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "s3ls", "config.yaml")
}

// Load reads the config file. Returns zero-value Config if the file doesn't exist.
func Load() (*Config, error) {
	path := Path()
	if path == "" {
		return &Config{}, nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Merge applies CLI flag overrides. Flags take precedence over config defaults.
func (c *Config) Merge(profile, region string) (string, string) {
	p := c.DefaultProfile
	if profile != "" {
		p = profile
	}
	r := c.DefaultRegion
	if region != "" {
		r = region
	}
	return p, r
}

// Bucket picks the bucket to list: the command-line argument, then the
// config default, then the built-in default.
func (c *Config) Bucket(arg string) string {
	switch {
	case arg != "":
		return arg
	case c.DefaultBucket != "":
		return c.DefaultBucket
	default:
		return constants.DefaultBucket
	}
}

// Level returns the log level flag if set, else the configured one.
func (c *Config) Level(flag string) string {
	if flag != "" {
		return flag
	}
	return c.LogLevel
}
