package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/iwvelando/compound-interest/internal/config"
	"github.com/iwvelando/compound-interest/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address       string               `yaml:"address"`
	MaxUploadSize ByteSize             `yaml:"maxUploadSize"`
	RateLimit     RateLimitConfig      `yaml:"rateLimit"`
	Logging       config.LoggingConfig `yaml:"logging"`
}

// RateLimitConfig bounds how fast the API may be called. A zero rate
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

// ByteSize is a byte count written either as a plain number or with a
// K/KB/M/MB suffix.
type ByteSize int64

// UnmarshalYAML parses the scalar with ParseSize.
func (s *ByteSize) UnmarshalYAML(node *yaml.Node) error {
	size, err := ParseSize(node.Value)
	if err != nil {
		return fmt.Errorf("maxUploadSize on line %d: %w", node.Line, err)
	}
	*s = ByteSize(size)
	return nil
}

var sizeMultipliers = map[string]int64{
	"":   1,
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
}

// DefaultConfig is the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Address:       constants.DefaultServerAddress,
		MaxUploadSize: ByteSize(constants.DefaultMaxUploadSizeBytes),
		RateLimit: RateLimitConfig{
			RequestsPerSecond: constants.DefaultRequestsPerSecond,
			Burst:             constants.DefaultRequestBurst,
		},
	}
}

// LoadConfig reads the server configuration at path over the defaults. A
// missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read server config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config %s: %w", path, err)
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, fmt.Errorf("invalid server config %s: %w", path, err)
	}
	return cfg, nil
}

// UploadSizeBytes is the largest request body the API accepts.
func (c *Config) UploadSizeBytes() int64 {
	return int64(c.MaxUploadSize)
}

// applyDefaults fills fields the file left empty and rejects a negative rate.
func (c *Config) applyDefaults() error {
	if c.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("rateLimit.requestsPerSecond must not be negative, got %v", c.RateLimit.RequestsPerSecond)
	}
	if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = constants.DefaultRequestBurst
	}
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}
	if c.MaxUploadSize <= 0 {
		c.MaxUploadSize = ByteSize(constants.DefaultMaxUploadSizeBytes)
	}
	return nil
}

// ParseSize reads "512", "64K" or "2MB" as a byte count. Units are binary
// and case-insensitive; an empty value is the default upload limit.
func ParseSize(value string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return constants.DefaultMaxUploadSizeBytes, nil
	}

	digits := strings.TrimRightFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	unit := strings.TrimSpace(s[len(digits):])
	if digits == "" {
		return 0, fmt.Errorf("size %q has no number", value)
	}

	multiplier, ok := sizeMultipliers[unit]
	if !ok {
		return 0, fmt.Errorf("size %q has unsupported unit %q", value, unit)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(digits), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("size %q: %w", value, err)
	}
	if n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("size %q overflows", value)
	}
	return n * multiplier, nil
}
