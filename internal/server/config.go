package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"net"
	"strconv"
	"strings"

	"github.com/iwvelando/youth-budget/internal/config"
	"github.com/iwvelando/youth-budget/pkg/constants"
	"github.com/spf13/viper"
)

// Config holds the settings for the budget calculator server. The request
// limit is kept both as written ("64K") and in bytes.
type Config struct {
	Address     string               `yaml:"address" mapstructure:"address"`
	MaxBodySize string               `yaml:"maxBodySize" mapstructure:"maxBodySize"`
	Logging     config.LoggingConfig `yaml:"logging" mapstructure:"logging"`

	bodyLimit int64
}

var sizeUnits = map[string]int64{
	"":   1,
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
}

// LoadConfig reads the server settings at path. A blank path or a missing file
// serves the calculator on the defaults. Keys can be overridden from the
// environment, e.g. YOUTH_BUDGET_SERVER_MAXBODYSIZE=256K.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.ServerEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("address", constants.DefaultServerAddress)
	v.SetDefault("maxBodySize", strconv.FormatInt(constants.DefaultMaxBodySizeBytes, 10))
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")

	if path != "" {
		v.SetConfigFile(path)
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read server config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode server config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the listen address and resolves the request limit.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}
	if _, _, err := net.SplitHostPort(c.Address); err != nil {
		return fmt.Errorf("invalid server address %q: %w", c.Address, err)
	}

	limit, err := ParseSize(c.MaxBodySize)
	if err != nil {
		return err
	}
	return c.SetBodySizeBytes(limit)
}

// BodySizeBytes returns the largest estimate request the server accepts.
func (c *Config) BodySizeBytes() int64 {
	if c.bodyLimit <= 0 {
		return constants.DefaultMaxBodySizeBytes
	}
	return c.bodyLimit
}

// SetBodySizeBytes replaces the request limit, e.g. from a command-line flag.
func (c *Config) SetBodySizeBytes(size int64) error {
	if size <= 0 || size > constants.MaxBodySizeLimitBytes {
		return fmt.Errorf("request body limit %d is outside 1-%d bytes", size, constants.MaxBodySizeLimitBytes)
	}
	c.bodyLimit = size
	c.MaxBodySize = strconv.FormatInt(size, 10)
	return nil
}

// ParseSize reads a request limit such as "4096", "64K" or "1MB". Blank text
// means the default limit.
func ParseSize(value string) (int64, error) {
	text := strings.ToUpper(strings.TrimSpace(value))
	if text == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	digits := strings.IndexFunc(text, func(r rune) bool { return r < '0' || r > '9' })
	if digits < 0 {
		digits = len(text)
	}
	if digits == 0 {
		return 0, fmt.Errorf("invalid size %q: missing number", value)
	}

	unit, ok := sizeUnits[strings.TrimSpace(text[digits:])]
	if !ok {
		return 0, fmt.Errorf("invalid size %q: unit must be B, K or M", value)
	}
	n, err := strconv.ParseInt(text[:digits], 10, 64)
	if err != nil || n > math.MaxInt64/unit {
		return 0, fmt.Errorf("invalid size %q: number out of range", value)
	}
	return n * unit, nil
}
