package domain

import (
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_CHUNK_SIZE   = 4096
	DEFAULT_LOG_LEVEL    = "info"
	DEFAULT_LOG_ENCODING = "json"
)

var (
	ErrMalformedOffset    = errors.New("malformed offset")
	ErrEmptyPath          = errors.New("watched path is empty")
	ErrInvalidChunkSize   = errors.New("chunk size must be greater than zero")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidLogEncoding = errors.New("invalid log encoding")
)

var (
	validLogLevels    = []string{"debug", "info", "warn", "error"}
	validLogEncodings = []string{"json", "console"}
)

// RuntimeConfig holds everything a mirror run needs. StartOffset and
// WatchedPath only ever come from the command line; the YAML file can tune
// the ambient settings.
type RuntimeConfig struct {
	StartOffset int64     `yaml:"-"`
	WatchedPath string    `yaml:"-"`
	ChunkSize   int       `yaml:"chunk_size"`
	Log         LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// NewRuntimeConfig parses the two positional inputs and fills the defaults.
func NewRuntimeConfig(offset, path string) (*RuntimeConfig, error) {
	start, err := ParseOffset(offset)
	if err != nil {
		return nil, err
	}

	return &RuntimeConfig{
		StartOffset: start,
		WatchedPath: path,
		ChunkSize:   DEFAULT_CHUNK_SIZE,
		Log: LogConfig{
			Level:    DEFAULT_LOG_LEVEL,
			Encoding: DEFAULT_LOG_ENCODING,
		},
	}, nil
}

// ParseOffset parses a base-10 byte offset. Trailing garbage, surrounding
// whitespace and negative values are rejected.
func ParseOffset(s string) (int64, error) {
	if s == "" || strings.TrimSpace(s) != s {
		return 0, errors.Wrapf(ErrMalformedOffset, "%q", s)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedOffset, "%q", s)
	}

	if n < 0 {
		return 0, errors.Wrapf(ErrMalformedOffset, "%q is negative", s)
	}

	return n, nil
}

// LoadConfigs overlays the YAML file at path on top of config. An empty
// path leaves config untouched.
func LoadConfigs(path string, config *RuntimeConfig) error {
	if path == "" {
		return nil
	}

	configData, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}

	// offset and path are tagged "-" so the file cannot move the cursor
	err = yaml.Unmarshal(configData, config)
	if err != nil {
		return errors.Wrap(err, "parse config")
	}

	return nil
}

func (c *RuntimeConfig) Validate() error {
	if c.WatchedPath == "" {
		return ErrEmptyPath
	}

	if c.StartOffset < 0 {
		return errors.Wrapf(ErrMalformedOffset, "%d is negative", c.StartOffset)
	}

	if c.ChunkSize <= 0 {
		return ErrInvalidChunkSize
	}

	if !slices.Contains(validLogLevels, c.Log.Level) {
		return errors.Wrapf(ErrInvalidLogLevel, "%q", c.Log.Level)
	}

	if !slices.Contains(validLogEncodings, c.Log.Encoding) {
		return errors.Wrapf(ErrInvalidLogEncoding, "%q", c.Log.Encoding)
	}

	return nil
}
