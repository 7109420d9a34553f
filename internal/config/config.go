package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/litezip/pkg/litezip"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// DefaultIgnore lists resource names excluded when no litezip.yaml says otherwise.
var DefaultIgnore = []string{".DS_Store", "Thumbs.db"}

// TreeConfig is the content of litezip.yaml at the root of a tree.
type TreeConfig struct {
	// Ignore holds glob patterns matched against resource base names.
	Ignore []string `yaml:"ignore"`
}

// Default returns the configuration used when a tree has no litezip.yaml.
func Default() *TreeConfig {
	return &TreeConfig{Ignore: append([]string(nil), DefaultIgnore...)}
}

// Load reads litezip.yaml from root. A missing file yields the defaults
// together with ErrConfigNotFound.
func Load(root string) (*TreeConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, litezip.ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), ErrConfigNotFound
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes litezip.yaml content. An absent ignore key keeps the
// defaults; an explicit empty list disables them.
func Parse(data []byte) (*TreeConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", litezip.ErrInvalidConfig, litezip.ConfigFileName, err)
	}
	for _, pattern := range cfg.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("%w: %s: bad ignore pattern %q", litezip.ErrInvalidConfig, litezip.ConfigFileName, pattern)
		}
	}
	return cfg, nil
}

// Environment variables read by LoadEnv.
const (
	EnvVerbose = "LITEZIP_VERBOSE"
	EnvNoColor = "NO_COLOR"
)

// Env holds settings taken from the process environment.
type Env struct {
	Verbose bool
	NoColor bool
}

// LoadEnv loads the .env file at path (if present) without overriding
// variables already set in the process, then reads the litezip settings.
func LoadEnv(path string) (Env, error) {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return Env{}, fmt.Errorf("%w: %s: %v", litezip.ErrInvalidConfig, path, err)
	}

	var env Env
	if v := os.Getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return Env{}, fmt.Errorf("%w: %s=%q is not a boolean", litezip.ErrInvalidConfig, EnvVerbose, v)
		}
		env.Verbose = verbose
	}
	_, env.NoColor = os.LookupEnv(EnvNoColor)
	return env, nil
}
