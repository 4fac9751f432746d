package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dshills/linesift/internal/logging"
	"github.com/dshills/linesift/internal/matcher"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "LINESIFT"

// Keys shared by flags, environment variables and the config file. In the
// JSON config file they appear verbatim, e.g. {"engine": "ahocorasick"}.
const (
	KeyNegate   = "negate"
	KeyEngine   = "engine"
	KeyBuffered = "buffered"
	KeyLogLevel = "log-level"
)

// Config represents the effective linesift configuration. It is built once at
// startup and not modified afterwards.
type Config struct {
	ReferenceFile string
	Negate        bool
	Engine        matcher.Engine
	Buffered      bool
	LogLevel      string
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Engine:   matcher.EngineRegexp,
		LogLevel: "warn",
	}
}

// ConfigDir returns the platform-appropriate config directory for linesift.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "linesift"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "linesift"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "linesift"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "linesift"), nil
	default:
		return filepath.Join(home, ".config", "linesift"), nil
	}
}

// ConfigPath returns the full path to the default config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load builds the effective config by merging: defaults <- file <- env <- flags.
// configFile names an explicit config file, which must exist; when empty the
// default location is used if present. Only flags that were set on the
// command line override other sources. referenceFile is taken verbatim.
func Load(referenceFile, configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault(KeyNegate, def.Negate)
	v.SetDefault(KeyEngine, string(def.Engine))
	v.SetDefault(KeyBuffered, def.Buffered)
	v.SetDefault(KeyLogLevel, def.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readFile(v, configFile); err != nil {
		return Config{}, err
	}

	if flags != nil {
		for _, key := range []string{KeyNegate, KeyEngine, KeyBuffered, KeyLogLevel} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", key, err)
				}
			}
		}
	}

	cfg := Config{
		ReferenceFile: referenceFile,
		Negate:        v.GetBool(KeyNegate),
		Engine:        matcher.Engine(v.GetString(KeyEngine)),
		Buffered:      v.GetBool(KeyBuffered),
		LogLevel:      v.GetString(KeyLogLevel),
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(v *viper.Viper, configFile string) error {
	explicit := configFile != ""
	if !explicit {
		path, err := ConfigPath()
		if err != nil {
			// No home directory means no default file; nothing to read.
			return nil
		}
		configFile = path
	}

	v.SetConfigFile(configFile)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	return nil
}

// normalize canonicalizes enum fields; Validate checks them.
func (c *Config) normalize() {
	c.Engine = matcher.Engine(strings.ToLower(strings.TrimSpace(string(c.Engine))))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// Validate reports whether the config can drive a filter run.
func (c Config) Validate() error {
	if c.ReferenceFile == "" {
		return errors.New("reference file path is required")
	}
	if _, err := matcher.ParseEngine(string(c.Engine)); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
