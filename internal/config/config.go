package config

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"codesearch/internal/paths"
	"codesearch/internal/version"
)

const (
	// CurrentVersion is the config schema version written by Save.
	CurrentVersion = 1

	DefaultHost    = "https://cs.chromium.org"
	DefaultPackage = "chromium"
	DefaultTimeout = 3 * time.Second
	DefaultExpiry  = 30 * time.Minute

	// EnvPrefix is prepended to environment overrides (CODESEARCH_HOST, ...).
	EnvPrefix = "CODESEARCH"

	configName = "config"
)

// Config is the complete codesearch configuration (config.json).
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Session `mapstructure:",squash"`

	// Backend names a profile in backends.toml that overrides host,
	// package and timeout.
	Backend      string        `json:"backend,omitempty" mapstructure:"backend"`
	MappingsFile string        `json:"mappingsFile,omitempty" mapstructure:"mappingsFile"`
	Logging      LoggingConfig `json:"logging" mapstructure:"logging"`
}

// Session holds everything a client session needs. The zero value is
// usable: empty fields fall back to the package defaults and caching is off.
type Session struct {
	Host                string      `json:"host" mapstructure:"host"`
	Package             string      `json:"package" mapstructure:"package"`
	SourceRoot          string      `json:"sourceRoot,omitempty" mapstructure:"sourceRoot"`
	PathInsideSourceDir string      `json:"pathInsideSourceDir,omitempty" mapstructure:"pathInsideSourceDir"`
	Timeout             Duration    `json:"timeout" mapstructure:"timeout"`
	UserAgent           string      `json:"userAgent,omitempty" mapstructure:"userAgent"`
	Cache               CacheConfig `json:"cache" mapstructure:"cache"`
}

// CacheConfig controls the on-disk response cache.
type CacheConfig struct {
	Enabled bool     `json:"enabled" mapstructure:"enabled"`
	Dir     string   `json:"dir,omitempty" mapstructure:"dir"`
	Expiry  Duration `json:"expiry" mapstructure:"expiry"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format     string `json:"format" mapstructure:"format"`
	Level      string `json:"level" mapstructure:"level"`
	File       string `json:"file,omitempty" mapstructure:"file"`
	MaxSize    string `json:"maxSize,omitempty" mapstructure:"maxSize"`
	MaxBackups int    `json:"maxBackups,omitempty" mapstructure:"maxBackups"`
}

// DefaultUserAgent identifies this client to the server.
func DefaultUserAgent() string {
	return "Go-CodeSearch-Client/" + version.Version
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Session: Session{
			Host:      DefaultHost,
			Package:   DefaultPackage,
			Timeout:   Duration{DefaultTimeout},
			UserAgent: DefaultUserAgent(),
			Cache: CacheConfig{
				Enabled: true,
				Expiry:  Duration{DefaultExpiry},
			},
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "warn",
		},
	}
}

// WithDefaults returns a copy of s with empty fields replaced by defaults.
// Caching stays as configured.
func (s Session) WithDefaults() Session {
	if s.Host == "" {
		s.Host = DefaultHost
	}
	s.Host = strings.TrimRight(s.Host, "/")
	if s.Package == "" {
		s.Package = DefaultPackage
	}
	if s.Timeout.Duration <= 0 {
		s.Timeout = Duration{DefaultTimeout}
	}
	if s.UserAgent == "" {
		s.UserAgent = DefaultUserAgent()
	}
	if s.Cache.Expiry.Duration <= 0 {
		s.Cache.Expiry = Duration{DefaultExpiry}
	}
	return s
}

func newViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()

	v.SetDefault("version", def.Version)
	v.SetDefault("host", def.Host)
	v.SetDefault("package", def.Package)
	v.SetDefault("sourceRoot", "")
	v.SetDefault("pathInsideSourceDir", "")
	v.SetDefault("timeout", def.Timeout.String())
	v.SetDefault("userAgent", def.UserAgent)
	v.SetDefault("backend", "")
	v.SetDefault("mappingsFile", "")
	v.SetDefault("cache.enabled", def.Cache.Enabled)
	v.SetDefault("cache.dir", "")
	v.SetDefault("cache.expiry", def.Cache.Expiry.String())
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.maxSize", "")
	v.SetDefault("logging.maxBackups", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("sourceRoot", EnvPrefix+"_SOURCE_ROOT")
	_ = v.BindEnv("userAgent", EnvPrefix+"_USER_AGENT")
	_ = v.BindEnv("logging.level", EnvPrefix+"_LOG_LEVEL")
	_ = v.BindEnv("logging.format", EnvPrefix+"_LOG_FORMAT")

	return v
}

func decodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
}

// LoadConfig loads configuration from configFile, or from config.json in
// paths.ConfigDir() when configFile is empty. A missing default file is not
// an error; defaults and environment overrides still apply.
func LoadConfig(configFile string) (*Config, error) {
	v := newViper()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		dir, err := paths.ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(configName)
		v.SetConfigType("json")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration as indented JSON to path.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// DefaultConfigPath returns config.json inside paths.ConfigDir().
func DefaultConfigPath() (string, error) {
	dir, err := paths.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName+".json"), nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "", "human", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be human or json"}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "unknown level " + c.Logging.Level}
	}
	return nil
}

// Validate checks the session settings.
func (s Session) Validate() error {
	if s.Host != "" {
		u, err := url.Parse(s.Host)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &ConfigError{Field: "host", Message: "must be an http or https URL"}
		}
	}
	if s.Timeout.Duration < 0 {
		return &ConfigError{Field: "timeout", Message: "must not be negative"}
	}
	if s.Cache.Expiry.Duration < 0 {
		return &ConfigError{Field: "cache.expiry", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
