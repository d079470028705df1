package config

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/BurntSushi/toml"
)

const backendsFile = "backends.toml"

// Duration is a time.Duration that reads and writes as text ("3s", "30m")
// in JSON, TOML and viper-decoded configs.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// BackendProfile is a named server in backends.toml:
//
//	[backend.chromium]
//	host = "https://cs.chromium.org"
//	package = "chromium"
//	timeout = "5s"
type BackendProfile struct {
	Host      string   `toml:"host"`
	Package   string   `toml:"package,omitempty"`
	Timeout   Duration `toml:"timeout,omitempty"`
	UserAgent string   `toml:"user_agent,omitempty"`
}

// Backends maps profile names to their settings.
type Backends struct {
	Backend map[string]BackendProfile `toml:"backend"`
}

// Names returns the profile names in sorted order.
func (b *Backends) Names() []string {
	names := make([]string, 0, len(b.Backend))
	for name := range b.Backend {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BackendsPath returns backends.toml next to the given config file, or in
// the default config directory when configFile is empty.
func BackendsPath(configFile string) (string, error) {
	if configFile != "" {
		return filepath.Join(filepath.Dir(configFile), backendsFile), nil
	}
	path, err := DefaultConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), backendsFile), nil
}

// LoadBackends reads backend profiles. A missing file yields no profiles.
func LoadBackends(path string) (*Backends, error) {
	b := &Backends{Backend: map[string]BackendProfile{}}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return b, nil
	}
	if _, err := toml.DecodeFile(path, b); err != nil {
		return nil, &ConfigError{Field: "backend", Message: "reading " + path + ": " + err.Error()}
	}
	if b.Backend == nil {
		b.Backend = map[string]BackendProfile{}
	}
	return b, nil
}

// Save writes the profiles to path.
func (b *Backends) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(b)
}

// ApplyBackend overrides the session settings with the profile named by
// c.Backend. It is a no-op when no backend is selected.
func (c *Config) ApplyBackend(b *Backends) error {
	if c.Backend == "" {
		return nil
	}
	p, ok := b.Backend[c.Backend]
	if !ok {
		return &ConfigError{Field: "backend", Message: "unknown backend profile " + c.Backend}
	}
	if p.Host != "" {
		c.Host = p.Host
	}
	if p.Package != "" {
		c.Package = p.Package
	}
	if p.Timeout.Duration > 0 {
		c.Timeout = p.Timeout
	}
	if p.UserAgent != "" {
		c.UserAgent = p.UserAgent
	}
	return nil
}

// DefaultBackends is written by `codesearch config init`.
func DefaultBackends() *Backends {
	return &Backends{Backend: map[string]BackendProfile{
		"chromium": {
			Host:    DefaultHost,
			Package: DefaultPackage,
			Timeout: Duration{DefaultTimeout},
		},
	}}
}
