package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codesearch/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage codesearch configuration",
	Long:  "View and manage the configuration stored in config.json and backends.toml",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration after the config file, the selected backend
profile, CODESEARCH_* environment variables and command-line flags have
been applied.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write default config.json and backends.toml",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite existing files")
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// ConfigView is the output of `config show`.
type ConfigView struct {
	Path     string         `json:"path,omitempty"`
	Backends []string       `json:"backends,omitempty"`
	Config   *config.Config `json:"config"`
}

func (v *ConfigView) Human() string {
	c := v.Config
	var b strings.Builder
	b.WriteString("codesearch configuration\n")
	b.WriteString(strings.Repeat("─", 50) + "\n")
	if v.Path != "" {
		fmt.Fprintf(&b, "Source: %s\n", v.Path)
	} else {
		b.WriteString("Source: defaults\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "host:        %s\n", c.Host)
	fmt.Fprintf(&b, "package:     %s\n", c.Package)
	fmt.Fprintf(&b, "timeout:     %s\n", c.Timeout)
	fmt.Fprintf(&b, "userAgent:   %s\n", c.UserAgent)
	if c.Backend != "" {
		fmt.Fprintf(&b, "backend:     %s\n", c.Backend)
	}
	if c.SourceRoot != "" {
		fmt.Fprintf(&b, "sourceRoot:  %s\n", c.SourceRoot)
	}
	if c.MappingsFile != "" {
		fmt.Fprintf(&b, "mappings:    %s\n", c.MappingsFile)
	}
	fmt.Fprintf(&b, "cache:       enabled=%v expiry=%s", c.Cache.Enabled, c.Cache.Expiry)
	if c.Cache.Dir != "" {
		fmt.Fprintf(&b, " dir=%s", c.Cache.Dir)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "logging:     level=%s format=%s\n", c.Logging.Level, c.Logging.Format)
	if len(v.Backends) > 0 {
		fmt.Fprintf(&b, "\nBackend profiles: %s\n", strings.Join(v.Backends, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func configPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.DefaultConfigPath()
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	view := &ConfigView{Config: cfg}
	if path, err := configPath(); err == nil {
		if _, err := os.Stat(path); err == nil {
			view.Path = path
		}
	}
	if bp, err := config.BackendsPath(configFile); err == nil {
		if backends, err := config.LoadBackends(bp); err == nil {
			view.Backends = backends.Names()
		}
	}
	return emit(cmd, view)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	backendsPath, err := config.BackendsPath(configFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if writeAllowed(path) {
		if err := config.DefaultConfig().Save(path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(out, "Wrote %s\n", path)
	} else {
		fmt.Fprintf(out, "%s exists, use --force to overwrite\n", path)
	}
	if writeAllowed(backendsPath) {
		if err := config.DefaultBackends().Save(backendsPath); err != nil {
			return fmt.Errorf("writing %s: %w", backendsPath, err)
		}
		fmt.Fprintf(out, "Wrote %s\n", backendsPath)
	} else {
		fmt.Fprintf(out, "%s exists, use --force to overwrite\n", backendsPath)
	}
	return nil
}

func writeAllowed(path string) bool {
	if configForce {
		return true
	}
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}
