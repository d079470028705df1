package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"codesearch/internal/client"
	"codesearch/internal/config"
	"codesearch/internal/paths"
	"codesearch/internal/protocol"
	"codesearch/internal/slogutil"
	"codesearch/internal/version"
)

var (
	configFile     string
	hostFlag       string
	packageFlag    string
	sourceRootFlag string
	noCacheFlag    bool
	timeoutFlag    time.Duration
	formatFlag     string
	verbosity      int
	quietFlag      bool
)

var rootCmd = &cobra.Command{
	Use:   "codesearch",
	Short: "Query a Chromium-style code search backend",
	Long: `codesearch talks to a code search server to look up files, annotations,
cross references and call graphs for a local checkout.

Paths given on the command line are local files inside the checkout, or
server paths (src/...) when no such local file exists.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("codesearch version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Config file (default: config.json in the user config dir)")
	pf.StringVar(&hostFlag, "host", "", "Code search server URL")
	pf.StringVar(&packageFlag, "package", "", "Package name sent with file specs")
	pf.StringVar(&sourceRootFlag, "source-root", "", "Checkout root (the directory containing src/)")
	pf.BoolVar(&noCacheFlag, "no-cache", false, "Disable the on-disk response cache")
	pf.DurationVar(&timeoutFlag, "timeout", 0, "Per-request timeout")
	pf.StringVar(&formatFlag, "format", string(FormatHuman), "Output format (json, yaml, toml, human)")
	pf.CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	pf.BoolVar(&quietFlag, "quiet", false, "Only log errors")
}

// loadConfig reads the config file, applies the selected backend profile
// and then the command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	backendsPath, err := config.BackendsPath(configFile)
	if err != nil {
		return nil, err
	}
	backends, err := config.LoadBackends(backendsPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyBackend(backends); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = hostFlag
	}
	if flags.Changed("package") {
		cfg.Package = packageFlag
	}
	if flags.Changed("source-root") {
		cfg.SourceRoot = sourceRootFlag
	}
	if flags.Changed("timeout") {
		cfg.Timeout = config.Duration{Duration: timeoutFlag}
	}
	if noCacheFlag {
		cfg.Cache.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*slogutil.CLILogger, error) {
	flags := cmd.Flags()
	cliSet := flags.Changed("verbose") || flags.Changed("quiet")
	return slogutil.NewCLILogger(cmd.ErrOrStderr(), cfg.Logging, verbosity, quietFlag, cliSet)
}

// env bundles what a command needs to talk to the backend.
type env struct {
	cfg     *config.Config
	logger  *slogutil.CLILogger
	session *client.Session
}

func (e *env) Close() {
	_ = e.session.Close()
	_ = e.logger.Close()
}

// newEnv loads the configuration and opens a session.
func newEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, err
	}

	opts := []client.Option{client.WithLogger(logger.Logger)}
	if cfg.MappingsFile != "" {
		pt, err := loadTransformer(cfg)
		if err != nil {
			_ = logger.Close()
			return nil, err
		}
		cfg.SourceRoot = pt.SourceRoot()
		opts = append(opts, client.WithPathTransformer(pt))
	}

	session, err := client.NewSession(cfg.Session, opts...)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, session: session}, nil
}

func loadTransformer(cfg *config.Config) (*paths.PathTransformer, error) {
	mappings, err := paths.LoadMappings(cfg.MappingsFile)
	if err != nil {
		return nil, err
	}
	root := cfg.SourceRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if root, err = paths.GetSourceRoot(wd); err != nil {
			return nil, err
		}
	}
	return paths.NewPathTransformer(root, mappings)
}

// fileSpecFor maps a command-line path to a file spec. Existing local files
// are translated relative to the checkout; anything else is taken as a
// server path.
func fileSpecFor(s *client.Session, arg string) protocol.FileSpec {
	if abs, err := filepath.Abs(arg); err == nil {
		if _, err := os.Stat(abs); err == nil {
			return s.GetFileSpec(abs)
		}
	}
	return protocol.FileSpec{Name: filepath.ToSlash(arg), PackageName: s.Config().Package}
}

// withEnv adapts a command body that needs a session into a cobra RunE.
func withEnv(run func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		return run(cmd.Context(), cmd, e, args)
	}
}

// emit writes v to the command's stdout in the selected format.
func emit(cmd *cobra.Command, v interface{}) error {
	out, err := FormatResponse(v, OutputFormat(formatFlag))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
