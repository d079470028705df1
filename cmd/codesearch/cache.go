package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codesearch/internal/paths"
	"codesearch/internal/storage"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local response cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache size and entry counts",
	Args:  cobra.NoArgs,
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached response",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(cmd, "cleared", (*storage.ResponseCache).InvalidateAll)
	},
}

var cacheCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove expired responses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(cmd, "expired", (*storage.ResponseCache).CleanupExpired)
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd, cacheCleanupCmd)
	rootCmd.AddCommand(cacheCmd)
}

// CacheStatsView is the output of `cache stats`.
type CacheStatsView struct {
	storage.CacheStats
}

func (v *CacheStatsView) Human() string {
	ratio := 0.0
	if v.RawBytes > 0 {
		ratio = float64(v.CompressedBytes) / float64(v.RawBytes) * 100
	}
	return fmt.Sprintf("Cache:      %s\nEntries:    %d (%d expired)\nSize:       %d bytes (%.1f%% of %d raw)",
		v.Path, v.Entries, v.Expired, v.CompressedBytes, ratio, v.RawBytes)
}

// CacheResultView reports how many entries a cache operation removed.
type CacheResultView struct {
	Action  string `json:"action"`
	Removed int64  `json:"removed"`
}

func (v *CacheResultView) Human() string {
	return fmt.Sprintf("%d entries %s", v.Removed, v.Action)
}

func openCache(cmd *cobra.Command) (*storage.ResponseCache, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		if dir, err = paths.DefaultCacheDir(); err != nil {
			_ = logger.Close()
			return nil, nil, err
		}
	}
	cache, err := storage.Open(dir, logger.Logger)
	if err != nil {
		_ = logger.Close()
		return nil, nil, err
	}
	return cache, func() {
		_ = cache.Close()
		_ = logger.Close()
	}, nil
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	cache, done, err := openCache(cmd)
	if err != nil {
		return err
	}
	defer done()
	stats, err := cache.Stats()
	if err != nil {
		return err
	}
	return emit(cmd, &CacheStatsView{stats})
}

func withCache(cmd *cobra.Command, action string, op func(*storage.ResponseCache) (int64, error)) error {
	cache, done, err := openCache(cmd)
	if err != nil {
		return err
	}
	defer done()
	n, err := op(cache)
	if err != nil {
		return err
	}
	return emit(cmd, &CacheResultView{Action: action, Removed: n})
}
