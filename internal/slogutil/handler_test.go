package slogutil

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"testing"
	"time"
)

var linePattern = regexp.MustCompile(`^\d{4}-\d\d-\d\dT\d\d:\d\d:\d\dZ \[(debug|info|warn|error)\] `)

func TestLineHandler(t *testing.T) {
	tests := []struct {
		name string
		log  func(*slog.Logger)
		want []string
	}{
		{
			name: "plain",
			log:  func(l *slog.Logger) { l.Info("Cache hit") },
			want: []string{"[info] Cache hit\n"},
		},
		{
			name: "attrs",
			log:  func(l *slog.Logger) { l.Warn("Fetched", "status", 200, "took", 3*time.Second) },
			want: []string{"[warn] Fetched | status=200 took=3s\n"},
		},
		{
			name: "quoting",
			log: func(l *slog.Logger) {
				l.Error("Request failed", "reason", "connection refused", "query", "", "error", errors.New("dial tcp: timeout"))
			},
			want: []string{`reason="connection refused"`, `query=""`, `error="dial tcp: timeout"`},
		},
		{
			name: "groups",
			log: func(l *slog.Logger) {
				l.WithGroup("session").With("host", "https://cs.chromium.org").Debug("Fetching", "method", "GET")
			},
			want: []string{"| session.host=https://cs.chromium.org session.method=GET"},
		},
		{
			name: "group value",
			log:  func(l *slog.Logger) { l.Info("Stats", slog.Group("cache", "hits", 2, "fetches", 1)) },
			want: []string{"cache={hits=2 fetches=1}"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewLogger(&buf, slog.LevelDebug))
			out := buf.String()
			if !linePattern.MatchString(out) {
				t.Errorf("line %q does not start with timestamp and level", out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("line %q missing %q", out, w)
				}
			}
		})
	}
}

func TestLineHandler_BoundAttrsDoNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&buf, slog.LevelInfo)
	base.With("request", "a").Info("first")
	base.Info("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasSuffix(lines[0], "first | request=a") || strings.Contains(lines[1], "request") {
		t.Errorf("lines = %q", lines)
	}
}

func TestLineHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn)
	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")
	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Errorf("wrote %d lines at warn, want 2:\n%s", got, buf.String())
	}
}

func TestLevelFromString(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := LevelFromString(in); got != want {
			t.Errorf("LevelFromString(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		quiet     bool
		want      slog.Level
	}{
		{0, false, slog.LevelWarn},
		{1, false, slog.LevelInfo},
		{2, false, slog.LevelDebug},
		{3, false, slog.LevelDebug},
		{0, true, LevelSilent},
		{5, true, LevelSilent},
	}
	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity, tt.quiet); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d, %v) = %v, want %v", tt.verbosity, tt.quiet, got, tt.want)
		}
	}
}

func TestNewDiscardLogger(t *testing.T) {
	if NewDiscardLogger().Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger is enabled for errors")
	}
}

func TestTeeHandler(t *testing.T) {
	var info, warn bytes.Buffer
	logger := slog.New(NewTeeHandler(
		NewLineHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		NewLineHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)).With("host", "cs")

	logger.Info("revision changed")
	logger.Warn("decode failed")

	if !strings.Contains(info.String(), "revision changed | host=cs") || !strings.Contains(info.String(), "decode failed") {
		t.Errorf("info sink = %q", info.String())
	}
	if strings.Contains(warn.String(), "revision changed") || !strings.Contains(warn.String(), "decode failed | host=cs") {
		t.Errorf("warn sink = %q", warn.String())
	}
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewHandler(&buf, "json", slog.LevelInfo)).Info("cache hit", "key", "abc")
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"key":"abc"`) {
		t.Errorf("json output = %q", buf.String())
	}
}
