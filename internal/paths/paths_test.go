package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	cserrors "codesearch/internal/errors"
)

func mkfile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGetHome(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(HomeEnvVar, dir)
		got, err := GetHome()
		if err != nil {
			t.Fatalf("GetHome() error = %v", err)
		}
		if got != dir {
			t.Errorf("GetHome() = %q, want %q", got, dir)
		}
		cache, err := DefaultCacheDir()
		if err != nil {
			t.Fatal(err)
		}
		if cache != filepath.Join(dir, "cache") {
			t.Errorf("DefaultCacheDir() = %q", cache)
		}
	})

	t.Run("default under user home", func(t *testing.T) {
		t.Setenv(HomeEnvVar, "")
		got, err := GetHome()
		if err != nil {
			t.Skipf("no user home: %v", err)
		}
		if filepath.Base(got) != DefaultHome {
			t.Errorf("GetHome() = %q, want suffix %q", got, DefaultHome)
		}
	})
}

func TestGetSourceRoot(t *testing.T) {
	root := t.TempDir()
	mkfile(t, filepath.Join(root, "src", ".gn"))
	file := filepath.Join(root, "src", "net", "base", "io.cc")
	mkfile(t, file)

	got, err := GetSourceRoot(file)
	if err != nil {
		t.Fatalf("GetSourceRoot() error = %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("GetSourceRoot() = %q, want %q", got, want)
	}

	rel, err := GetPackageRelativePath(file)
	if err != nil {
		t.Fatalf("GetPackageRelativePath() error = %v", err)
	}
	if rel != "src/net/base/io.cc" {
		t.Errorf("GetPackageRelativePath() = %q", rel)
	}
}

func TestGetSourceRootErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := GetSourceRoot(filepath.Join(dir, "missing.cc"))
	if !cserrors.Is(err, cserrors.NoSourceRoot) {
		t.Errorf("missing file: error = %v, want NoSourceRoot", err)
	}

	orphan := filepath.Join(dir, "orphan.cc")
	mkfile(t, orphan)
	_, err = GetSourceRoot(orphan)
	if !cserrors.Is(err, cserrors.NoSourceRoot) {
		t.Errorf("no .gn: error = %v, want NoSourceRoot", err)
	}
}

func TestCanonicalizePath(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a", "b.cc")
	mkfile(t, file)

	got, err := CanonicalizePath(file, root)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a/b.cc" {
		t.Errorf("CanonicalizePath() = %q", got)
	}
	if !IsWithinRoot(file, root) {
		t.Error("IsWithinRoot() = false for a child path")
	}
	if IsWithinRoot(filepath.Dir(root), root) {
		t.Error("IsWithinRoot() = true for the parent directory")
	}
	if got := JoinRootPath(root, "a\\b.cc"); got != file {
		t.Errorf("JoinRootPath() = %q, want %q", got, file)
	}
}

func newCheckout(t *testing.T, outDirs map[string]time.Duration) string {
	t.Helper()
	root := t.TempDir()
	now := time.Now()
	for name, age := range outDirs {
		dir := filepath.Join(root, "src", "out", name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		ts := now.Add(-age)
		if err := os.Chtimes(dir, ts, ts); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestPathTransformerNoOutDir(t *testing.T) {
	root := t.TempDir()
	pt, err := NewPathTransformer(root, []OutDirMapping{{Pattern: "/out/.*/", Target: "/out/Debug/"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(pt.Mappings()) != 0 {
		t.Errorf("Mappings() = %v, want empty", pt.Mappings())
	}
	got, err := pt.LocalToRemote(filepath.Join(root, "src", "out", "x", "gen.h"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "src/out/x/gen.h" {
		t.Errorf("LocalToRemote() = %q", got)
	}
}

func TestPathTransformer(t *testing.T) {
	root := newCheckout(t, map[string]time.Duration{
		"gn":      time.Hour,
		"Release": 2 * time.Hour,
		"Default": time.Minute,
	})
	mappings := []OutDirMapping{
		{Pattern: "/out/Release/", Target: "/out/Release/"},
		{Pattern: "/out/[^/]*/", Target: "/out/Debug/"},
	}
	pt, err := NewPathTransformer(root, mappings)
	if err != nil {
		t.Fatal(err)
	}

	// Default is the newest directory, so it owns the Debug target.
	got, err := pt.LocalToRemote(filepath.Join(root, "src", "out", "Default", "gen", "a.h"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "src/out/Debug/gen/a.h" {
		t.Errorf("LocalToRemote(Default) = %q", got)
	}

	got, err = pt.LocalToRemote(filepath.Join(root, "src", "out", "gn", "gen", "a.h"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "src/out/Debug/gen/a.h" {
		t.Errorf("LocalToRemote(gn) = %q", got)
	}

	tests := []struct {
		remote string
		want   string
	}{
		{"src/out/Debug/gen/a.h", filepath.Join(root, "src", "out", "Default", "gen", "a.h")},
		{"src/out/Release/b.h", filepath.Join(root, "src", "out", "Release", "b.h")},
		{"src/out/Other/c.h", filepath.Join(root, "src", "out", "Default", "c.h")},
		{"src/net/d.cc", filepath.Join(root, "src", "net", "d.cc")},
	}
	for _, tt := range tests {
		if got := pt.RemoteToLocal(tt.remote); got != tt.want {
			t.Errorf("RemoteToLocal(%q) = %q, want %q", tt.remote, got, tt.want)
		}
	}
}

func TestPathTransformerRejectsBadTarget(t *testing.T) {
	_, err := NewPathTransformer(t.TempDir(), []OutDirMapping{{Pattern: ".*", Target: "out/Debug"}})
	if !cserrors.Is(err, cserrors.InvalidArgument) {
		t.Errorf("error = %v, want InvalidArgument", err)
	}
}

func TestLoadMappings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.toml")
	content := `
[[mapping]]
pattern = "/out/Release/"
target = "/out/Release/"

[[mapping]]
pattern = "/out/[^/]*/"
target = "/out/Debug/"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadMappings(path)
	if err != nil {
		t.Fatalf("LoadMappings() error = %v", err)
	}
	if len(got) != 2 || got[1].Target != "/out/Debug/" || got[0].Pattern != "/out/Release/" {
		t.Errorf("LoadMappings() = %+v", got)
	}

	if _, err := LoadMappings(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadMappings() on a missing file should fail")
	}
}
