package storage

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"codesearch/internal/slogutil"
)

func openTestCache(t *testing.T) *ResponseCache {
	t.Helper()
	c, err := Open(t.TempDir(), slogutil.NewDiscardLogger())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestKey(t *testing.T) {
	// sha1("abc")
	if got := Key("abc"); got != "a9993e364706816aba3e25717850c26c9cd0d89d" {
		t.Errorf("Key(abc) = %s", got)
	}
}

func TestResponseCache_GetPut(t *testing.T) {
	c := openTestCache(t)
	url := "https://cs.chromium.org/codesearch/json?file_info_request=b&file_spec=b&name=a.cc&file_spec=e&file_info_request=e"

	t.Run("miss on empty cache", func(t *testing.T) {
		body, ok, err := c.Get(url)
		if err != nil || ok || body != nil {
			t.Errorf("Get() = %q, %v, %v; want miss", body, ok, err)
		}
	})

	body := []byte(strings.Repeat(`{"file_info_response":[]}`, 50))
	if err := c.Put(url, body, "r1", time.Minute); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	t.Run("hit returns the original body", func(t *testing.T) {
		got, ok, err := c.Get(url)
		if err != nil || !ok {
			t.Fatalf("Get() = %v, %v; want hit", ok, err)
		}
		if !bytes.Equal(got, body) {
			t.Errorf("Get() body mismatch")
		}
	})

	t.Run("put replaces", func(t *testing.T) {
		if err := c.Put(url, []byte("{}"), "r2", time.Minute); err != nil {
			t.Fatal(err)
		}
		got, _, _ := c.Get(url)
		if string(got) != "{}" {
			t.Errorf("Get() = %q, want replaced body", got)
		}
	})
}

func TestResponseCache_Expiry(t *testing.T) {
	c := openTestCache(t)
	now := time.Unix(1700000000, 0)
	c.now = func() time.Time { return now }

	if err := c.Put("u1", []byte("a"), "", time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := c.Put("u2", []byte("b"), "", time.Hour); err != nil {
		t.Fatal(err)
	}

	now = now.Add(2 * time.Minute)

	stats, err := c.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 2 || stats.Expired != 1 {
		t.Errorf("Stats() = %+v, want 2 entries with 1 expired", stats)
	}

	if _, ok, _ := c.Get("u1"); ok {
		t.Error("expired entry should miss")
	}
	if _, ok, _ := c.Get("u2"); !ok {
		t.Error("live entry should hit")
	}

	// The expired read deleted u1.
	stats, _ = c.Stats()
	if stats.Entries != 1 {
		t.Errorf("Entries = %d after expired read, want 1", stats.Entries)
	}

	now = now.Add(2 * time.Hour)
	n, err := c.CleanupExpired()
	if err != nil || n != 1 {
		t.Errorf("CleanupExpired() = %d, %v; want 1", n, err)
	}
}

func TestResponseCache_DefaultTTL(t *testing.T) {
	c := openTestCache(t)
	now := time.Unix(1700000000, 0)
	c.now = func() time.Time { return now }

	if err := c.Put("u", []byte("x"), "", 0); err != nil {
		t.Fatal(err)
	}
	now = now.Add(DefaultTTL - time.Second)
	if _, ok, _ := c.Get("u"); !ok {
		t.Error("entry should live for DefaultTTL")
	}
	now = now.Add(2 * time.Second)
	if _, ok, _ := c.Get("u"); ok {
		t.Error("entry should expire after DefaultTTL")
	}
}

func TestResponseCache_Invalidate(t *testing.T) {
	c := openTestCache(t)
	for i, rev := range []string{"r1", "r1", "r2", ""} {
		url := "u" + string(rune('a'+i))
		if err := c.Put(url, []byte("x"), rev, time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.InvalidateRevision("r1")
	if err != nil || n != 2 {
		t.Errorf("InvalidateRevision(r1) = %d, %v; want 2", n, err)
	}
	n, err = c.InvalidateAll()
	if err != nil || n != 2 {
		t.Errorf("InvalidateAll() = %d, %v; want 2", n, err)
	}
	stats, _ := c.Stats()
	if stats.Entries != 0 {
		t.Errorf("Entries = %d after InvalidateAll", stats.Entries)
	}
}

func TestResponseCache_StatsCompression(t *testing.T) {
	c := openTestCache(t)
	body := bytes.Repeat([]byte("annotation "), 1000)
	if err := c.Put("u", body, "", time.Hour); err != nil {
		t.Fatal(err)
	}
	stats, err := c.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.RawBytes != int64(len(body)) {
		t.Errorf("RawBytes = %d, want %d", stats.RawBytes, len(body))
	}
	if stats.CompressedBytes <= 0 || stats.CompressedBytes >= stats.RawBytes {
		t.Errorf("CompressedBytes = %d, want smaller than raw", stats.CompressedBytes)
	}
	if filepath.Base(stats.Path) != DBFileName {
		t.Errorf("Path = %q", stats.Path)
	}
}

func TestOpen_Reopen(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Put("u", []byte("persisted"), "", time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	c, err = Open(dir, nil)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer c.Close()
	got, ok, err := c.Get("u")
	if err != nil || !ok || string(got) != "persisted" {
		t.Errorf("Get() after reopen = %q, %v, %v", got, ok, err)
	}
}

func TestOpen_MigratesOldSchema(t *testing.T) {
	dir := t.TempDir()
	db, err := OpenDB(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`UPDATE schema_version SET version = 1`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	db, err = OpenDB(dir, nil)
	if err != nil {
		t.Fatalf("OpenDB() after downgrade error = %v", err)
	}
	defer db.Close()
	v, err := db.getSchemaVersion()
	if err != nil || v != currentSchemaVersion {
		t.Errorf("schema version = %d, %v; want %d", v, err, currentSchemaVersion)
	}
}
