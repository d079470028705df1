package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codesearch/internal/config"
	cserrors "codesearch/internal/errors"
	"codesearch/internal/protocol"
	"codesearch/internal/storage"
)

func fooFile() *fakeFile {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = "// filler"
	}
	lines[9] = "  Foo();"
	return &fakeFile{
		text:     strings.Join(lines, "\n") + "\n",
		revision: "r1",
		annotations: []any{
			xrefAnnotation("sig:Foo", protocol.KytheNodeFunction, rng(10, 3, 10, 5)),
		},
	}
}

func TestSession_GetSignatureForLocation(t *testing.T) {
	b := newFakeBackend()
	b.files["src/foo.cc"] = fooFile()
	s := newTestSession(t, b)
	ctx := context.Background()
	spec := protocol.FileSpec{Name: "src/foo.cc", PackageName: "chromium"}

	sig, err := s.GetSignatureForLocation(ctx, spec, 10, 4)
	if err != nil {
		t.Fatalf("GetSignatureForLocation(10,4) error = %v", err)
	}
	if sig != "sig:Foo" {
		t.Errorf("GetSignatureForLocation(10,4) = %q, want sig:Foo", sig)
	}

	_, err = s.GetSignatureForLocation(ctx, spec, 11, 1)
	if !cserrors.Is(err, cserrors.NotFound) {
		t.Errorf("GetSignatureForLocation(11,1) error = %v, want NotFound", err)
	}

	if got := b.count("file_info_request", "src/foo.cc"); got != 1 {
		t.Errorf("file info fetched %d times, want 1", got)
	}
	if got := b.count("annotation_request", "src/foo.cc"); got != 1 {
		t.Errorf("annotations fetched %d times, want 1", got)
	}
	if st := s.Stats(); st.NetworkFetches != 2 || st.CacheHits != 0 {
		t.Errorf("Stats() = %+v", st)
	}
	if s.Revision() != "r1" {
		t.Errorf("Revision() = %q, want r1", s.Revision())
	}
}

func TestSession_RequestHeaders(t *testing.T) {
	b := newFakeBackend()
	s := newTestSession(t, b)

	status, err := s.GetStatus(context.Background())
	if err != nil {
		t.Fatalf("GetStatus() error = %v", err)
	}
	if !status.Success || status.BuildLabel != "test-build" {
		t.Errorf("GetStatus() = %+v", status)
	}

	req := b.last()
	if req.method != http.MethodGet {
		t.Errorf("method = %s, want GET", req.method)
	}
	if ua := req.header.Get("User-Agent"); !strings.HasPrefix(ua, "Go-CodeSearch-Client/") {
		t.Errorf("User-Agent = %q", ua)
	}
	if req.header.Get("Accept") != "application/json" {
		t.Errorf("Accept = %q", req.header.Get("Accept"))
	}
	if req.header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID not set")
	}
}

func TestSession_LongRequestsArePosted(t *testing.T) {
	b := newFakeBackend()
	s := newTestSession(t, b)
	ctx := context.Background()

	if _, err := s.GetXrefsFor(ctx, "sig:short", nil, 0); err != nil {
		t.Fatal(err)
	}
	if m := b.last().method; m != http.MethodGet {
		t.Errorf("short request method = %s, want GET", m)
	}

	long := "sig:" + strings.Repeat("x", MaxURLLength)
	if _, err := s.GetXrefsFor(ctx, long, nil, 0); err != nil {
		t.Fatal(err)
	}
	req := b.last()
	if req.method != http.MethodPost {
		t.Errorf("long request method = %s, want POST", req.method)
	}
	if req.form.Get("query") != long {
		t.Error("POST body did not carry the query")
	}
	if ct := req.header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestSession_RevisionChangeInvalidatesFiles(t *testing.T) {
	b := newFakeBackend()
	b.files["a.cc"] = &fakeFile{text: "a\n", revision: "r1"}
	b.files["b.cc"] = &fakeFile{text: "b\n", revision: "r1"}
	s := newTestSession(t, b)
	ctx := context.Background()
	a := protocol.FileSpec{Name: "a.cc"}

	if _, err := s.GetFileInfo(ctx, a, FileInfoOptions{}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetFileInfo(ctx, a, FileInfoOptions{}); err != nil {
		t.Fatal(err)
	}
	if got := b.count("file_info_request", "a.cc"); got != 1 {
		t.Fatalf("a.cc fetched %d times before revision change, want 1", got)
	}

	b.setRevision("a.cc", "r2")
	b.setRevision("b.cc", "r2")
	if _, err := s.GetFileInfo(ctx, protocol.FileSpec{Name: "b.cc"}, FileInfoOptions{}); err != nil {
		t.Fatal(err)
	}
	if s.Revision() != "r2" {
		t.Errorf("Revision() = %q, want r2", s.Revision())
	}

	if _, err := s.GetFileInfo(ctx, a, FileInfoOptions{}); err != nil {
		t.Fatal(err)
	}
	if got := b.count("file_info_request", "a.cc"); got != 2 {
		t.Errorf("a.cc fetched %d times after revision change, want 2", got)
	}
}

func TestSession_FetchOptionsBypassFileCache(t *testing.T) {
	b := newFakeBackend()
	b.files["a.cc"] = &fakeFile{text: "a\n"}
	s := newTestSession(t, b)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := s.GetFileInfo(ctx, protocol.FileSpec{Name: "a.cc"}, FileInfoOptions{FetchFolding: true}); err != nil {
			t.Fatal(err)
		}
	}
	if got := b.count("file_info_request", "a.cc"); got != 2 {
		t.Errorf("fetched %d times, want 2", got)
	}
}

func TestSession_ResponseCache(t *testing.T) {
	b := newFakeBackend()
	b.files["a.cc"] = &fakeFile{text: "a\n", revision: "r1"}
	b.files["b.cc"] = &fakeFile{text: "b\n", revision: "r1"}

	cache, err := storage.Open(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()
	srv := httptest.NewServer(b)
	defer srv.Close()
	ctx := context.Background()

	newSession := func() *Session {
		s, err := NewSession(config.Session{Host: srv.URL, SourceRoot: t.TempDir()}, WithCache(cache))
		if err != nil {
			t.Fatal(err)
		}
		return s
	}

	// Two sessions share the cache; the second is served without the network.
	for i := 0; i < 2; i++ {
		s := newSession()
		if _, err := s.GetStatus(ctx); err != nil {
			t.Fatal(err)
		}
		st := s.Stats()
		if i == 0 && (st.NetworkFetches != 1 || st.CacheHits != 0) {
			t.Errorf("first session Stats() = %+v", st)
		}
		if i == 1 && (st.NetworkFetches != 0 || st.CacheHits != 1) {
			t.Errorf("second session Stats() = %+v", st)
		}
	}
	if got := b.count("status_request", ""); got != 1 {
		t.Errorf("status fetched %d times, want 1", got)
	}

	s := newSession()
	if _, err := s.GetFileInfo(ctx, protocol.FileSpec{Name: "a.cc"}, FileInfoOptions{}); err != nil {
		t.Fatal(err)
	}
	b.setRevision("b.cc", "r2")
	if _, err := s.GetFileInfo(ctx, protocol.FileSpec{Name: "b.cc"}, FileInfoOptions{}); err != nil {
		t.Fatal(err)
	}
	stats, err := cache.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 1 {
		t.Errorf("cache holds %d entries after revision change, want only the new response", stats.Entries)
	}
}

func TestSession_CachedBodiesKeepRevision(t *testing.T) {
	b := newFakeBackend()
	b.files["a.cc"] = &fakeFile{text: "a\n", revision: "r1"}
	b.files["b.cc"] = &fakeFile{text: "b\n", revision: "r2"}

	cache, err := storage.Open(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()
	srv := httptest.NewServer(b)
	defer srv.Close()
	ctx := context.Background()

	newSession := func() *Session {
		s, err := NewSession(config.Session{Host: srv.URL, SourceRoot: t.TempDir()}, WithCache(cache))
		if err != nil {
			t.Fatal(err)
		}
		return s
	}

	// a.cc is cached at r1 by an earlier session.
	if _, err := newSession().GetFileInfo(ctx, protocol.FileSpec{Name: "a.cc"}, FileInfoOptions{}); err != nil {
		t.Fatal(err)
	}

	s := newSession()
	if _, err := s.GetFileInfo(ctx, protocol.FileSpec{Name: "b.cc"}, FileInfoOptions{}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetFileInfo(ctx, protocol.FileSpec{Name: "a.cc"}, FileInfoOptions{}); err != nil {
		t.Fatal(err)
	}
	if st := s.Stats(); st.CacheHits != 1 {
		t.Errorf("Stats() = %+v, want a.cc served from cache", st)
	}
	if got := s.Revision(); got != "r2" {
		t.Errorf("Revision() = %q after a cached r1 body, want r2", got)
	}
	stats, err := cache.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 2 {
		t.Errorf("cache holds %d entries, want 2", stats.Entries)
	}
}

func TestSession_ServerErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		code    cserrors.ErrorCode
	}{
		{
			name: "status 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			code: cserrors.ServerError,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"status_response": [`))
			},
			code: cserrors.DecodeError,
		},
		{
			name: "missing slot",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"elapsed_ms": 3}`))
			},
			code: cserrors.ServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			reports := t.TempDir()

			s, err := NewSession(config.Session{Host: srv.URL, SourceRoot: t.TempDir()}, WithReportDir(reports))
			if err != nil {
				t.Fatal(err)
			}
			_, err = s.GetStatus(context.Background())
			if !cserrors.Is(err, tt.code) {
				t.Fatalf("GetStatus() error = %v, want %s", err, tt.code)
			}
			if tt.code == cserrors.DecodeError {
				entries, _ := os.ReadDir(reports)
				if len(entries) != 1 {
					t.Errorf("%d decode reports written, want 1", len(entries))
				}
			}
		})
	}
}

func TestSession_GetFileSpec(t *testing.T) {
	root := t.TempDir()
	s, err := NewSession(config.Session{Host: "http://localhost", SourceRoot: root})
	if err != nil {
		t.Fatal(err)
	}

	if got := s.GetFileSpec(""); got.Name != "." || got.PackageName != "chromium" {
		t.Errorf("GetFileSpec(\"\") = %+v", got)
	}
	got := s.GetFileSpec(filepath.Join(root, "src", "net", "a.cc"))
	if got.Name != "src/net/a.cc" {
		t.Errorf("GetFileSpec() = %+v, want src/net/a.cc", got)
	}
	if local := s.LocalPath(got); local != filepath.Join(root, "src", "net", "a.cc") {
		t.Errorf("LocalPath() = %q", local)
	}
}

func TestNewSession_SourceRootDiscovery(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src", "net"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "src", ".gn"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(root, "src", "net", "a.cc")
	if err := os.WriteFile(file, []byte("int a;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewSession(config.Session{PathInsideSourceDir: file})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if s.SourceRoot() != root {
		t.Errorf("SourceRoot() = %q, want %q", s.SourceRoot(), root)
	}

	_, err = NewSession(config.Session{PathInsideSourceDir: filepath.Join(root, "missing.cc")})
	if !cserrors.Is(err, cserrors.NoSourceRoot) {
		t.Errorf("NewSession(missing file) error = %v, want NoSourceRoot", err)
	}
}

func TestSession_IsContentStale(t *testing.T) {
	b := newFakeBackend()
	b.files["a.cc"] = &fakeFile{text: "one\ntwo\nthree"}
	s := newTestSession(t, b)
	ctx := context.Background()
	spec := protocol.FileSpec{Name: "a.cc"}

	tests := []struct {
		name   string
		buffer []string
		prefix bool
		want   bool
	}{
		{"identical", []string{"one", "two", "three"}, false, false},
		{"changed line", []string{"one", "2", "three"}, false, true},
		{"shorter buffer", []string{"one", "two"}, false, true},
		{"prefix match", []string{"one", "two"}, true, false},
		{"prefix mismatch", []string{"one", "2"}, true, true},
		{"prefix longer than server", []string{"one", "two", "three", "four"}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.IsContentStale(ctx, spec, tt.buffer, tt.prefix)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("IsContentStale() = %v, want %v", got, tt.want)
			}
		})
	}

	diff, err := s.ContentDiff(ctx, spec, []string{"one", "2", "three"})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"--- server/a.cc", "+++ local/a.cc", "-two", "+2"} {
		if !strings.Contains(diff, want) {
			t.Errorf("ContentDiff() missing %q:\n%s", want, diff)
		}
	}
	if diff, _ := s.ContentDiff(ctx, spec, []string{"one", "two", "three"}); diff != "" {
		t.Errorf("ContentDiff(identical) = %q, want empty", diff)
	}
}

func TestSession_SearchForSymbol(t *testing.T) {
	b := newFakeBackend()
	b.files["src/x.cc"] = &fakeFile{
		text:        "Other();\n",
		annotations: []any{xrefAnnotation("sig:Other", protocol.KytheNodeFunction, rng(1, 1, 1, 5))},
	}
	b.files["src/foo.cc"] = &fakeFile{
		text: "void ns::Foo();\n",
		annotations: []any{
			xrefAnnotation("sig:Foo", protocol.KytheNodeFunction, rng(1, 6, 1, 12)),
		},
	}
	b.files["src/bar.cc"] = &fakeFile{
		text:        "class Bar;\n",
		annotations: []any{xrefAnnotation("sig:Bar", protocol.KytheNodeRecordClass, rng(1, 7, 1, 9))},
	}
	b.searches["symbol:Foo"] = []string{"src/x.cc", "src/foo.cc"}
	b.searches["Bar"] = []string{"src/bar.cc"}
	s := newTestSession(t, b)
	ctx := context.Background()

	nodes, err := s.SearchForSymbol(ctx, "Foo", 0, SearchOptions{})
	if err != nil {
		t.Fatalf("SearchForSymbol(Foo) error = %v", err)
	}
	if len(nodes) != 1 || nodes[0].GetSignature() != "sig:Foo" || nodes[0].FileSpec().Name != "src/foo.cc" {
		t.Errorf("SearchForSymbol(Foo) = %v", nodes)
	}
	if b.count("search_request", "Foo") != 0 {
		t.Error("plain search ran although the symbol search succeeded")
	}

	nodes, err = s.SearchForSymbol(ctx, "Bar", protocol.KytheNodeRecordClass, SearchOptions{})
	if err != nil {
		t.Fatalf("SearchForSymbol(Bar) error = %v", err)
	}
	if len(nodes) != 1 || nodes[0].GetSignature() != "sig:Bar" {
		t.Errorf("SearchForSymbol(Bar) = %v", nodes)
	}

	if _, err := s.SearchForSymbol(ctx, "Bar", protocol.KytheNodeFunction, SearchOptions{}); !cserrors.Is(err, cserrors.NotFound) {
		t.Errorf("SearchForSymbol(Bar, FUNCTION) error = %v, want NotFound", err)
	}
	if _, err := s.SearchForSymbol(ctx, "Missing", 0, SearchOptions{}); !cserrors.Is(err, cserrors.NotFound) {
		t.Errorf("SearchForSymbol(Missing) error = %v, want NotFound", err)
	}
}

func TestSession_GetSignaturesForSymbol(t *testing.T) {
	b := newFakeBackend()
	b.files["a.h"] = &fakeFile{
		text: "net::Foo a;\nFoo b;\nFooBar c;\n",
		annotations: []any{
			linkAnnotation("sig:Foo", "foo.h", rng(1, 1, 1, 8)),
			xrefAnnotation("sig:a", protocol.KytheNodeAbsvar, rng(1, 10, 1, 10)),
			linkAnnotation("sig:Foo", "foo.h", rng(2, 1, 2, 3)),
			linkAnnotation("sig:FooBar", "foobar.h", rng(3, 1, 3, 6)),
		},
	}
	s := newTestSession(t, b)

	sigs, err := s.GetSignaturesForSymbol(context.Background(), protocol.FileSpec{Name: "a.h"}, "Foo", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(sigs) != 1 || sigs[0] != "sig:Foo" {
		t.Errorf("GetSignaturesForSymbol() = %v, want [sig:Foo]", sigs)
	}
}

func TestSession_CallTargets(t *testing.T) {
	b := newFakeBackend()
	virtual := xrefMatch("sig:vf", protocol.XrefDeclaration, 3)
	virtual["grok_modifiers"] = map[string]any{"virtual": true}
	b.xrefs["sig:f|3300"] = []any{xrefResult("base.h", virtual)}

	impl := xrefMatch("sig:impl", protocol.XrefDefinition, 9)
	impl["grok_modifiers"] = map[string]any{"definition": true}
	decl := xrefMatch("sig:impl_decl", protocol.XrefDeclaration, 4)
	b.xrefs["sig:vf|800"] = []any{xrefResult("impl.cc", impl, decl)}

	// A plain function resolves to its definition, not its declaration.
	b.xrefs["sig:g|3300"] = []any{xrefResult("g.h", xrefMatch("sig:g_decl", protocol.XrefDeclaration, 1))}
	b.xrefs["sig:g|3500"] = []any{xrefResult("g.cc", xrefMatch("sig:g_def", protocol.XrefDefinition, 6))}
	b.xrefs["sig:h|3500"] = []any{xrefResult("h.cc", xrefMatch("sig:h", protocol.XrefDefinition, 2))}
	s := newTestSession(t, b)
	ctx := context.Background()

	tests := []struct {
		sig      string
		wantFile string
		wantSig  string
	}{
		{"sig:f", "impl.cc", "sig:impl"},
		{"sig:g", "g.cc", "sig:g_def"},
		{"sig:h", "h.cc", "sig:h"},
	}
	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			targets, err := s.GetCallTargets(ctx, tt.sig)
			if err != nil {
				t.Fatal(err)
			}
			if len(targets) != 1 || len(targets[0].Match) != 1 {
				t.Fatalf("GetCallTargets() = %+v", targets)
			}
			if targets[0].File.Name != tt.wantFile || targets[0].Match[0].Signature != tt.wantSig {
				t.Errorf("GetCallTargets() = %+v", targets[0])
			}
		})
	}
}

func TestSession_GetDirInfo(t *testing.T) {
	b := newFakeBackend()
	b.dirs["src/net"] = []any{
		map[string]any{"name": "http", "path": "src/net/http", "is_directory": true},
		map[string]any{"name": "BUILD.gn", "path": "src/net/BUILD.gn"},
	}
	s := newTestSession(t, b)

	dir, err := s.GetDirInfo(context.Background(), protocol.FileSpec{Name: "src/net"})
	if err != nil {
		t.Fatal(err)
	}
	if len(dir.Child) != 2 || !dir.Child[0].IsDirectory || dir.Child[1].Name != "BUILD.gn" {
		t.Errorf("GetDirInfo() = %+v", dir)
	}
}
