package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"codesearch/internal/config"
	"codesearch/internal/protocol"
)

// fakeFile is a file served by fakeBackend.
type fakeFile struct {
	text        string
	revision    string
	annotations []any
	outline     []any
}

// recordedRequest is what fakeBackend saw of one request.
type recordedRequest struct {
	method string
	header http.Header
	form   url.Values
}

func (r recordedRequest) kind() string {
	for _, k := range []string{
		"annotation_request", "call_graph_request", "dir_info_request",
		"file_info_request", "search_request", "status_request", "xref_search_request",
	} {
		if _, ok := r.form[k]; ok {
			return k
		}
	}
	return ""
}

// fakeBackend answers compound requests from in-memory tables. Xref results
// are keyed by query, with "|<edge kinds>" appended when an edge filter is
// sent.
type fakeBackend struct {
	mu       sync.Mutex
	files    map[string]*fakeFile
	xrefs    map[string][]any
	callers  map[string]any
	searches map[string][]string
	dirs     map[string][]any
	requests []recordedRequest
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		files:    map[string]*fakeFile{},
		xrefs:    map[string][]any{},
		callers:  map[string]any{},
		searches: map[string][]string{},
		dirs:     map[string][]any{},
	}
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	req := recordedRequest{method: r.Method, header: r.Header.Clone(), form: r.Form}
	b.requests = append(b.requests, req)

	resp := map[string]any{}
	switch req.kind() {
	case "file_info_request":
		name := r.Form.Get("name")
		f, ok := b.files[name]
		if !ok {
			resp["file_info_response"] = []any{map[string]any{"error_message": "no such file", "return_code": 1}}
			break
		}
		info := map[string]any{
			"name":         name,
			"package_name": r.Form.Get("package_name"),
			"content":      map[string]any{"text": f.text},
		}
		if f.revision != "" {
			info["gob_info"] = map[string]any{"commit": f.revision}
		}
		if r.Form.Get("fetch_outline") == "true" {
			info["codeblock"] = nonNil(f.outline)
		}
		resp["file_info_response"] = []any{map[string]any{"file_info": info}}
	case "annotation_request":
		f, ok := b.files[r.Form.Get("name")]
		if !ok {
			resp["annotation_response"] = []any{map[string]any{"return_code": 1}}
			break
		}
		resp["annotation_response"] = []any{map[string]any{"annotation": nonNil(f.annotations)}}
	case "xref_search_request":
		key := r.Form.Get("query")
		if edges := r.Form["edge_filter"]; len(edges) > 0 {
			key += "|" + strings.Join(edges, ",")
		}
		resp["xref_search_response"] = []any{map[string]any{"search_result": nonNil(b.xrefs[key])}}
	case "call_graph_request":
		if node, ok := b.callers[r.Form.Get("signature")]; ok {
			resp["call_graph_response"] = []any{map[string]any{"node": node}}
		} else {
			resp["call_graph_response"] = []any{}
		}
	case "search_request":
		var results []any
		for _, name := range b.searches[r.Form.Get("query")] {
			results = append(results, map[string]any{
				"top_file": map[string]any{"file": map[string]any{"name": name, "package_name": "chromium"}},
			})
		}
		resp["search_response"] = []any{map[string]any{"search_result": nonNil(results)}}
	case "dir_info_request":
		resp["dir_info_response"] = []any{map[string]any{
			"name":    r.Form.Get("name"),
			"child":   nonNil(b.dirs[r.Form.Get("name")]),
			"success": true,
		}}
	case "status_request":
		resp["status_response"] = []any{map[string]any{"success": true, "build_label": "test-build"}}
	default:
		http.Error(w, "unknown request", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func nonNil(v []any) []any {
	if v == nil {
		return []any{}
	}
	return v
}

// count returns how many requests of kind named the given file or query.
func (b *fakeBackend) count(kind, key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.requests {
		if r.kind() != kind {
			continue
		}
		if key == "" || r.form.Get("name") == key || r.form.Get("query") == key || r.form.Get("signature") == key {
			n++
		}
	}
	return n
}

func (b *fakeBackend) last() recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[len(b.requests)-1]
}

func (b *fakeBackend) setRevision(name, rev string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.files[name].revision = rev
}

// newTestSession starts b and returns a session pointed at it.
func newTestSession(t *testing.T, b *fakeBackend, opts ...Option) *Session {
	t.Helper()
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)

	s, err := NewSession(config.Session{Host: srv.URL, SourceRoot: t.TempDir()}, opts...)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func jsonRange(r protocol.TextRange) map[string]any {
	return map[string]any{
		"start_line":   r.StartLine,
		"start_column": r.StartColumn,
		"end_line":     r.EndLine,
		"end_column":   r.EndColumn,
	}
}

func rng(sl, sc, el, ec int) protocol.TextRange {
	return protocol.TextRange{StartLine: sl, StartColumn: sc, EndLine: el, EndColumn: ec}
}

func xrefAnnotation(sig string, kind protocol.KytheNodeKind, r protocol.TextRange) any {
	return map[string]any{
		"type":            map[string]any{"id": int(protocol.AnnotationXrefSignature)},
		"range":           jsonRange(r),
		"xref_signature":  map[string]any{"signature": sig},
		"kythe_xref_kind": int(kind),
	}
}

func linkAnnotation(sig, path string, r protocol.TextRange) any {
	return map[string]any{
		"type":  map[string]any{"id": int(protocol.AnnotationLinkToDefinition)},
		"range": jsonRange(r),
		"internal_link": map[string]any{
			"signature":    sig,
			"path":         path,
			"package_name": "chromium",
		},
	}
}

func xrefResult(file string, matches ...any) any {
	return map[string]any{
		"file":  map[string]any{"name": file, "package_name": "chromium"},
		"match": matches,
	}
}

func xrefMatch(sig string, kind protocol.KytheXrefKind, line int) map[string]any {
	return map[string]any{
		"signature":   sig,
		"type_id":     int(kind),
		"type":        kind.String(),
		"line_number": line,
	}
}
