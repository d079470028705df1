// Package replay records backend responses to disk and plays them back, so
// that sessions can run against fixtures instead of the live service.
//
// Responses are stored one per file as <digest>.json, where the digest is
// the sha1 of the request URL followed by the request body. A request with
// no recording leaves a <digest>.missing file describing it, which is what
// a fixture author needs to capture it later.
package replay

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	cserrors "codesearch/internal/errors"
	"codesearch/internal/slogutil"
)

// Mode selects what a harness does with requests it has no recording for.
type Mode int

const (
	// Playback fails unknown requests.
	Playback Mode = iota
	// Record forwards unknown requests to the network and saves successful
	// responses.
	Record
)

// SessionHeader carries the harness id on every response it produces.
const SessionHeader = "X-Replay-Session"

// Request describes one request seen by the harness.
type Request struct {
	URL      string `json:"url"`
	Data     string `json:"data,omitempty"`
	Filename string `json:"filename"`
}

// Harness owns a fixture directory and the state of one replay session.
type Harness struct {
	dir     string
	mode    Mode
	next    http.RoundTripper
	logger  *slog.Logger
	id      string
	mu      sync.Mutex
	offline bool
	last    *Request
	hits    int
	misses  int
}

// Option configures a Harness.
type Option func(*Harness)

func WithMode(m Mode) Option { return func(h *Harness) { h.mode = m } }

// WithTransport sets the transport used in record mode. The default is
// http.DefaultTransport.
func WithTransport(rt http.RoundTripper) Option { return func(h *Harness) { h.next = rt } }

func WithLogger(l *slog.Logger) Option { return func(h *Harness) { h.logger = l } }

// WithOffline starts the harness offline: nothing reaches the network even
// in record mode.
func WithOffline(offline bool) Option { return func(h *Harness) { h.offline = offline } }

// New returns a harness over dir, creating it if needed.
func New(dir string, opts ...Option) (*Harness, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, cserrors.Wrap(cserrors.InternalError, err, "creating replay directory %s", dir)
	}
	h := &Harness{
		dir:  dir,
		next: http.DefaultTransport,
		id:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slogutil.NewDiscardLogger()
	}
	return h, nil
}

// Digest returns the fixture name stem for a request.
func Digest(url, body string) string {
	sum := sha1.Sum([]byte(url + body))
	return hex.EncodeToString(sum[:])
}

func (h *Harness) Dir() string { return h.dir }

// SessionID identifies this harness in logs and response headers.
func (h *Harness) SessionID() string { return h.id }

func (h *Harness) Offline() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.offline
}

func (h *Harness) SetOffline(offline bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.offline = offline
}

// LastRequest returns the most recent request, or nil before the first.
func (h *Harness) LastRequest() *Request {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return nil
	}
	r := *h.last
	return &r
}

// Stats returns how many requests were served from fixtures and how many
// were not.
func (h *Harness) Stats() (hits, misses int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hits, h.misses
}

// Save stores body as the recording for a request.
func (h *Harness) Save(url, data string, body []byte) error {
	path := filepath.Join(h.dir, Digest(url, data)+".json")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return cserrors.Wrap(cserrors.InternalError, err, "writing fixture %s", path)
	}
	return nil
}

// RoundTripper returns a transport bound to h.
func (h *Harness) RoundTripper() http.RoundTripper { return transport{h} }

type transport struct{ h *Harness }

func (t transport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.h.roundTrip(req)
}

func (h *Harness) roundTrip(req *http.Request) (*http.Response, error) {
	var data []byte
	if req.Body != nil {
		var err error
		data, err = io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, cserrors.Wrap(cserrors.InternalError, err, "reading request body")
		}
	}
	url := req.URL.String()
	digest := Digest(url, string(data))
	rec := &Request{URL: url, Data: string(data), Filename: digest + ".json"}

	h.mu.Lock()
	h.last = rec
	offline := h.offline
	h.mu.Unlock()

	body, err := os.ReadFile(filepath.Join(h.dir, rec.Filename))
	if err == nil {
		h.count(true)
		h.logger.Debug("Replaying response", "url", url, "fixture", rec.Filename, "session", h.id)
		return h.response(req, http.StatusOK, body), nil
	}
	if !os.IsNotExist(err) {
		return nil, cserrors.Wrap(cserrors.InternalError, err, "reading fixture %s", rec.Filename)
	}
	h.count(false)

	if h.mode == Record && !offline {
		return h.record(req, rec, data)
	}
	if werr := h.writeMissing(digest, rec); werr != nil {
		h.logger.Warn("Failed to describe missing fixture", "fixture", rec.Filename, "error", werr)
	}
	return nil, cserrors.Newf(cserrors.NotFound, "no recorded response for %s (expected %s)", url, rec.Filename)
}

func (h *Harness) count(hit bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if hit {
		h.hits++
	} else {
		h.misses++
	}
}

func (h *Harness) record(req *http.Request, rec *Request, data []byte) (*http.Response, error) {
	out := req.Clone(req.Context())
	if req.Body != nil {
		out.Body = io.NopCloser(bytes.NewReader(data))
		out.ContentLength = int64(len(data))
	}
	resp, err := h.next.RoundTrip(out)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cserrors.Wrap(cserrors.ServerError, err, "reading response for %s", rec.URL)
	}
	if resp.StatusCode/100 == 2 {
		if err := h.Save(rec.URL, rec.Data, body); err != nil {
			return nil, err
		}
		h.logger.Info("Recorded response", "url", rec.URL, "fixture", rec.Filename, "session", h.id)
	}
	return h.response(req, resp.StatusCode, body), nil
}

func (h *Harness) writeMissing(digest string, rec *Request) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(h.dir, digest+".missing"), data, 0o644)
}

func (h *Harness) response(req *http.Request, status int, body []byte) *http.Response {
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set(SessionHeader, h.id)
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
