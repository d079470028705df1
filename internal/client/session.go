// Package client talks to a codesearch backend. A Session owns the transport,
// the caches and the backend revision; CsFile and XrefNode are the handles
// callers navigate with.
package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"codesearch/internal/config"
	cserrors "codesearch/internal/errors"
	"codesearch/internal/message"
	"codesearch/internal/paths"
	"codesearch/internal/protocol"
	"codesearch/internal/slogutil"
	"codesearch/internal/storage"
)

const (
	// MaxURLLength is the longest URL sent as a GET. Longer requests are
	// POSTed with the query string as the body.
	MaxURLLength = 1500

	// MaxResponseSize bounds how much of a response body is read.
	MaxResponseSize = 64 << 20

	requestPath = "/codesearch/json"
)

// Stats counts where responses came from.
type Stats struct {
	CacheHits      int64 `json:"cacheHits"`
	NetworkFetches int64 `json:"networkFetches"`
}

// Option configures a Session.
type Option func(*options)

type options struct {
	httpClient  *http.Client
	transport   http.RoundTripper
	logger      *slog.Logger
	cache       *storage.ResponseCache
	transformer *paths.PathTransformer
	reportDir   string
}

// WithHTTPClient replaces the default http.Client. Its Timeout is left as is.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithRoundTripper sets the transport used for every request.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCache uses c as the response cache regardless of cfg.Cache. The
// session does not close a cache it was given.
func WithCache(c *storage.ResponseCache) Option {
	return func(o *options) { o.cache = c }
}

// WithPathTransformer maps local build directories to their server names in
// GetFileSpec and LocalPath.
func WithPathTransformer(pt *paths.PathTransformer) Option {
	return func(o *options) { o.transformer = pt }
}

// WithReportDir sets where reports for undecodable payloads are written.
func WithReportDir(dir string) Option {
	return func(o *options) { o.reportDir = dir }
}

// Session is a connection to one codesearch backend. It is safe for
// concurrent use, although each call issues its requests sequentially.
type Session struct {
	cfg         config.Session
	sourceRoot  string
	httpClient  *http.Client
	logger      *slog.Logger
	cache       *storage.ResponseCache
	ownsCache   bool
	transformer *paths.PathTransformer
	reportDir   string

	mu       sync.Mutex
	files    map[string]*CsFile
	revision string
	stats    Stats
}

// NewSession validates cfg, fills in defaults and resolves the source root.
// The source root is cfg.SourceRoot, or the checkout containing
// cfg.PathInsideSourceDir, or the checkout containing the working directory.
// Only the last may fail silently, leaving the working directory as root.
func NewSession(cfg config.Session, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, cserrors.Wrap(cserrors.InvalidArgument, err, "invalid session config")
	}
	cfg = cfg.WithDefaults()

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		cfg:         cfg,
		logger:      o.logger,
		cache:       o.cache,
		transformer: o.transformer,
		reportDir:   o.reportDir,
		files:       make(map[string]*CsFile),
	}
	if s.logger == nil {
		s.logger = slogutil.NewDiscardLogger()
	}

	root, err := resolveSourceRoot(cfg)
	if err != nil {
		return nil, err
	}
	s.sourceRoot = root

	switch {
	case o.httpClient != nil:
		c := *o.httpClient
		if o.transport != nil {
			c.Transport = o.transport
		}
		s.httpClient = &c
	default:
		s.httpClient = &http.Client{
			Timeout:   cfg.Timeout.Duration,
			Transport: o.transport,
		}
	}

	if s.cache == nil && cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if dir, err = paths.DefaultCacheDir(); err != nil {
				return nil, cserrors.Wrap(cserrors.CacheError, err, "locating cache directory")
			}
		}
		cache, err := storage.Open(dir, s.logger)
		if err != nil {
			return nil, err
		}
		s.cache = cache
		s.ownsCache = true
	}

	s.logger.Debug("Session created",
		"host", cfg.Host,
		"package", cfg.Package,
		"sourceRoot", s.sourceRoot,
		"cache", s.cache != nil,
	)
	return s, nil
}

func resolveSourceRoot(cfg config.Session) (string, error) {
	if cfg.SourceRoot != "" {
		return filepath.Abs(cfg.SourceRoot)
	}
	if cfg.PathInsideSourceDir != "" {
		return paths.GetSourceRoot(cfg.PathInsideSourceDir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", cserrors.Wrap(cserrors.NoSourceRoot, err, "reading working directory")
	}
	if root, err := paths.GetSourceRoot(wd); err == nil {
		return root, nil
	}
	return wd, nil
}

// Config returns the effective session settings.
func (s *Session) Config() config.Session { return s.cfg }

func (s *Session) SourceRoot() string { return s.sourceRoot }

func (s *Session) Logger() *slog.Logger { return s.logger }

// Stats returns a snapshot of the hit and fetch counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Revision returns the most recent backend revision seen in a file-info
// response, or "" before the first one.
func (s *Session) Revision() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// InvalidateCaches drops every cached file and response.
func (s *Session) InvalidateCaches() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = make(map[string]*CsFile)
	if s.cache == nil {
		return nil
	}
	_, err := s.cache.InvalidateAll()
	return err
}

// Close releases the response cache if the session opened it.
func (s *Session) Close() error {
	if s.ownsCache && s.cache != nil {
		return s.cache.Close()
	}
	return nil
}

// SendRequest issues req and decodes the reply. The response cache is
// consulted first; responses fetched from the network are stored after the
// revision they carry has been observed.
func (s *Session) SendRequest(ctx context.Context, req *protocol.CompoundRequest) (*protocol.CompoundResponse, error) {
	pairs, err := protocol.QueryString(req)
	if err != nil {
		return nil, err
	}
	reqURL := s.cfg.Host + requestPath + "?" + message.EncodeQuery(pairs)

	body, fromCache, err := s.retrieve(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var decodeOpts []message.DecodeOption
	if s.reportDir != "" {
		decodeOpts = append(decodeOpts, message.WithReportDir(s.reportDir))
	}
	resp, err := protocol.Decode[protocol.CompoundResponse](body, decodeOpts...)
	if err != nil {
		s.logger.Warn("Failed to decode response", "url", reqURL, "error", err)
		return nil, err
	}

	if fromCache {
		// Cached bodies may predate the current revision.
		return resp, nil
	}
	for _, fir := range resp.FileInfoResponse.Items() {
		if fir.FileInfo != nil {
			s.observeRevision(fir.FileInfo.Revision())
		}
	}

	if s.cache != nil {
		if err := s.cache.Put(reqURL, body, s.Revision(), s.cfg.Cache.Expiry.Duration); err != nil {
			s.logger.Warn("Failed to cache response", "error", err)
		}
	}
	return resp, nil
}

func (s *Session) retrieve(ctx context.Context, reqURL string) ([]byte, bool, error) {
	if s.cache != nil {
		body, ok, err := s.cache.Get(reqURL)
		if err != nil {
			s.logger.Warn("Response cache read failed", "error", err)
		} else if ok {
			s.mu.Lock()
			s.stats.CacheHits++
			s.mu.Unlock()
			s.logger.Debug("Cache hit", "url", reqURL)
			return body, true, nil
		}
	}

	s.mu.Lock()
	s.stats.NetworkFetches++
	s.mu.Unlock()

	body, err := s.fetch(ctx, reqURL)
	return body, false, err
}

func (s *Session) fetch(ctx context.Context, reqURL string) ([]byte, error) {
	method := http.MethodGet
	target := reqURL
	var payload io.Reader
	if len(reqURL) > MaxURLLength {
		base, query, _ := strings.Cut(reqURL, "?")
		method = http.MethodPost
		target = base
		payload = strings.NewReader(query)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return nil, cserrors.Wrap(cserrors.InvalidArgument, err, "building request")
	}
	requestID := uuid.NewString()
	req.Header.Set("User-Agent", s.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	s.logger.Debug("Fetching",
		"method", method,
		"url", target,
		"requestId", requestID,
	)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, cserrors.Wrap(cserrors.ServerError, err, "%s %s failed", method, target)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, cserrors.Wrap(cserrors.ServerError, err, "reading response from %s", target)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, cserrors.Newf(cserrors.ServerError, "%s %s: %s: %s",
			method, target, resp.Status, snippet(body)).
			WithDetails(map[string]interface{}{"status": resp.StatusCode, "requestId": requestID})
	}
	return body, nil
}

func snippet(body []byte) string {
	const max = 200
	text := strings.TrimSpace(string(body))
	if len(text) > max {
		return text[:max] + "..."
	}
	return text
}

// observeRevision records the backend revision. When it changes, cached
// files and responses from the old revision are dropped before anything new
// is stored.
func (s *Session) observeRevision(rev string) {
	if rev == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if rev == s.revision {
		return
	}
	old := s.revision
	s.revision = rev
	if old == "" {
		return
	}

	s.files = make(map[string]*CsFile)
	var dropped int64
	if s.cache != nil {
		n, err := s.cache.InvalidateAll()
		if err != nil {
			s.logger.Warn("Failed to invalidate response cache", "error", err)
		}
		dropped = n
	}
	s.logger.Info("Backend revision changed",
		"from", old,
		"to", rev,
		"droppedResponses", dropped,
	)
}

// GetFileSpec returns the server file spec for a local path. An empty path
// names the package root.
func (s *Session) GetFileSpec(path string) protocol.FileSpec {
	spec := protocol.FileSpec{Name: ".", PackageName: s.cfg.Package}
	if path == "" {
		return spec
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		spec.Name = filepath.ToSlash(path)
		return spec
	}
	if s.transformer != nil {
		if remote, err := s.transformer.LocalToRemote(abs); err == nil {
			spec.Name = remote
			return spec
		}
	}
	rel, err := filepath.Rel(s.sourceRoot, abs)
	if err != nil {
		rel = path
	}
	spec.Name = filepath.ToSlash(rel)
	return spec
}

// LocalPath maps a server file spec back to a path in the local checkout.
func (s *Session) LocalPath(spec protocol.FileSpec) string {
	if s.transformer != nil {
		return s.transformer.RemoteToLocal(spec.Name)
	}
	return paths.JoinRootPath(s.sourceRoot, spec.Name)
}
