package client

import (
	"context"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	cserrors "codesearch/internal/errors"
	"codesearch/internal/langutil"
	"codesearch/internal/protocol"
)

// FileInfoOptions request optional parts of a file info. Files fetched with
// any option set bypass the per-path file cache.
type FileInfoOptions struct {
	FetchHTMLContent   bool
	FetchOutline       bool
	FetchFolding       bool
	FetchGeneratedFrom bool
}

// GetFileInfo returns the file named by spec.
func (s *Session) GetFileInfo(ctx context.Context, spec protocol.FileSpec, opts FileInfoOptions) (*CsFile, error) {
	if spec.PackageName == "" {
		spec.PackageName = s.cfg.Package
	}
	cacheable := opts == (FileInfoOptions{})
	key := spec.String()
	if cacheable {
		s.mu.Lock()
		f, ok := s.files[key]
		s.mu.Unlock()
		if ok {
			return f, nil
		}
	}

	resp, err := s.SendRequest(ctx, &protocol.CompoundRequest{
		FileInfoRequest: protocol.SlotOf(protocol.FileInfoRequest{
			FileSpec:           spec,
			FetchHTMLContent:   opts.FetchHTMLContent,
			FetchOutline:       opts.FetchOutline,
			FetchFolding:       opts.FetchFolding,
			FetchGeneratedFrom: opts.FetchGeneratedFrom,
		}),
	})
	if err != nil {
		return nil, err
	}
	fir, ok := resp.FileInfoResponse.First()
	if !ok || fir.FileInfo == nil {
		msg := "no file info returned"
		if ok && fir.ErrorMessage != "" {
			msg = fir.ErrorMessage
		}
		return nil, cserrors.Newf(cserrors.ServerError, "fetching %s: %s", spec, msg)
	}

	f := newCsFile(s, fir.FileInfo)
	if cacheable {
		s.mu.Lock()
		s.files[key] = f
		s.mu.Unlock()
	}
	return f, nil
}

// GetAnnotationsForFile fetches annotations of the given types, or
// XREF_SIGNATURE annotations when none are given.
func (s *Session) GetAnnotationsForFile(ctx context.Context, spec protocol.FileSpec, types ...protocol.AnnotationTypeValue) (*protocol.AnnotationResponse, error) {
	if len(types) == 0 {
		types = []protocol.AnnotationTypeValue{protocol.AnnotationXrefSignature}
	}
	req := protocol.AnnotationRequest{FileSpec: spec}
	for _, t := range types {
		req.Type = append(req.Type, protocol.AnnotationType{ID: t})
	}
	resp, err := s.SendRequest(ctx, &protocol.CompoundRequest{
		AnnotationRequest: protocol.SlotOf(req),
	})
	if err != nil {
		return nil, err
	}
	ar, ok := resp.AnnotationResponse.First()
	if !ok {
		return nil, cserrors.Newf(cserrors.ServerError, "no annotation response for %s", spec)
	}
	return ar, nil
}

// GetSignatureForLocation returns the signature of the first annotation in
// the file covering line:column.
func (s *Session) GetSignatureForLocation(ctx context.Context, spec protocol.FileSpec, line, column int) (string, error) {
	f, err := s.GetFileInfo(ctx, spec, FileInfoOptions{})
	if err != nil {
		return "", err
	}
	annotations, err := f.GetAnnotations(ctx)
	if err != nil {
		return "", err
	}
	for _, a := range annotations {
		if !a.Range.Contains(line, column) {
			continue
		}
		if a.XrefSignature != nil {
			return a.XrefSignature.GetSignature(), nil
		}
		if a.InternalLink != nil {
			return a.InternalLink.GetSignature(), nil
		}
	}
	return "", cserrors.Newf(cserrors.NotFound, "no signature at %s:%d:%d", spec.Name, line, column)
}

// GetSignaturesForSymbol returns the signatures of annotations in the file
// whose text ends with symbol. A non-zero kind restricts the match to
// annotations of that Kythe kind.
func (s *Session) GetSignaturesForSymbol(ctx context.Context, spec protocol.FileSpec, symbol string, kind protocol.KytheNodeKind) ([]string, error) {
	f, err := s.GetFileInfo(ctx, spec, FileInfoOptions{})
	if err != nil {
		return nil, err
	}
	annotations, err := f.GetAnnotations(ctx)
	if err != nil {
		return nil, err
	}

	matcher := langutil.NewSymbolSuffixMatcher(symbol)
	seen := make(map[string]bool)
	var signatures []string
	for _, a := range annotations {
		if !a.HasSignature() {
			continue
		}
		if kind != 0 && a.KytheXrefKind != kind {
			continue
		}
		text, err := f.Text(a.Range)
		if err != nil || !matcher.Match(text) {
			continue
		}
		sig := a.GetSignature()
		if sig == "" || seen[sig] {
			continue
		}
		seen[sig] = true
		signatures = append(signatures, sig)
	}
	if len(signatures) == 0 {
		return nil, cserrors.Newf(cserrors.NotFound, "no signature for %s in %s", symbol, spec.Name)
	}
	return signatures, nil
}

// GetSignatureForSymbol is GetSignaturesForSymbol limited to the first hit.
func (s *Session) GetSignatureForSymbol(ctx context.Context, spec protocol.FileSpec, symbol string, kind protocol.KytheNodeKind) (string, error) {
	signatures, err := s.GetSignaturesForSymbol(ctx, spec, symbol, kind)
	if err != nil {
		return "", err
	}
	return signatures[0], nil
}

// SearchOptions tune SearchForSymbol.
type SearchOptions struct {
	// MaxResultsToAnalyze caps the files inspected per search.
	MaxResultsToAnalyze int
	// ReturnAllResults keeps searching after the first file that yields a
	// signature.
	ReturnAllResults bool
}

// SearchForSymbol finds definitions of symbol. It first asks the backend's
// symbol index, then falls back to a plain text search, and inspects the
// annotations of each file returned.
func (s *Session) SearchForSymbol(ctx context.Context, symbol string, kind protocol.KytheNodeKind, opts SearchOptions) ([]*XrefNode, error) {
	if opts.MaxResultsToAnalyze <= 0 {
		opts.MaxResultsToAnalyze = protocol.DefaultMaxResults
	}
	queries := []string{"symbol:" + symbol, symbol}

	var nodes []*XrefNode
	var lastErr error
	for _, q := range queries {
		found, err := s.searchStep(ctx, q, symbol, kind, opts)
		if err != nil {
			s.logger.Debug("Symbol search step failed", "query", q, "error", err)
			lastErr = err
		}
		nodes = append(nodes, found...)
		if len(nodes) > 0 && !opts.ReturnAllResults {
			return nodes, nil
		}
	}
	if len(nodes) > 0 {
		return nodes, nil
	}
	if lastErr != nil {
		return nil, cserrors.Wrap(cserrors.NotFound, lastErr, "symbol %s not found", symbol)
	}
	return nil, cserrors.Newf(cserrors.NotFound, "symbol %s not found", symbol)
}

func (s *Session) searchStep(ctx context.Context, query, symbol string, kind protocol.KytheNodeKind, opts SearchOptions) ([]*XrefNode, error) {
	req := protocol.NewSearchRequest(query)
	req.MaxNumResults = opts.MaxResultsToAnalyze
	resp, err := s.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	var nodes []*XrefNode
	for _, result := range resp.SearchResult {
		spec := result.TopFile.File
		signatures, err := s.GetSignaturesForSymbol(ctx, spec, symbol, kind)
		if err != nil {
			continue
		}
		for _, sig := range signatures {
			nodes = append(nodes, FromSignature(s, sig, &spec))
		}
		if len(nodes) > 0 && !opts.ReturnAllResults {
			break
		}
	}
	return nodes, nil
}

// Search runs a free text search.
func (s *Session) Search(ctx context.Context, req protocol.SearchRequest) (*protocol.SearchResponse, error) {
	resp, err := s.SendRequest(ctx, &protocol.CompoundRequest{
		SearchRequest: protocol.SlotOf(req),
	})
	if err != nil {
		return nil, err
	}
	sr, ok := resp.SearchResponse.First()
	if !ok {
		return nil, cserrors.Newf(cserrors.ServerError, "no search response for %q", req.Query)
	}
	if sr.Status != 0 {
		return nil, cserrors.Newf(cserrors.ServerError, "search %q failed: %s", req.Query, sr.StatusMessage)
	}
	return sr, nil
}

// GetXrefsFor returns the cross references of signature. A non-empty
// edgeFilter restricts the legacy backend to those edge kinds.
func (s *Session) GetXrefsFor(ctx context.Context, signature string, edgeFilter []protocol.EdgeEnumKind, max int) ([]protocol.XrefSearchResult, error) {
	if err := protocol.CheckEdgeFilter(edgeFilter); err != nil {
		return nil, err
	}
	req := protocol.NewXrefSearchRequest(s.GetFileSpec(""), signature)
	req.EdgeFilter = edgeFilter
	if max > 0 {
		req.MaxNumResults = max
	}
	resp, err := s.SendRequest(ctx, &protocol.CompoundRequest{
		XrefSearchRequest: protocol.SlotOf(req),
	})
	if err != nil {
		return nil, err
	}
	xr, ok := resp.XrefSearchResponse.First()
	if !ok {
		return nil, nil
	}
	if xr.Status != 0 {
		return nil, cserrors.Newf(cserrors.ServerError, "xref search for %s failed: %s", signature, xr.StatusMessage)
	}
	return xr.SearchResult, nil
}

// GetCallGraph returns the callers of signature, or nil if the backend sent
// no call graph.
func (s *Session) GetCallGraph(ctx context.Context, signature string, max int) (*protocol.CallGraphResponse, error) {
	req := protocol.NewCallGraphRequest(s.GetFileSpec(""), signature)
	if max > 0 {
		req.MaxNumResults = max
	}
	resp, err := s.SendRequest(ctx, &protocol.CompoundRequest{
		CallGraphRequest: protocol.SlotOf(req),
	})
	if err != nil {
		return nil, err
	}
	cg, ok := resp.CallGraphResponse.First()
	if !ok {
		return nil, nil
	}
	return cg, nil
}

// GetOverridingDefinitions returns the definitions that override the
// virtual method named by signature.
func (s *Session) GetOverridingDefinitions(ctx context.Context, signature string) ([]protocol.XrefSearchResult, error) {
	results, err := s.GetXrefsFor(ctx, signature, []protocol.EdgeEnumKind{protocol.EdgeOverriddenBy}, 0)
	if err != nil {
		return nil, err
	}
	return filterMatches(results, func(m protocol.XrefSingleMatch) bool {
		return m.GrokModifiers != nil && m.GrokModifiers.Definition
	}), nil
}

// GetCallTargets returns the possible targets of a call to signature: the
// overriding definitions of its virtual declarations, or its definition
// when no override is found.
func (s *Session) GetCallTargets(ctx context.Context, signature string) ([]protocol.XrefSearchResult, error) {
	decls, err := s.GetXrefsFor(ctx, signature, []protocol.EdgeEnumKind{protocol.EdgeHasDeclaration}, 0)
	if err != nil {
		return nil, err
	}

	var targets []protocol.XrefSearchResult
	for _, result := range decls {
		for _, m := range result.Match {
			if m.GrokModifiers == nil || !m.GrokModifiers.Virtual {
				continue
			}
			overrides, err := s.GetOverridingDefinitions(ctx, m.Signature)
			if err != nil {
				return nil, err
			}
			targets = append(targets, overrides...)
		}
	}
	if len(targets) > 0 {
		return targets, nil
	}
	return s.GetXrefsFor(ctx, signature, []protocol.EdgeEnumKind{protocol.EdgeHasDefinition}, 0)
}

func filterMatches(results []protocol.XrefSearchResult, keep func(protocol.XrefSingleMatch) bool) []protocol.XrefSearchResult {
	var out []protocol.XrefSearchResult
	for _, r := range results {
		var matches []protocol.XrefSingleMatch
		for _, m := range r.Match {
			if keep(m) {
				matches = append(matches, m)
			}
		}
		if len(matches) > 0 {
			out = append(out, protocol.XrefSearchResult{File: r.File, Match: matches})
		}
	}
	return out
}

// fetchContent reads the server's current text of spec, bypassing the file
// cache.
func (s *Session) fetchContent(ctx context.Context, spec protocol.FileSpec) (string, error) {
	f, err := s.GetFileInfo(ctx, spec, FileInfoOptions{FetchGeneratedFrom: true})
	if err != nil {
		return "", err
	}
	return f.info.Content.Text, nil
}

// IsContentStale reports whether bufferLines differ from the server's copy
// of spec. With checkPrefix, only the first len(bufferLines) server lines
// are compared and a shorter server file counts as stale.
func (s *Session) IsContentStale(ctx context.Context, spec protocol.FileSpec, bufferLines []string, checkPrefix bool) (bool, error) {
	content, err := s.fetchContent(ctx, spec)
	if err != nil {
		return false, err
	}
	serverLines := strings.Split(content, "\n")
	if checkPrefix {
		if len(serverLines) < len(bufferLines) {
			return true, nil
		}
		serverLines = serverLines[:len(bufferLines)]
	}
	if len(serverLines) != len(bufferLines) {
		return true, nil
	}
	for i := range serverLines {
		if serverLines[i] != bufferLines[i] {
			return true, nil
		}
	}
	return false, nil
}

// ContentDiff returns a unified diff from the server's copy of spec to
// bufferLines, or "" if they match.
func (s *Session) ContentDiff(ctx context.Context, spec protocol.FileSpec, bufferLines []string) (string, error) {
	content, err := s.fetchContent(ctx, spec)
	if err != nil {
		return "", err
	}
	local := make([]string, len(bufferLines))
	for i, l := range bufferLines {
		local[i] = l + "\n"
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(content),
		B:        local,
		FromFile: "server/" + spec.Name,
		ToFile:   "local/" + spec.Name,
		Context:  3,
	})
}

// GetDirInfo lists a directory.
func (s *Session) GetDirInfo(ctx context.Context, spec protocol.FileSpec) (*protocol.DirInfoResponse, error) {
	if spec.PackageName == "" {
		spec.PackageName = s.cfg.Package
	}
	resp, err := s.SendRequest(ctx, &protocol.CompoundRequest{
		DirInfoRequest: protocol.SlotOf(protocol.DirInfoRequest{FileSpec: spec}),
	})
	if err != nil {
		return nil, err
	}
	dr, ok := resp.DirInfoResponse.First()
	if !ok {
		return nil, cserrors.Newf(cserrors.ServerError, "no dir info response for %s", spec)
	}
	return dr, nil
}

// GetStatus reports the backend's build label and packages.
func (s *Session) GetStatus(ctx context.Context) (*protocol.StatusResponse, error) {
	resp, err := s.SendRequest(ctx, &protocol.CompoundRequest{
		StatusRequest: protocol.SlotOf(protocol.StatusRequest{}),
	})
	if err != nil {
		return nil, err
	}
	sr, ok := resp.StatusResponse.First()
	if !ok {
		return nil, cserrors.Newf(cserrors.ServerError, "no status response")
	}
	return sr, nil
}
