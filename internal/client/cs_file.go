package client

import (
	"context"
	"strings"
	"sync"

	cserrors "codesearch/internal/errors"
	"codesearch/internal/protocol"
)

// CsFile is a file as the backend sees it: its text plus lazily fetched
// annotations and outline.
type CsFile struct {
	session *Session
	info    *protocol.FileInfo
	lines   []string

	mu          sync.Mutex
	annotations []protocol.Annotation
	annotated   bool
	outline     *protocol.CodeBlock
}

func newCsFile(s *Session, info *protocol.FileInfo) *CsFile {
	return &CsFile{
		session: s,
		info:    info,
		lines:   splitLines(info.Content.Text),
	}
}

// splitLines splits text on line breaks. A trailing line break does not
// start another line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Path returns the file's path relative to its package.
func (f *CsFile) Path() string { return f.info.Name }

// Info returns the raw file info the file was built from.
func (f *CsFile) Info() *protocol.FileInfo { return f.info }

func (f *CsFile) Session() *Session { return f.session }

// Lines returns the file's lines without line terminators.
func (f *CsFile) Lines() []string { return f.lines }

func (f *CsFile) GetFileSpec() protocol.FileSpec {
	return protocol.FileSpec{Name: f.info.Name, PackageName: f.info.PackageName}
}

// Text returns the text covered by r. Columns past the end of a line are
// clipped; lines outside the file are an error.
func (f *CsFile) Text(r protocol.TextRange) (string, error) {
	if r.StartLine < 1 || r.EndLine > len(f.lines) || r.StartLine > r.EndLine {
		return "", cserrors.Newf(cserrors.InvalidArgument,
			"range %s is outside %s (%d lines)", r, f.info.Name, len(f.lines))
	}
	if r.StartLine == r.EndLine {
		return columns(f.lines[r.StartLine-1], r.StartColumn-1, r.EndColumn), nil
	}
	parts := make([]string, 0, r.EndLine-r.StartLine+1)
	parts = append(parts, columns(f.lines[r.StartLine-1], r.StartColumn-1, -1))
	parts = append(parts, f.lines[r.StartLine:r.EndLine-1]...)
	parts = append(parts, columns(f.lines[r.EndLine-1], 0, r.EndColumn))
	return strings.Join(parts, "\n"), nil
}

// columns slices line by character, clamping both ends. A negative end
// means the end of the line.
func columns(line string, start, end int) string {
	runes := []rune(line)
	if end < 0 || end > len(runes) {
		end = len(runes)
	}
	if start < 0 {
		start = 0
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// GetAnnotations returns the file's LINK_TO_DEFINITION and XREF_SIGNATURE
// annotations. They are fetched once.
func (f *CsFile) GetAnnotations(ctx context.Context) ([]protocol.Annotation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.annotated {
		return f.annotations, nil
	}
	resp, err := f.session.GetAnnotationsForFile(ctx, f.GetFileSpec(),
		protocol.AnnotationLinkToDefinition, protocol.AnnotationXrefSignature)
	if err != nil {
		return nil, err
	}
	if resp.Annotation == nil {
		return nil, cserrors.Newf(cserrors.ServerError, "no annotations returned for %s", f.info.Name)
	}
	f.annotations = resp.Annotation
	f.annotated = true
	return f.annotations, nil
}

// GetAnchorText returns the text of the first annotation that refers to
// signature.
func (f *CsFile) GetAnchorText(ctx context.Context, signature string) (string, error) {
	annotations, err := f.GetAnnotations(ctx)
	if err != nil {
		return "", err
	}
	for i := range annotations {
		if annotations[i].MatchesSignature(signature) {
			return f.Text(annotations[i].Range)
		}
	}
	return "", cserrors.Newf(cserrors.NotFound, "%s has no annotation for %s", f.info.Name, signature)
}

// GetCodeBlock returns the file's outline under a ROOT block.
func (f *CsFile) GetCodeBlock(ctx context.Context) (*protocol.CodeBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.outline != nil {
		return f.outline, nil
	}
	blocks := f.info.Codeblock
	if blocks == nil {
		withOutline, err := f.session.GetFileInfo(ctx, f.GetFileSpec(), FileInfoOptions{FetchOutline: true})
		if err != nil {
			return nil, err
		}
		blocks = withOutline.info.Codeblock
	}
	f.outline = &protocol.CodeBlock{Type: protocol.CodeBlockRoot, Child: blocks}
	return f.outline, nil
}

// FindCodeBlock searches the outline for a block with the given name ("*"
// for any) and type.
func (f *CsFile) FindCodeBlock(ctx context.Context, name string, typ protocol.CodeBlockType) (*protocol.CodeBlock, error) {
	root, err := f.GetCodeBlock(ctx)
	if err != nil {
		return nil, err
	}
	if b := root.Find(name, typ); b != nil {
		return b, nil
	}
	return nil, cserrors.Newf(cserrors.NotFound, "no %s block named %q in %s", typ, name, f.info.Name)
}
