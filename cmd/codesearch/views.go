package main

import (
	"fmt"
	"strings"

	"codesearch/internal/client"
	"codesearch/internal/protocol"
)

// NodeView is the printable form of an xref node.
type NodeView struct {
	Signature   string `json:"signature"`
	File        string `json:"file,omitempty"`
	Package     string `json:"package,omitempty"`
	Line        int    `json:"line,omitempty"`
	Type        string `json:"type,omitempty"`
	Text        string `json:"text,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

func nodeView(n *client.XrefNode) NodeView {
	m := n.Match()
	v := NodeView{
		Signature: m.Signature,
		Line:      m.LineNumber,
		Type:      m.Type,
		Text:      strings.TrimSpace(m.LineText),
	}
	if spec := n.FileSpec(); spec != nil {
		v.File = spec.Name
		v.Package = spec.PackageName
	}
	return v
}

func nodeViews(nodes []*client.XrefNode) []NodeView {
	out := make([]NodeView, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, nodeView(n))
	}
	return out
}

func (v NodeView) location() string {
	if v.File == "" {
		return "<unknown>"
	}
	if v.Line > 0 {
		return fmt.Sprintf("%s:%d", v.File, v.Line)
	}
	return v.File
}

func (v NodeView) Human() string {
	var b strings.Builder
	b.WriteString(v.location())
	if v.Type != "" {
		fmt.Fprintf(&b, " [%s]", v.Type)
	}
	if v.DisplayName != "" {
		fmt.Fprintf(&b, " %s", v.DisplayName)
	}
	if v.Text != "" {
		fmt.Fprintf(&b, "  %s", v.Text)
	}
	fmt.Fprintf(&b, "\n  %s", v.Signature)
	return b.String()
}

// NodeList is the result of commands that return several nodes.
type NodeList struct {
	Query string     `json:"query"`
	Nodes []NodeView `json:"nodes"`
}

func (l *NodeList) Human() string {
	if len(l.Nodes) == 0 {
		return "No results for " + l.Query
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d result(s) for %s\n", len(l.Nodes), l.Query)
	for _, n := range l.Nodes {
		b.WriteString("\n" + n.Human())
	}
	return b.String()
}

// OutlineEntry is one flattened code block.
type OutlineEntry struct {
	Depth int    `json:"depth"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Line  int    `json:"line,omitempty"`
}

func flattenOutline(block *protocol.CodeBlock, depth int, out []OutlineEntry) []OutlineEntry {
	for i := range block.Child {
		c := &block.Child[i]
		out = append(out, OutlineEntry{
			Depth: depth,
			Type:  c.Type.String(),
			Name:  c.NamePrefix + c.Name,
			Line:  c.TextRange.StartLine,
		})
		out = flattenOutline(c, depth+1, out)
	}
	return out
}

// FileView summarizes a file.
type FileView struct {
	Path          string         `json:"path"`
	Package       string         `json:"package"`
	Language      string         `json:"language,omitempty"`
	Lines         int            `json:"lines"`
	Revision      string         `json:"revision,omitempty"`
	Generated     bool           `json:"generated,omitempty"`
	GeneratedFrom []string       `json:"generatedFrom,omitempty"`
	Text          string         `json:"text,omitempty"`
	Outline       []OutlineEntry `json:"outline,omitempty"`
}

func (v *FileView) Human() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", v.Path, v.Package)
	if v.Language != "" {
		fmt.Fprintf(&b, "  Language: %s\n", v.Language)
	}
	fmt.Fprintf(&b, "  Lines:    %d\n", v.Lines)
	if v.Revision != "" {
		fmt.Fprintf(&b, "  Revision: %s\n", v.Revision)
	}
	if v.Generated {
		fmt.Fprintf(&b, "  Generated from: %s\n", strings.Join(v.GeneratedFrom, ", "))
	}
	if v.Text != "" {
		b.WriteString("\n" + v.Text + "\n")
	}
	if len(v.Outline) > 0 {
		b.WriteString("\nOutline:\n")
		for _, e := range v.Outline {
			fmt.Fprintf(&b, "%s%s %s", strings.Repeat("  ", e.Depth+1), e.Type, e.Name)
			if e.Line > 0 {
				fmt.Fprintf(&b, " (line %d)", e.Line)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// SignatureView is the answer to `signature` and `symbol`.
type SignatureView struct {
	File       string   `json:"file"`
	Line       int      `json:"line,omitempty"`
	Column     int      `json:"column,omitempty"`
	Symbol     string   `json:"symbol,omitempty"`
	Signatures []string `json:"signatures"`
}

func (v *SignatureView) Human() string {
	return strings.Join(v.Signatures, "\n")
}

// CallerView is a call graph node with its callers.
type CallerView struct {
	NodeView
	Callers []CallerView `json:"callers,omitempty"`
}

func (v *CallerView) Human() string {
	var b strings.Builder
	v.write(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (v *CallerView) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s", indent, v.location())
	if v.Text != "" {
		fmt.Fprintf(b, "  %s", v.Text)
	}
	b.WriteString("\n")
	for i := range v.Callers {
		v.Callers[i].write(b, depth+1)
	}
}

// StaleView reports whether a local file matches the server.
type StaleView struct {
	File  string `json:"file"`
	Stale bool   `json:"stale"`
	Diff  string `json:"diff,omitempty"`
}

func (v *StaleView) Human() string {
	state := "up to date"
	if v.Stale {
		state = "stale"
	}
	out := fmt.Sprintf("%s: %s", v.File, state)
	if v.Diff != "" {
		out += "\n\n" + strings.TrimRight(v.Diff, "\n")
	}
	return out
}

// DirView lists a directory.
type DirView struct {
	Path    string     `json:"path"`
	Entries []DirEntry `json:"entries"`
}

type DirEntry struct {
	Name      string `json:"name"`
	Directory bool   `json:"directory,omitempty"`
	Deleted   bool   `json:"deleted,omitempty"`
}

func (v *DirView) Human() string {
	var b strings.Builder
	b.WriteString(v.Path + "\n")
	for _, e := range v.Entries {
		name := e.Name
		if e.Directory {
			name += "/"
		}
		if e.Deleted {
			name += " (deleted)"
		}
		b.WriteString("  " + name + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// StatusView describes the backend.
type StatusView struct {
	Host         string   `json:"host"`
	Package      string   `json:"package"`
	SourceRoot   string   `json:"sourceRoot"`
	Healthy      bool     `json:"healthy"`
	BuildLabel   string   `json:"buildLabel,omitempty"`
	Announcement string   `json:"announcement,omitempty"`
	Packages     []string `json:"packages,omitempty"`
	Cache        bool     `json:"cache"`
}

func (v *StatusView) Human() string {
	var b strings.Builder
	health := "healthy"
	if !v.Healthy {
		health = "unhealthy"
	}
	fmt.Fprintf(&b, "Backend:     %s (%s)\n", v.Host, health)
	if v.BuildLabel != "" {
		fmt.Fprintf(&b, "Build:       %s\n", v.BuildLabel)
	}
	fmt.Fprintf(&b, "Package:     %s\n", v.Package)
	fmt.Fprintf(&b, "Source root: %s\n", v.SourceRoot)
	fmt.Fprintf(&b, "Cache:       %v\n", v.Cache)
	if len(v.Packages) > 0 {
		fmt.Fprintf(&b, "Indexed:     %s\n", strings.Join(v.Packages, ", "))
	}
	if v.Announcement != "" {
		fmt.Fprintf(&b, "\n%s\n", v.Announcement)
	}
	return strings.TrimRight(b.String(), "\n")
}
