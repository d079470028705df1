package client

import (
	"context"
	"fmt"
	"strings"

	cserrors "codesearch/internal/errors"
	"codesearch/internal/protocol"
)

// maxReferenceFallbacks bounds how many references GetDisplayName tries
// when the node's own file cannot name it.
const maxReferenceFallbacks = 5

// XrefNode is one node of the cross reference graph: a match (at minimum a
// signature), the file it was found in if known, and the node it was
// reached from.
type XrefNode struct {
	session  *Session
	match    protocol.XrefSingleMatch
	fileSpec *protocol.FileSpec
	parent   *XrefNode
}

func newXrefNode(s *Session, match protocol.XrefSingleMatch, spec *protocol.FileSpec, parent *XrefNode) *XrefNode {
	return &XrefNode{session: s, match: match, fileSpec: spec, parent: parent}
}

// FromSignature builds a node for signature. When spec is nil the file is
// taken from the signature itself if it names one.
func FromSignature(s *Session, signature string, spec *protocol.FileSpec) *XrefNode {
	if spec == nil {
		spec = fileSpecFromSignature(signature)
	}
	return newXrefNode(s, protocol.XrefSingleMatch{Signature: signature}, spec, nil)
}

func fileSpecFromSignature(signature string) *protocol.FileSpec {
	if t, ok := protocol.ParseKytheSignature(signature); ok {
		if spec, ok := t.FileSpec(); ok {
			return &spec
		}
		return nil
	}
	if l, ok := protocol.ParseLegacySignature(signature); ok && l.Path != "" {
		return &protocol.FileSpec{Name: l.Path, PackageName: l.Package}
	}
	return nil
}

// FromAnnotation builds a node for the target of a LINK_TO_DEFINITION
// annotation.
func FromAnnotation(s *Session, a protocol.Annotation) (*XrefNode, error) {
	if a.Type.ID != protocol.AnnotationLinkToDefinition {
		return nil, cserrors.Newf(cserrors.InvalidArgument,
			"annotation of type %s does not link to a definition", a.Type.ID)
	}
	if a.InternalLink == nil {
		return nil, cserrors.Newf(cserrors.InvalidArgument, "annotation at %s has no internal link", a.Range)
	}
	link := a.InternalLink
	spec := &protocol.FileSpec{Name: link.Path, PackageName: link.PackageName}
	sig := link.Signature
	if sig == "" {
		sig = link.GetSignature()
	}
	match := protocol.XrefSingleMatch{
		LineNumber: link.Range.StartLine,
		Signature:  sig,
	}
	return newXrefNode(s, match, spec, nil), nil
}

// FromNode builds a node for a call graph node. The call site becomes the
// node's match.
func FromNode(s *Session, n protocol.Node, parent *XrefNode) *XrefNode {
	var spec *protocol.FileSpec
	if n.FilePath != "" {
		spec = &protocol.FileSpec{Name: n.FilePath, PackageName: n.PackageName}
	}
	match := protocol.XrefSingleMatch{
		LineNumber: n.CallSiteRange.StartLine,
		LineText:   firstLine(n.Snippet.Text.Text),
		Type:       protocol.XrefCalledBy.String(),
		TypeID:     protocol.XrefCalledBy,
		Signature:  n.Signature,
	}
	return newXrefNode(s, match, spec, parent)
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}

// FromSearchResults builds one node per match.
func FromSearchResults(s *Session, results []protocol.XrefSearchResult, parent *XrefNode) []*XrefNode {
	var nodes []*XrefNode
	for _, r := range results {
		spec := r.File
		for _, m := range r.Match {
			nodes = append(nodes, newXrefNode(s, m, &spec, parent))
		}
	}
	return nodes
}

func (n *XrefNode) Session() *Session { return n.session }

func (n *XrefNode) Match() protocol.XrefSingleMatch { return n.match }

// FileSpec returns the node's file, or nil if it is not known.
func (n *XrefNode) FileSpec() *protocol.FileSpec { return n.fileSpec }

func (n *XrefNode) Parent() *XrefNode { return n.parent }

// GetSignature returns the node's primary signature.
func (n *XrefNode) GetSignature() string {
	sigs := n.GetSignatures()
	if len(sigs) == 0 {
		return ""
	}
	return sigs[0]
}

// GetSignatures returns every signature of the node. The backend may send
// several, space separated.
func (n *XrefNode) GetSignatures() []string {
	return strings.Fields(n.match.Signature)
}

func (n *XrefNode) String() string {
	file := "<unknown>"
	if n.fileSpec != nil {
		file = n.fileSpec.String()
	}
	return fmt.Sprintf("{file: %s, line: %d, type: %s, signature: %s}",
		file, n.match.LineNumber, n.match.Type, n.match.Signature)
}

// GetFile returns the file the node was found in.
func (n *XrefNode) GetFile(ctx context.Context) (*CsFile, error) {
	if n.fileSpec == nil {
		return nil, cserrors.Newf(cserrors.NoFileSpec, "no file known for %s", n.GetSignature())
	}
	return n.session.GetFileInfo(ctx, *n.fileSpec, FileInfoOptions{})
}

// Traverse follows the node's edges of the given Kythe kinds, or all edges
// when kinds is empty. CALLED_BY edges come from the call graph.
func (n *XrefNode) Traverse(ctx context.Context, kinds []protocol.KytheXrefKind, max int) ([]*XrefNode, error) {
	if err := protocol.CheckKytheFilter(kinds); err != nil {
		return nil, err
	}
	if max <= 0 {
		max = protocol.DefaultMaxResults
	}

	wanted := make(map[protocol.KytheXrefKind]bool, len(kinds))
	callers := false
	for _, k := range kinds {
		if k == protocol.XrefCalledBy {
			callers = true
			continue
		}
		wanted[k] = true
	}

	var nodes []*XrefNode
	if len(kinds) == 0 || len(wanted) > 0 {
		results, err := n.session.GetXrefsFor(ctx, n.GetSignature(), nil, max)
		if err != nil {
			return nil, err
		}
		for _, node := range FromSearchResults(n.session, results, n) {
			if len(wanted) == 0 || wanted[node.match.TypeID] {
				nodes = append(nodes, node)
			}
		}
	}

	if callers {
		cg, err := n.session.GetCallGraph(ctx, n.GetSignature(), max)
		if err != nil {
			return nil, err
		}
		if cg != nil {
			for _, child := range cg.Node.Children {
				nodes = append(nodes, FromNode(n.session, child, n))
			}
		}
	}
	return nodes, nil
}

// GetEdges follows edges of the given legacy kinds.
func (n *XrefNode) GetEdges(ctx context.Context, kinds []protocol.EdgeEnumKind, max int) ([]*XrefNode, error) {
	if err := protocol.CheckEdgeFilter(kinds); err != nil {
		return nil, err
	}
	results, err := n.session.GetXrefsFor(ctx, n.GetSignature(), kinds, max)
	if err != nil {
		return nil, err
	}
	return FromSearchResults(n.session, results, n), nil
}

// GetAllEdges follows every legacy edge kind.
func (n *XrefNode) GetAllEdges(ctx context.Context, max int) ([]*XrefNode, error) {
	return n.GetEdges(ctx, protocol.AllEdgeEnumKinds(), max)
}

// GetDisplayName returns the text the node's signature is anchored to. If
// the node's own file cannot resolve it and tryViaReferences is set, the
// first few references are asked instead.
func (n *XrefNode) GetDisplayName(ctx context.Context, tryViaReferences bool) (string, error) {
	name, err := n.anchorText(ctx)
	if err == nil {
		return name, nil
	}
	unresolved := cserrors.Is(err, cserrors.NotFound) || cserrors.Is(err, cserrors.ServerError)
	if !tryViaReferences || !unresolved {
		return "", err
	}

	refs, rerr := n.Traverse(ctx, []protocol.KytheXrefKind{protocol.XrefReference}, 0)
	if rerr != nil {
		return "", err
	}
	if len(refs) > maxReferenceFallbacks {
		refs = refs[:maxReferenceFallbacks]
	}
	for _, ref := range refs {
		// The reference's own signature may be empty; look up ours in its file.
		alias := newXrefNode(n.session, n.match, ref.fileSpec, n)
		if name, rerr := alias.GetDisplayName(ctx, false); rerr == nil {
			return name, nil
		}
	}
	return "", cserrors.Wrap(cserrors.NotFound, err, "no display name for %s", n.GetSignature())
}

func (n *XrefNode) anchorText(ctx context.Context) (string, error) {
	f, err := n.GetFile(ctx)
	if err != nil {
		return "", err
	}
	return f.GetAnchorText(ctx, n.GetSignature())
}

// ownAnnotation finds the XREF_SIGNATURE annotation defining the node in
// its file.
func (n *XrefNode) ownAnnotation(ctx context.Context) (*CsFile, []protocol.Annotation, *protocol.Annotation, error) {
	f, err := n.GetFile(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	annotations, err := f.GetAnnotations(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	sig := n.GetSignature()
	for i := range annotations {
		a := &annotations[i]
		if a.Type.ID == protocol.AnnotationXrefSignature && a.MatchesSignature(sig) {
			return f, annotations, a, nil
		}
	}
	return nil, nil, nil, cserrors.Newf(cserrors.NotFound, "%s has no annotation for %s", f.Path(), sig)
}

// GetXrefKind returns the Kythe kind of the node's own annotation.
func (n *XrefNode) GetXrefKind(ctx context.Context) (protocol.KytheNodeKind, error) {
	_, _, own, err := n.ownAnnotation(ctx)
	if err != nil {
		return 0, err
	}
	return own.KytheXrefKind, nil
}

// GetRelatedAnnotations returns the annotations on the lines spanned by the
// node's own annotation, excluding that annotation.
func (n *XrefNode) GetRelatedAnnotations(ctx context.Context) ([]protocol.Annotation, error) {
	_, annotations, own, err := n.ownAnnotation(ctx)
	if err != nil {
		return nil, err
	}
	var related []protocol.Annotation
	for _, a := range annotations {
		if a.Range.Equal(own.Range) || !a.Range.OverlapsLines(own.Range) {
			continue
		}
		related = append(related, a)
	}
	return related, nil
}

// GetRelatedDefinitions resolves every link on the node's lines to a node,
// preferring the linked entity's definition, then its declaration, then the
// link target itself.
func (n *XrefNode) GetRelatedDefinitions(ctx context.Context) ([]*XrefNode, error) {
	_, annotations, own, err := n.ownAnnotation(ctx)
	if err != nil {
		return nil, err
	}
	var defs []*XrefNode
	for _, a := range annotations {
		if a.Type.ID != protocol.AnnotationLinkToDefinition || !a.Range.OverlapsLines(own.Range) {
			continue
		}
		candidate, err := FromAnnotation(n.session, a)
		if err != nil {
			continue
		}
		defs = append(defs, candidate.resolveDefinition(ctx))
	}
	return defs, nil
}

func (n *XrefNode) resolveDefinition(ctx context.Context) *XrefNode {
	for _, kind := range []protocol.KytheXrefKind{protocol.XrefDefinition, protocol.XrefDeclaration} {
		found, err := n.Traverse(ctx, []protocol.KytheXrefKind{kind}, 0)
		if err == nil && len(found) > 0 {
			return found[0]
		}
	}
	return n
}

// GetType returns the node's type: the target of its HAS_TYPE edge, or else
// the last non-namespace definition related to it. It returns nil when
// neither exists.
func (n *XrefNode) GetType(ctx context.Context) (*XrefNode, error) {
	typed, err := n.GetEdges(ctx, []protocol.EdgeEnumKind{protocol.EdgeHasType}, 0)
	if err != nil {
		return nil, err
	}
	if len(typed) > 0 {
		return typed[0], nil
	}

	related, err := n.GetRelatedDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	var candidates []*XrefNode
	for _, r := range related {
		if r.isNamespace(ctx) {
			continue
		}
		candidates = append(candidates, r)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[len(candidates)-1], nil
}

// isNamespace reports whether the node is known to be a namespace. Nodes
// whose kind cannot be looked up are not.
func (n *XrefNode) isNamespace(ctx context.Context) bool {
	_, _, own, err := n.ownAnnotation(ctx)
	if err != nil {
		return false
	}
	if own.XrefKind != nil && own.XrefKind.IsNamespaceKind() {
		return true
	}
	return own.KytheXrefKind.IsNamespaceKind()
}
