// Package scipexport converts codesearch annotations into SCIP documents so
// that files browsed through the backend can be loaded by SCIP tooling.
package scipexport

import (
	"context"
	"os"
	"sort"
	"strings"

	scippb "github.com/sourcegraph/scip/bindings/go/scip"
	"google.golang.org/protobuf/proto"

	"codesearch/internal/client"
	cserrors "codesearch/internal/errors"
	"codesearch/internal/protocol"
	"codesearch/internal/version"
)

// Scheme is the SCIP symbol scheme used for codesearch signatures.
const Scheme = "codesearch"

// ExportFile builds a SCIP document from the file's annotations. Every
// annotation with a signature becomes an occurrence; XREF_SIGNATURE
// annotations mark definitions and contribute symbol information.
func ExportFile(ctx context.Context, f *client.CsFile) (*scippb.Document, error) {
	annotations, err := f.GetAnnotations(ctx)
	if err != nil {
		return nil, err
	}
	pkg := f.GetFileSpec().PackageName

	doc := &scippb.Document{
		RelativePath: f.Path(),
		Language:     f.Info().Language,
	}
	seen := make(map[string]bool)
	for i := range annotations {
		a := &annotations[i]
		sig := a.GetSignature()
		if !a.HasSignature() || sig == "" || !a.Range.IsValid() {
			continue
		}
		symbol := Symbol(pkg, sig)
		occ := &scippb.Occurrence{
			Range:  Range(a.Range),
			Symbol: symbol,
		}
		if a.Type.ID == protocol.AnnotationXrefSignature {
			occ.SymbolRoles = int32(scippb.SymbolRole_Definition)
			if !seen[symbol] {
				seen[symbol] = true
				doc.Symbols = append(doc.Symbols, symbolInformation(f, a, symbol))
			}
		}
		doc.Occurrences = append(doc.Occurrences, occ)
	}

	sort.SliceStable(doc.Occurrences, func(i, j int) bool {
		return lessRange(doc.Occurrences[i].Range, doc.Occurrences[j].Range)
	})
	return doc, nil
}

func symbolInformation(f *client.CsFile, a *protocol.Annotation, symbol string) *scippb.SymbolInformation {
	info := &scippb.SymbolInformation{
		Symbol: symbol,
		Kind:   Kind(a.KytheXrefKind),
	}
	// Anchor text is the name as written; ranges past the file are skipped.
	if name, err := f.Text(a.Range); err == nil {
		info.DisplayName = name
	}
	return info
}

// Range converts a 1-based inclusive text range into SCIP's 0-based,
// end-exclusive [startLine, startChar, endLine, endChar].
func Range(r protocol.TextRange) []int32 {
	return []int32{
		int32(r.StartLine - 1),
		int32(r.StartColumn - 1),
		int32(r.EndLine - 1),
		int32(r.EndColumn),
	}
}

func lessRange(a, b []int32) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// Symbol derives a global SCIP symbol from a codesearch signature. The
// signature is kept whole as a single escaped term descriptor.
func Symbol(pkg, signature string) string {
	if pkg == "" {
		pkg = "."
	}
	pkg = strings.ReplaceAll(pkg, " ", "  ")
	sig := strings.ReplaceAll(signature, "`", "``")
	return Scheme + " kythe " + pkg + " . `" + sig + "`."
}

var kinds = map[protocol.KytheNodeKind]scippb.SymbolInformation_Kind{
	protocol.KytheNodeConstant:               scippb.SymbolInformation_Constant,
	protocol.KytheNodeFunction:               scippb.SymbolInformation_Function,
	protocol.KytheNodeFunctionConstructor:    scippb.SymbolInformation_Constructor,
	protocol.KytheNodeFunctionDestructor:     scippb.SymbolInformation_Method,
	protocol.KytheNodeInterface:              scippb.SymbolInformation_Interface,
	protocol.KytheNodeMacro:                  scippb.SymbolInformation_Macro,
	protocol.KytheNodePackage:                scippb.SymbolInformation_Namespace,
	protocol.KytheNodeRecord:                 scippb.SymbolInformation_Class,
	protocol.KytheNodeRecordClass:            scippb.SymbolInformation_Class,
	protocol.KytheNodeRecordStruct:           scippb.SymbolInformation_Struct,
	protocol.KytheNodeRecordUnion:            scippb.SymbolInformation_Struct,
	protocol.KytheNodeSum:                    scippb.SymbolInformation_Enum,
	protocol.KytheNodeSumEnum:                scippb.SymbolInformation_Enum,
	protocol.KytheNodeSumEnumClass:           scippb.SymbolInformation_Enum,
	protocol.KytheNodeTalias:                 scippb.SymbolInformation_TypeAlias,
	protocol.KytheNodeVariable:               scippb.SymbolInformation_Variable,
	protocol.KytheNodeVariableField:          scippb.SymbolInformation_Field,
	protocol.KytheNodeVariableLocal:          scippb.SymbolInformation_Variable,
	protocol.KytheNodeVariableLocalParameter: scippb.SymbolInformation_Parameter,
}

// Kind maps a Kythe node kind to the closest SCIP symbol kind.
func Kind(k protocol.KytheNodeKind) scippb.SymbolInformation_Kind {
	if kind, ok := kinds[k]; ok {
		return kind
	}
	return scippb.SymbolInformation_UnspecifiedKind
}

// BuildIndex wraps docs in an index rooted at projectRoot, which should be
// a URI such as file:///src/chromium.
func BuildIndex(projectRoot string, docs ...*scippb.Document) *scippb.Index {
	return &scippb.Index{
		Metadata: &scippb.Metadata{
			Version: scippb.ProtocolVersion_UnspecifiedProtocolVersion,
			ToolInfo: &scippb.ToolInfo{
				Name:    "codesearch",
				Version: version.Version,
			},
			ProjectRoot:          projectRoot,
			TextDocumentEncoding: scippb.TextEncoding_UTF8,
		},
		Documents: docs,
	}
}

// WriteIndex serializes index to path.
func WriteIndex(path string, index *scippb.Index) error {
	data, err := proto.Marshal(index)
	if err != nil {
		return cserrors.Wrap(cserrors.InternalError, err, "encoding SCIP index")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return cserrors.Wrap(cserrors.InternalError, err, "writing SCIP index to %s", path)
	}
	return nil
}

// ReadIndex loads an index written by WriteIndex.
func ReadIndex(path string) (*scippb.Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cserrors.Wrap(cserrors.NotFound, err, "SCIP index not found at %s", path)
		}
		return nil, cserrors.Wrap(cserrors.InternalError, err, "reading SCIP index from %s", path)
	}
	var index scippb.Index
	if err := proto.Unmarshal(data, &index); err != nil {
		return nil, cserrors.Wrap(cserrors.DecodeError, err, "parsing SCIP index from %s", path)
	}
	return &index, nil
}
