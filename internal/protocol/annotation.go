package protocol

import (
	"strings"

	"codesearch/internal/message"
)

var annotationTypeType = message.NewRecordType("AnnotationType", message.Fields{
	"id": message.EnumOf(annotationTypeValueEnum),
})

type AnnotationType struct {
	ID AnnotationTypeValue `json:"id"`
}

func (AnnotationType) Descriptor() *message.RecordType { return annotationTypeType }

var fileSpecType = message.NewRecordType("FileSpec", message.Fields{
	"name":         message.String,
	"package_name": message.String,
	"changelist":   message.String,
})

// FileSpec identifies a file by its path relative to the package root.
// Changelist pins a revision when set.
type FileSpec struct {
	Name        string `json:"name"`
	PackageName string `json:"package_name"`
	Changelist  string `json:"changelist"`
}

func (FileSpec) Descriptor() *message.RecordType { return fileSpecType }

func (f FileSpec) String() string {
	if f.Changelist != "" {
		return f.PackageName + "/" + f.Name + "@" + f.Changelist
	}
	return f.PackageName + "/" + f.Name
}

// signatureTokens splits a space delimited ticket list.
func signatureTokens(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, " ")
}

func containsToken(list, sig string) bool {
	for _, t := range strings.Split(list, " ") {
		if t == sig {
			return true
		}
	}
	return false
}

var internalLinkType = message.NewRecordType("InternalLink", message.Fields{
	"package_name":        message.String,
	"highlight_signature": message.String,
	"signature":           message.String,
	"signature_hash":      message.String,
	"path":                message.String,
	"range":               message.RecordOf(textRangeType),
})

// InternalLink points at the definition of the entity under an annotation.
// Signature and HighlightSignature are space delimited ticket lists.
type InternalLink struct {
	PackageName        string    `json:"package_name"`
	HighlightSignature string    `json:"highlight_signature"`
	Signature          string    `json:"signature"`
	SignatureHash      string    `json:"signature_hash"`
	Path               string    `json:"path"`
	Range              TextRange `json:"range"`
}

func (InternalLink) Descriptor() *message.RecordType { return internalLinkType }

func (l *InternalLink) MatchesSignature(sig string) bool {
	return containsToken(l.HighlightSignature, sig) || containsToken(l.Signature, sig)
}

// GetSignatures returns the signature tickets followed by the highlight
// tickets.
func (l *InternalLink) GetSignatures() []string {
	return append(signatureTokens(l.Signature), signatureTokens(l.HighlightSignature)...)
}

func (l *InternalLink) GetSignature() string {
	if sigs := l.GetSignatures(); len(sigs) > 0 {
		return sigs[0]
	}
	return ""
}

var xrefSignatureType = message.NewRecordType("XrefSignature", message.Fields{
	"highlight_signature": message.String,
	"signature":           message.String,
	"signature_hash":      message.String,
})

type XrefSignature struct {
	HighlightSignature string `json:"highlight_signature"`
	Signature          string `json:"signature"`
	SignatureHash      string `json:"signature_hash"`
}

func (XrefSignature) Descriptor() *message.RecordType { return xrefSignatureType }

func (x *XrefSignature) MatchesSignature(sig string) bool {
	return containsToken(x.HighlightSignature, sig) || containsToken(x.Signature, sig)
}

func (x *XrefSignature) GetSignatures() []string {
	return append(signatureTokens(x.Signature), signatureTokens(x.HighlightSignature)...)
}

func (x *XrefSignature) GetSignature() string {
	if sigs := x.GetSignatures(); len(sigs) > 0 {
		return sigs[0]
	}
	return ""
}

var annotationType = message.NewRecordType("Annotation", message.Fields{
	"content":            message.String,
	"file_name":          message.String,
	"internal_link":      message.RecordOf(internalLinkType),
	"is_implicit_target": message.Bool,
	"kythe_xref_kind":    message.EnumOf(kytheNodeKindEnum),
	"range":              message.RecordOf(textRangeType),
	"status":             message.Int,
	"type":               message.RecordOf(annotationTypeType),
	"url":                message.String,
	"xref_kind":          message.EnumOf(nodeEnumKindEnum),
	"xref_signature":     message.RecordOf(xrefSignatureType),
})

// Annotation is a tagged span of text in a file.
//
// Content holds hover text for OVERRIDE annotations and a semicolon
// separated revision and author for BLAME. XrefKind is only sent by the
// legacy backend.
type Annotation struct {
	Content          string         `json:"content"`
	FileName         string         `json:"file_name"`
	InternalLink     *InternalLink  `json:"internal_link,omitempty"`
	IsImplicitTarget bool           `json:"is_implicit_target"`
	KytheXrefKind    KytheNodeKind  `json:"kythe_xref_kind"`
	Range            TextRange      `json:"range"`
	Status           int            `json:"status"`
	Type             AnnotationType `json:"type"`
	URL              string         `json:"url"`
	XrefKind         *NodeEnumKind  `json:"xref_kind,omitempty"`
	XrefSignature    *XrefSignature `json:"xref_signature,omitempty"`
}

func (Annotation) Descriptor() *message.RecordType { return annotationType }

func (a *Annotation) link() *InternalLink {
	if a.InternalLink == nil {
		return &InternalLink{}
	}
	return a.InternalLink
}

func (a *Annotation) xref() *XrefSignature {
	if a.XrefSignature == nil {
		return &XrefSignature{}
	}
	return a.XrefSignature
}

func (a *Annotation) MatchesSignature(sig string) bool {
	switch a.Type.ID {
	case AnnotationLinkToDefinition:
		return a.link().MatchesSignature(sig)
	case AnnotationXrefSignature:
		return a.xref().MatchesSignature(sig)
	}
	return false
}

// HasSignature reports whether a is of a kind that carries a signature.
func (a *Annotation) HasSignature() bool {
	return a.Type.ID == AnnotationLinkToDefinition || a.Type.ID == AnnotationXrefSignature
}

// GetSignature returns the primary signature, or "" for annotations without
// one.
func (a *Annotation) GetSignature() string {
	switch a.Type.ID {
	case AnnotationLinkToDefinition:
		return a.link().GetSignature()
	case AnnotationXrefSignature:
		return a.xref().GetSignature()
	}
	return ""
}

func (a *Annotation) GetSignatures() []string {
	switch a.Type.ID {
	case AnnotationLinkToDefinition:
		return a.link().GetSignatures()
	case AnnotationXrefSignature:
		return a.xref().GetSignatures()
	}
	return nil
}

var formatRangeType = message.NewRecordType("FormatRange", message.Fields{
	"type":   message.EnumOf(formatTypeEnum),
	"range":  message.RecordOf(textRangeType),
	"target": message.String,
})

type FormatRange struct {
	Type   FormatType `json:"type"`
	Range  TextRange  `json:"range"`
	Target string     `json:"target"`
}

func (FormatRange) Descriptor() *message.RecordType { return formatRangeType }

var annotatedTextType = message.NewRecordType("AnnotatedText", message.Fields{
	"text":  message.String,
	"range": message.ListOf(message.RecordOf(formatRangeType)),
})

type AnnotatedText struct {
	Text  string        `json:"text"`
	Range []FormatRange `json:"range"`
}

func (AnnotatedText) Descriptor() *message.RecordType { return annotatedTextType }

func (t AnnotatedText) Empty() bool { return t.Text == "" }

var annotationResponseType = message.NewRecordType("AnnotationResponse", message.Fields{
	"annotation":           message.ListOf(message.RecordOf(annotationType)),
	"file":                 message.String,
	"max_findings_reached": message.Bool,
	"return_code":          message.Int,
})

type AnnotationResponse struct {
	Annotation         []Annotation `json:"annotation"`
	File               string       `json:"file"`
	MaxFindingsReached bool         `json:"max_findings_reached"`
	ReturnCode         int          `json:"return_code"`
}

func (AnnotationResponse) Descriptor() *message.RecordType { return annotationResponseType }

// The backend expects an explicit empty md5 right after the file spec.
var annotationRequestType = message.NewRecordType("AnnotationRequest", message.Fields{
	"file_spec": message.RecordOf(fileSpecType),
	"type":      message.ListOf(message.RecordOf(annotationTypeType)),
	"md5":       message.String,
}).WithQueryHook(func(rec *message.Record, pairs []message.Pair) []message.Pair {
	if md5, _ := rec.Fields["md5"].(string); md5 != "" {
		return pairs
	}
	for i, p := range pairs {
		if p == (message.Pair{Key: "file_spec", Value: "e"}) {
			out := make([]message.Pair, 0, len(pairs)+1)
			out = append(out, pairs[:i+1]...)
			out = append(out, message.Pair{Key: "md5", Value: ""})
			return append(out, pairs[i+1:]...)
		}
	}
	return pairs
})

type AnnotationRequest struct {
	FileSpec FileSpec         `json:"file_spec"`
	Type     []AnnotationType `json:"type"`
	MD5      string           `json:"md5"`
}

func (AnnotationRequest) Descriptor() *message.RecordType { return annotationRequestType }
