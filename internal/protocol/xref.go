package protocol

import (
	"codesearch/internal/message"
)

// DefaultMaxResults is the result limit of requests built by the New*
// constructors.
const DefaultMaxResults = 100

var matchReasonType = message.NewRecordType("MatchReason", message.Fields{
	"blame":           message.Bool,
	"content":         message.Bool,
	"filename":        message.Bool,
	"filename_lineno": message.Bool,
	"scoped_symbol":   message.Bool,
})

type MatchReason struct {
	Blame          bool `json:"blame"`
	Content        bool `json:"content"`
	Filename       bool `json:"filename"`
	FilenameLineno bool `json:"filename_lineno"`
	ScopedSymbol   bool `json:"scoped_symbol"`
}

func (MatchReason) Descriptor() *message.RecordType { return matchReasonType }

var snippetType = message.NewRecordType("Snippet", message.Fields{
	"first_line_number": message.Int,
	"match_reason":      message.RecordOf(matchReasonType),
	"scope":             message.String,
	"text":              message.RecordOf(annotatedTextType),
})

type Snippet struct {
	FirstLineNumber int           `json:"first_line_number"`
	MatchReason     MatchReason   `json:"match_reason"`
	Scope           string        `json:"scope"`
	Text            AnnotatedText `json:"text"`
}

func (Snippet) Descriptor() *message.RecordType { return snippetType }

func (s Snippet) Empty() bool { return s.FirstLineNumber == 0 || s.Text.Empty() }

var nodeType = message.NewRecordType("Node", message.Fields{
	"call_scope_range":     message.RecordOf(textRangeType),
	"call_site_range":      message.RecordOf(textRangeType),
	"children":             message.ListOf(message.SelfRef),
	"display_name":         message.String,
	"edge_kind":            message.String,
	"file_path":            message.String,
	"identifier":           message.String,
	"node_kind":            message.EnumOf(kytheNodeKindEnum),
	"override":             message.Bool,
	"package_name":         message.String,
	"params":               message.ListOf(message.String),
	"signature":            message.String,
	"snippet":              message.RecordOf(snippetType),
	"snippet_file_path":    message.String,
	"snippet_package_name": message.String,
})

// Node is a call graph node. Children are the call sites of the function
// named by the node.
//
// For a call to Bar() on line 4 inside Foo(), CallScopeRange covers the name
// Foo on its declaration line and CallSiteRange covers the call expression
// on line 4. Signature names the thing at CallScopeRange. Params lists the
// parameter names of FUNCTION nodes without type information.
type Node struct {
	CallScopeRange     TextRange     `json:"call_scope_range"`
	CallSiteRange      TextRange     `json:"call_site_range"`
	Children           []Node        `json:"children"`
	DisplayName        string        `json:"display_name"`
	EdgeKind           string        `json:"edge_kind"`
	FilePath           string        `json:"file_path"`
	Identifier         string        `json:"identifier"`
	NodeKind           KytheNodeKind `json:"node_kind"`
	Override           bool          `json:"override"`
	PackageName        string        `json:"package_name"`
	Params             []string      `json:"params"`
	Signature          string        `json:"signature"`
	Snippet            Snippet       `json:"snippet"`
	SnippetFilePath    string        `json:"snippet_file_path"`
	SnippetPackageName string        `json:"snippet_package_name"`
}

func (Node) Descriptor() *message.RecordType { return nodeType }

var callGraphResponseType = message.NewRecordType("CallGraphResponse", message.Fields{
	"debug_message":                  message.String,
	"estimated_total_number_results": message.Int,
	"is_call_graph":                  message.Bool,
	"is_from_kythe":                  message.Bool,
	"kythe_next_page_token":          message.String,
	"node":                           message.RecordOf(nodeType),
	"results_offset":                 message.Int,
	"return_code":                    message.Int,
})

type CallGraphResponse struct {
	DebugMessage                string `json:"debug_message"`
	EstimatedTotalNumberResults int    `json:"estimated_total_number_results"`
	IsCallGraph                 bool   `json:"is_call_graph"`
	IsFromKythe                 bool   `json:"is_from_kythe"`
	KytheNextPageToken          string `json:"kythe_next_page_token"`
	Node                        Node   `json:"node"`
	ResultsOffset               int    `json:"results_offset"`
	ReturnCode                  int    `json:"return_code"`
}

func (CallGraphResponse) Descriptor() *message.RecordType { return callGraphResponseType }

var callGraphRequestType = message.NewRecordType("CallGraphRequest", message.Fields{
	"file_spec":       message.RecordOf(fileSpecType),
	"max_num_results": message.Int,
	"signature":       message.String,
})

type CallGraphRequest struct {
	FileSpec      FileSpec `json:"file_spec"`
	MaxNumResults int      `json:"max_num_results"`
	Signature     string   `json:"signature"`
}

func (CallGraphRequest) Descriptor() *message.RecordType { return callGraphRequestType }

func NewCallGraphRequest(spec FileSpec, signature string) CallGraphRequest {
	return CallGraphRequest{FileSpec: spec, MaxNumResults: DefaultMaxResults, Signature: signature}
}

var xrefTypeCountType = message.NewRecordType("XrefTypeCount", message.Fields{
	"count":   message.Int,
	"type":    message.String,
	"type_id": message.EnumOf(kytheXrefKindEnum),
})

type XrefTypeCount struct {
	Count  int           `json:"count"`
	Type   string        `json:"type"`
	TypeID KytheXrefKind `json:"type_id"`
}

func (XrefTypeCount) Descriptor() *message.RecordType { return xrefTypeCountType }

var xrefSingleMatchType = message.NewRecordType("XrefSingleMatch", message.Fields{
	"line_number":    message.Int,
	"line_text":      message.String,
	"type":           message.String,
	"type_id":        message.EnumOf(kytheXrefKindEnum),
	"node_type":      message.EnumOf(nodeEnumKindEnum),
	"grok_modifiers": message.RecordOf(modifiersType),
	"signature":      message.String,
})

// XrefSingleMatch is one cross-reference hit. NodeType and GrokModifiers are
// only sent by the legacy backend.
type XrefSingleMatch struct {
	LineNumber    int           `json:"line_number"`
	LineText      string        `json:"line_text"`
	Type          string        `json:"type"`
	TypeID        KytheXrefKind `json:"type_id"`
	NodeType      *NodeEnumKind `json:"node_type,omitempty"`
	GrokModifiers *Modifiers    `json:"grok_modifiers,omitempty"`
	Signature     string        `json:"signature"`
}

func (XrefSingleMatch) Descriptor() *message.RecordType { return xrefSingleMatchType }

var xrefSearchResultType = message.NewRecordType("XrefSearchResult", message.Fields{
	"file":  message.RecordOf(fileSpecType),
	"match": message.ListOf(message.RecordOf(xrefSingleMatchType)),
})

// XrefSearchResult is a file and the matches found in it.
type XrefSearchResult struct {
	File  FileSpec          `json:"file"`
	Match []XrefSingleMatch `json:"match"`
}

func (XrefSearchResult) Descriptor() *message.RecordType { return xrefSearchResultType }

var xrefSearchResponseType = message.NewRecordType("XrefSearchResponse", message.Fields{
	"eliminated_type_count":        message.ListOf(message.RecordOf(xrefTypeCountType)),
	"estimated_total_type_count":   message.ListOf(message.RecordOf(xrefTypeCountType)),
	"from_kythe":                   message.Bool,
	"kythe_next_page_token":        message.String,
	"grok_total_number_of_results": message.Int,
	"search_result":                message.ListOf(message.RecordOf(xrefSearchResultType)),
	"status":                       message.Int,
	"status_message":               message.String,
})

type XrefSearchResponse struct {
	EliminatedTypeCount      []XrefTypeCount    `json:"eliminated_type_count"`
	EstimatedTotalTypeCount  []XrefTypeCount    `json:"estimated_total_type_count"`
	FromKythe                bool               `json:"from_kythe"`
	KytheNextPageToken       string             `json:"kythe_next_page_token"`
	GrokTotalNumberOfResults *int               `json:"grok_total_number_of_results,omitempty"`
	SearchResult             []XrefSearchResult `json:"search_result"`
	Status                   int                `json:"status"`
	StatusMessage            string             `json:"status_message"`
}

func (XrefSearchResponse) Descriptor() *message.RecordType { return xrefSearchResponseType }

var xrefSearchRequestType = message.NewRecordType("XrefSearchRequest", message.Fields{
	"edge_filter":     message.ListOf(message.EnumOf(edgeEnumKindEnum)),
	"file_spec":       message.RecordOf(fileSpecType),
	"max_num_results": message.Int,
	"query":           message.String,
})

// XrefSearchRequest looks up the edges of the signature in Query.
// EdgeFilter restricts the edges returned by the legacy backend; it is left
// out of the request when empty.
type XrefSearchRequest struct {
	EdgeFilter    []EdgeEnumKind `json:"edge_filter,omitempty"`
	FileSpec      FileSpec       `json:"file_spec"`
	MaxNumResults int            `json:"max_num_results"`
	Query         string         `json:"query"`
}

func (XrefSearchRequest) Descriptor() *message.RecordType { return xrefSearchRequestType }

func NewXrefSearchRequest(spec FileSpec, query string) XrefSearchRequest {
	return XrefSearchRequest{FileSpec: spec, MaxNumResults: DefaultMaxResults, Query: query}
}
