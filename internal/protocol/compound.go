package protocol

import (
	"bytes"
	"encoding/json"

	"codesearch/internal/message"
)

// Slot is a list that is either absent or present with zero or more items.
// Compound requests and responses use slots so that "not asked" and "asked,
// got nothing" stay distinguishable on the wire.
type Slot[T any] struct {
	items   []T
	present bool
}

// SlotOf returns a present slot holding items.
func SlotOf[T any](items ...T) Slot[T] {
	if items == nil {
		items = []T{}
	}
	return Slot[T]{items: items, present: true}
}

func (s Slot[T]) Present() bool { return s.present }
func (s Slot[T]) Items() []T    { return s.items }
func (s Slot[T]) Len() int      { return len(s.items) }

// First returns the first item, if any.
func (s Slot[T]) First() (*T, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return &s.items[0], true
}

func (s Slot[T]) MarshalJSON() ([]byte, error) {
	if !s.present {
		return []byte("null"), nil
	}
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

func (s *Slot[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = Slot[T]{}
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = SlotOf(items...)
	return nil
}

var compoundRequestType = message.NewRecordType("CompoundRequest", message.Fields{
	"annotation_request":  message.ListOf(message.RecordOf(annotationRequestType)),
	"call_graph_request":  message.ListOf(message.RecordOf(callGraphRequestType)),
	"dir_info_request":    message.ListOf(message.RecordOf(dirInfoRequestType)),
	"file_info_request":   message.ListOf(message.RecordOf(fileInfoRequestType)),
	"search_request":      message.ListOf(message.RecordOf(searchRequestType)),
	"status_request":      message.ListOf(message.RecordOf(statusRequestType)),
	"xref_search_request": message.ListOf(message.RecordOf(xrefSearchRequestType)),
})

// CompoundRequest batches requests of different kinds into one call.
type CompoundRequest struct {
	AnnotationRequest Slot[AnnotationRequest] `json:"annotation_request"`
	CallGraphRequest  Slot[CallGraphRequest]  `json:"call_graph_request"`
	DirInfoRequest    Slot[DirInfoRequest]    `json:"dir_info_request"`
	FileInfoRequest   Slot[FileInfoRequest]   `json:"file_info_request"`
	SearchRequest     Slot[SearchRequest]     `json:"search_request"`
	StatusRequest     Slot[StatusRequest]     `json:"status_request"`
	XrefSearchRequest Slot[XrefSearchRequest] `json:"xref_search_request"`
}

func (CompoundRequest) Descriptor() *message.RecordType { return compoundRequestType }

var compoundResponseType = message.NewRecordType("CompoundResponse", message.Fields{
	"annotation_response":  message.ListOf(message.RecordOf(annotationResponseType)),
	"call_graph_response":  message.ListOf(message.RecordOf(callGraphResponseType)),
	"dir_info_response":    message.ListOf(message.RecordOf(dirInfoResponseType)),
	"file_info_response":   message.ListOf(message.RecordOf(fileInfoResponseType)),
	"search_response":      message.ListOf(message.RecordOf(searchResponseType)),
	"status_response":      message.ListOf(message.RecordOf(statusResponseType)),
	"xref_search_response": message.ListOf(message.RecordOf(xrefSearchResponseType)),
	"elapsed_ms":           message.Int,
})

// CompoundResponse carries one slot per request kind. A slot is present only
// when the matching request kind was sent.
type CompoundResponse struct {
	AnnotationResponse Slot[AnnotationResponse] `json:"annotation_response"`
	CallGraphResponse  Slot[CallGraphResponse]  `json:"call_graph_response"`
	DirInfoResponse    Slot[DirInfoResponse]    `json:"dir_info_response"`
	FileInfoResponse   Slot[FileInfoResponse]   `json:"file_info_response"`
	SearchResponse     Slot[SearchResponse]     `json:"search_response"`
	StatusResponse     Slot[StatusResponse]     `json:"status_response"`
	XrefSearchResponse Slot[XrefSearchResponse] `json:"xref_search_response"`
	ElapsedMs          int                      `json:"elapsed_ms"`
}

func (CompoundResponse) Descriptor() *message.RecordType { return compoundResponseType }
