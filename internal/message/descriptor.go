// Package message implements the descriptor-driven record model used by the
// codesearch wire protocol: coercion of untyped JSON into typed records,
// query-string encoding and symbol-aware JSON encoding.
package message

import (
	"sort"
)

// Kind identifies which variant a field Type is.
type Kind uint8

const (
	KindInt Kind = iota
	KindBool
	KindString
	KindEnum
	KindRecord
	KindList
	KindSelf
)

// Type is the type of a single record field.
type Type struct {
	kind   Kind
	enum   *EnumType
	record *RecordType
	elem   *Type
}

// Primitive field types and the self-reference marker.
var (
	Int     = &Type{kind: KindInt}
	Bool    = &Type{kind: KindBool}
	String  = &Type{kind: KindString}
	SelfRef = &Type{kind: KindSelf}
)

// EnumOf returns the field type for an enum.
func EnumOf(e *EnumType) *Type {
	return &Type{kind: KindEnum, enum: e}
}

// RecordOf returns the field type for a nested record.
func RecordOf(r *RecordType) *Type {
	return &Type{kind: KindRecord, record: r}
}

// ListOf returns the field type for a list of elem.
func ListOf(elem *Type) *Type {
	return &Type{kind: KindList, elem: elem}
}

func (t *Type) Kind() Kind          { return t.kind }
func (t *Type) Enum() *EnumType     { return t.enum }
func (t *Type) Record() *RecordType { return t.record }
func (t *Type) Elem() *Type         { return t.elem }

func (t *Type) String() string {
	switch t.kind {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "str"
	case KindEnum:
		return t.enum.Name()
	case KindRecord:
		return t.record.Name()
	case KindList:
		return "[" + t.elem.String() + "]"
	case KindSelf:
		return "<self>"
	}
	return "<invalid>"
}

// Fields is the descriptor of a record: field name to field type.
type Fields map[string]*Type

// QueryHook post-processes the query-string pairs produced for a record.
type QueryHook func(rec *Record, pairs []Pair) []Pair

// RecordType is the static descriptor of a record.
type RecordType struct {
	name      string
	fields    Fields
	names     []string
	queryHook QueryHook
	untyped   bool
}

// NewRecordType declares a record with the given fields.
func NewRecordType(name string, fields Fields) *RecordType {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return &RecordType{name: name, fields: fields, names: names}
}

// Untyped is the record type without a descriptor. Every key is kept verbatim.
var Untyped = &RecordType{name: "Message", untyped: true}

// WithQueryHook installs h as the query-string post-processor and returns rt.
func (rt *RecordType) WithQueryHook(h QueryHook) *RecordType {
	rt.queryHook = h
	return rt
}

func (rt *RecordType) Name() string { return rt.name }

// Field returns the declared type of a field.
func (rt *RecordType) Field(name string) (*Type, bool) {
	if rt.untyped {
		return nil, false
	}
	t, ok := rt.fields[name]
	return t, ok
}

// FieldNames returns the declared field names in sorted order.
func (rt *RecordType) FieldNames() []string {
	return rt.names
}
