package message

import (
	"encoding/json"
	"sort"
)

// Record is a coerced message: declared fields hold values of their declared
// types, undeclared keys from the source are kept in Extra.
type Record struct {
	Type   *RecordType
	Fields map[string]any
	Extra  map[string]any
}

// NewRecord returns an empty record of type rt.
func NewRecord(rt *RecordType) *Record {
	return &Record{Type: rt, Fields: map[string]any{}, Extra: map[string]any{}}
}

// Get returns the value of a declared or passthrough field.
func (r *Record) Get(name string) (any, bool) {
	if v, ok := r.Fields[name]; ok {
		return v, true
	}
	v, ok := r.Extra[name]
	return v, ok
}

// Set assigns a field. Undeclared names go to Extra.
func (r *Record) Set(name string, v any) {
	if _, declared := r.Type.Field(name); declared {
		r.Fields[name] = v
		return
	}
	if r.Extra == nil {
		r.Extra = map[string]any{}
	}
	r.Extra[name] = v
}

// Keys returns the union of declared and passthrough keys, sorted.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.Fields)+len(r.Extra))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	for k := range r.Extra {
		if _, dup := r.Fields[k]; !dup {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Tree returns r as plain maps, slices and scalars. Enum values stay numeric.
func (r *Record) Tree() map[string]any {
	out := make(map[string]any, len(r.Fields)+len(r.Extra))
	for k, v := range r.Extra {
		out[k] = plain(v)
	}
	for k, v := range r.Fields {
		out[k] = plain(v)
	}
	return out
}

func plain(v any) any {
	switch x := v.(type) {
	case *Record:
		if x == nil {
			return nil
		}
		return x.Tree()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = plain(e)
		}
		return out
	}
	return v
}

// MarshalJSON encodes the record as a flat JSON object, passthrough keys
// included.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Tree())
}

// String renders the record as indented JSON with enum symbols.
func (r *Record) String() string {
	data, err := json.MarshalIndent(symbolize(r, false), "", "  ")
	if err != nil {
		return "<" + r.Type.Name() + ": " + err.Error() + ">"
	}
	return string(data)
}
