package message

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	cserrors "codesearch/internal/errors"
)

// Coerce converts source, an untyped JSON-like value, into a value of type
// target. parent is the record type that SelfRef resolves to.
//
// Records become *Record, lists become []any, enums and integers become int64,
// booleans become bool and strings stay strings. A nil source coerces to nil.
func Coerce(source any, target *Type, parent *RecordType) (any, error) {
	return coerce(source, target, parent, "")
}

// CoerceRecord coerces source into a record of type rt.
func CoerceRecord(source any, rt *RecordType) (*Record, error) {
	v, err := coerce(source, RecordOf(rt), rt, "")
	if err != nil {
		return nil, err
	}
	rec, _ := v.(*Record)
	return rec, nil
}

func coerce(source any, target *Type, parent *RecordType, path string) (any, error) {
	if source == nil {
		return nil, nil
	}

	switch target.kind {
	case KindList:
		items, ok := source.([]any)
		if !ok {
			return nil, mismatch(path, source, target)
		}
		out := make([]any, len(items))
		for i, item := range items {
			v, err := coerce(item, target.elem, parent, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case KindSelf:
		if parent == nil {
			return nil, cserrors.Newf(cserrors.DecodeError, "%s: self-referencing field outside a record", pathOrRoot(path))
		}
		return coerce(source, RecordOf(parent), parent, path)

	case KindRecord:
		return coerceRecord(source, target.record, path)

	case KindEnum:
		return coerceEnum(source, target.enum, path)

	case KindInt:
		return toInt(source, path)

	case KindBool:
		return toBool(source, path)

	case KindString:
		return toString(source), nil
	}
	return nil, cserrors.Newf(cserrors.InternalError, "%s: invalid field type", pathOrRoot(path))
}

func coerceRecord(source any, rt *RecordType, path string) (any, error) {
	if rec, ok := source.(*Record); ok && rec.Type == rt {
		return rec, nil
	}
	m, ok := source.(map[string]any)
	if !ok {
		if rec, isRec := source.(*Record); isRec {
			m = rec.Tree()
		} else {
			return nil, cserrors.Newf(cserrors.DecodeError,
				"%s: source is not a dictionary: %s; mapping to %s", pathOrRoot(path), describe(source), rt.Name())
		}
	}

	rec := NewRecord(rt)
	for k, v := range m {
		ft, declared := rt.Field(k)
		if !declared {
			rec.Extra[k] = v
			continue
		}
		cv, err := coerce(v, ft, rt, join(path, k))
		if err != nil {
			return nil, err
		}
		rec.Fields[k] = cv
	}
	return rec, nil
}

func coerceEnum(source any, e *EnumType, path string) (any, error) {
	if s, ok := source.(string); ok {
		if v, found := e.Lookup(s); found {
			return v, nil
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		return nil, cserrors.Newf(cserrors.DecodeError,
			"unrecognized symbolic enum value %q for %s", s, e.Name())
	}
	return toInt(source, path)
}

func toInt(source any, path string) (int64, error) {
	switch v := source.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			break
		}
		return int64(v), nil
	case float64:
		return int64(math.Trunc(v)), nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		if f, err := v.Float64(); err == nil {
			return int64(f), nil
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n, nil
		}
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}
	return 0, mismatch(path, source, Int)
}

func toBool(source any, path string) (bool, error) {
	switch v := source.(type) {
	case bool:
		return v, nil
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b, nil
		}
	case json.Number, int, int64, float64:
		n, err := toInt(v, path)
		if err == nil {
			return n != 0, nil
		}
	}
	return false, mismatch(path, source, Bool)
}

func toString(source any) string {
	switch v := source.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(source)
}

func mismatch(path string, source any, target *Type) error {
	return cserrors.Newf(cserrors.DecodeError, "%s: cannot coerce %s to %s", pathOrRoot(path), describe(source), target)
}

func describe(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number, float64, int64, int:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func pathOrRoot(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}
