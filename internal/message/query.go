package message

import (
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Pair is a single key/value of an encoded query string.
type Pair struct {
	Key   string
	Value string
}

// AsQueryString flattens rec into ordered key/value pairs.
//
// Keys are visited in sorted order. A nested record is bracketed by a "b"
// and an "e" pair under its key, lists repeat the key, and nil values and
// empty strings are left out.
func AsQueryString(rec *Record) []Pair {
	if rec == nil {
		return nil
	}
	var pairs []Pair
	for _, k := range rec.Keys() {
		v, _ := rec.Get(k)
		pairs = appendValue(pairs, k, v)
	}
	if rec.Type != nil && rec.Type.queryHook != nil {
		pairs = rec.Type.queryHook(rec, pairs)
	}
	return pairs
}

func appendValue(pairs []Pair, key string, v any) []Pair {
	switch x := v.(type) {
	case nil:
		return pairs
	case *Record:
		if x == nil {
			return pairs
		}
		pairs = append(pairs, Pair{key, "b"})
		pairs = append(pairs, AsQueryString(x)...)
		return append(pairs, Pair{key, "e"})
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs = append(pairs, Pair{key, "b"})
		for _, k := range keys {
			pairs = appendValue(pairs, k, x[k])
		}
		return append(pairs, Pair{key, "e"})
	case []any:
		for _, e := range x {
			pairs = appendValue(pairs, key, e)
		}
		return pairs
	case bool:
		return append(pairs, Pair{key, strconv.FormatBool(x)})
	case string:
		if x == "" {
			return pairs
		}
		return append(pairs, Pair{key, x})
	case int64:
		return append(pairs, Pair{key, strconv.FormatInt(x, 10)})
	case json.Number:
		return append(pairs, Pair{key, x.String()})
	}
	return append(pairs, Pair{key, toString(v)})
}

// EncodeQuery renders pairs as an application/x-www-form-urlencoded string,
// preserving their order.
func EncodeQuery(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
