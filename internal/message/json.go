package message

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	cserrors "codesearch/internal/errors"
)

type decodeOptions struct {
	reportDir string
}

// DecodeOption configures DecodeJSON.
type DecodeOption func(*decodeOptions)

// WithReportDir sets the directory that parse failure reports are written to.
// The default is os.TempDir().
func WithReportDir(dir string) DecodeOption {
	return func(o *decodeOptions) { o.reportDir = dir }
}

// DecodeJSON parses data and coerces it into a record of type rt.
//
// Invalid UTF-8 sequences are replaced with U+FFFD before parsing. When the
// payload is not valid JSON, its content is saved to a report file and the
// returned error names that file.
func DecodeJSON(data []byte, rt *RecordType, opts ...DecodeOption) (*Record, error) {
	o := decodeOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}

	tree, err := parseTree(text)
	if err != nil {
		name, werr := writeReport(o.reportDir, err, text)
		if werr != nil {
			return nil, cserrors.Wrap(cserrors.DecodeError, err, "Error while decoding JSON response")
		}
		return nil, cserrors.Wrap(cserrors.DecodeError, err, "Error while decoding JSON response. Report saved to %s", name)
	}
	return CoerceRecord(tree, rt)
}

func parseTree(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return tree, nil
}

func writeReport(dir string, cause error, content string) (string, error) {
	f, err := os.CreateTemp(dir, "codesearch_error_")
	if err != nil {
		return "", err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "Error while decoding JSON response.\n\nMessage: %s\nContent follows this line: ----\n%s\n", cause, content)
	if err != nil {
		return "", err
	}
	return f.Name(), nil
}

// MarshalSymbolized encodes rec as JSON with enum values written as their
// symbolic names. Empty strings, empty lists and nil values are omitted.
func MarshalSymbolized(rec *Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(symbolize(rec, true)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func symbolize(rec *Record, omitEmpty bool) map[string]any {
	out := make(map[string]any, len(rec.Fields)+len(rec.Extra))
	for k, v := range rec.Extra {
		out[k] = plain(v)
	}
	for k, v := range rec.Fields {
		ft, _ := rec.Type.Field(k)
		if omitEmpty && isEmpty(v) {
			continue
		}
		out[k] = symbolizeValue(v, ft, omitEmpty)
	}
	return out
}

func symbolizeValue(v any, ft *Type, omitEmpty bool) any {
	switch x := v.(type) {
	case *Record:
		if x == nil {
			return nil
		}
		return symbolize(x, omitEmpty)
	case []any:
		var elem *Type
		if ft != nil {
			elem = ft.elem
		}
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = symbolizeValue(e, elem, omitEmpty)
		}
		return out
	case int64:
		if ft != nil && ft.kind == KindEnum {
			return ft.enum.Symbol(x)
		}
	}
	return plain(v)
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case []any:
		return len(x) == 0
	case *Record:
		return x == nil
	}
	return false
}
