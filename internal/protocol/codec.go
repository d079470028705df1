// Package protocol declares the records and enums exchanged with the
// codesearch backend, each with its static descriptor, plus typed bridges
// to the message framework.
package protocol

import (
	"bytes"
	"encoding/json"

	cserrors "codesearch/internal/errors"
	"codesearch/internal/message"
)

// Message is implemented by every protocol record.
type Message interface {
	Descriptor() *message.RecordType
}

// Decode parses a JSON payload into a T, running it through the record's
// descriptor first so that symbolic enum values, invalid UTF-8 and unknown
// keys are handled the same way for every record type.
func Decode[T any, PT interface {
	*T
	Message
}](data []byte, opts ...message.DecodeOption) (*T, error) {
	var zero T
	rec, err := message.DecodeJSON(data, PT(&zero).Descriptor(), opts...)
	if err != nil {
		return nil, err
	}
	return FromRecord[T, PT](rec)
}

// FromRecord materializes a coerced record as a T.
func FromRecord[T any, PT interface {
	*T
	Message
}](rec *message.Record) (*T, error) {
	out := new(T)
	if rec == nil {
		return out, nil
	}
	if want := PT(out).Descriptor(); rec.Type != want {
		return nil, cserrors.Newf(cserrors.InternalError, "record of type %s cannot populate %s", rec.Type.Name(), want.Name())
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, cserrors.Wrap(cserrors.DecodeError, err, "re-encoding %s", rec.Type.Name())
	}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, cserrors.Wrap(cserrors.DecodeError, err, "materializing %s", rec.Type.Name())
	}
	return out, nil
}

// ToRecord converts m into its untyped record form.
func ToRecord(m Message) (*message.Record, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, cserrors.Wrap(cserrors.InternalError, err, "encoding %s", m.Descriptor().Name())
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, cserrors.Wrap(cserrors.InternalError, err, "encoding %s", m.Descriptor().Name())
	}
	return message.CoerceRecord(tree, m.Descriptor())
}

// QueryString returns the ordered query-string pairs for m.
func QueryString(m Message) ([]message.Pair, error) {
	rec, err := ToRecord(m)
	if err != nil {
		return nil, err
	}
	return message.AsQueryString(rec), nil
}

// Encode returns m as plain JSON with numeric enum values.
func Encode(m Message) ([]byte, error) {
	rec, err := ToRecord(m)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

// EncodeSymbolized returns m as JSON with enum values written as symbols and
// empty fields left out.
func EncodeSymbolized(m Message) ([]byte, error) {
	rec, err := ToRecord(m)
	if err != nil {
		return nil, err
	}
	return message.MarshalSymbolized(rec)
}
