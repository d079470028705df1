package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatTOML  OutputFormat = "toml"
	FormatHuman OutputFormat = "human"
)

// humanReadable is implemented by responses with a dedicated text form.
type humanReadable interface {
	Human() string
}

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatYAML:
		return formatYAML(resp)
	case FormatTOML:
		return formatTOML(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// toTree converts resp to plain maps and slices through its JSON form, so
// that every format uses the json field names.
func toTree(resp interface{}) (interface{}, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return normalize(tree), nil
}

// normalize turns json.Number into int64 or float64 and drops nulls, which
// TOML cannot represent.
func normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		for k, e := range x {
			if e == nil {
				delete(x, k)
				continue
			}
			x[k] = normalize(e)
		}
		return x
	case []interface{}:
		out := x[:0]
		for _, e := range x {
			if e != nil {
				out = append(out, normalize(e))
			}
		}
		return out
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		f, _ := x.Float64()
		return f
	}
	return v
}

func formatYAML(resp interface{}) (string, error) {
	tree, err := toTree(resp)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(tree)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func formatTOML(resp interface{}) (string, error) {
	tree, err := toTree(resp)
	if err != nil {
		return "", err
	}
	// A TOML document is always a table.
	if _, ok := tree.(map[string]interface{}); !ok {
		tree = map[string]interface{}{"result": tree}
	}
	data, err := toml.Marshal(tree)
	if err != nil {
		return "", fmt.Errorf("failed to marshal TOML: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case humanReadable:
		return v.Human(), nil
	case string:
		return v, nil
	default:
		return formatJSON(resp)
	}
}
