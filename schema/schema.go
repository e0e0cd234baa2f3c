package schema

import (
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"go.yaml.in/yaml/v4"
)

// Schema is a node of a generated definition document.
// Only the fields relevant to the node are populated.
type Schema struct {
	Ref         string             `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type        string             `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string             `json:"format,omitempty" yaml:"format,omitempty"`
	Items       *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty" yaml:"enum,omitempty"`
	MaxLength   int                `json:"maxLength,omitzero" yaml:"maxLength,omitempty"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool               `json:"required,omitzero" yaml:"required,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// IsRef reports whether s is a reference to a named definition.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// Document is the top level definition document.
type Document struct {
	Definitions map[string]*Schema `json:"definitions" yaml:"definitions"`
}

// JSON encodes the document with sorted keys, indented when indent is true.
func (d *Document) JSON(indent bool) ([]byte, error) {
	return Marshal(d, indent)
}

// YAML encodes the document as YAML.
func (d *Document) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// Marshal encodes v deterministically. It is used for both documents and
// individual schema nodes.
func Marshal(v any, indent bool) ([]byte, error) {
	opts := []json.Options{json.Deterministic(true)}
	if indent {
		opts = append(opts, jsontext.WithIndent("  "))
	}
	return json.Marshal(v, opts...)
}
