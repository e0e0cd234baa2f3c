package classmeta

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/restshape/shapeerrors"
)

// document is the on-disk shape of a metadata table.
type document struct {
	Classes []*Class `yaml:"classes"`
}

// LoadFile reads a YAML or JSON metadata file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &shapeerrors.ParseError{Path: path, Message: "reading file", Cause: err}
	}
	return parse(data, path)
}

// Parse decodes a YAML or JSON metadata document.
func Parse(data []byte) (*Table, error) {
	return parse(data, "")
}

func parse(data []byte, path string) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &shapeerrors.ParseError{Path: path, Message: "decoding class metadata", Cause: err}
	}

	t := NewTable()
	for i, c := range doc.Classes {
		if c == nil || c.Name == "" {
			return nil, &shapeerrors.ParseError{Path: path, Message: fmt.Sprintf("classes[%d]: missing name", i)}
		}
		if !c.Access.IsValid() {
			return nil, &shapeerrors.ParseError{
				Path:    path,
				Message: fmt.Sprintf("class %s: unknown access type %q", c.Name, c.Access),
			}
		}
		if err := t.Add(c); err != nil {
			return nil, &shapeerrors.ParseError{Path: path, Message: fmt.Sprintf("classes[%d]", i), Cause: err}
		}
	}
	return t, nil
}
