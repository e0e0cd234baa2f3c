package resource

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-json-experiment/json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/restshape/shapeerrors"
)

// LoadFile reads a YAML or JSON resources description.
func LoadFile(path string) (*Resources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &shapeerrors.ParseError{Path: path, Message: "reading file", Cause: err}
	}
	return parse(data, path)
}

// Parse decodes a YAML or JSON resources description.
func Parse(data []byte) (*Resources, error) {
	return parse(data, "")
}

func parse(data []byte, path string) (*Resources, error) {
	var res Resources
	if isJSON(data) {
		if err := json.Unmarshal(data, &res); err != nil {
			return nil, &shapeerrors.ParseError{Path: path, Message: "decoding resources", Cause: err}
		}
	} else if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, &shapeerrors.ParseError{Path: path, Message: "decoding resources", Cause: err}
	}

	for i, m := range res.Methods {
		if m == nil {
			return nil, &shapeerrors.ParseError{Path: path, Message: fmt.Sprintf("methods[%d]: empty entry", i)}
		}
		if err := m.validate(); err != nil {
			return nil, &shapeerrors.ParseError{Path: path, Message: fmt.Sprintf("methods[%d]", i), Cause: err}
		}
	}
	return &res, nil
}

// isJSON reports whether data starts like a JSON object. JSON object keys
// must be strings, so status codes decode through the JSON path.
func isJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
