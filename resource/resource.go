package resource

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/restshape/typeid"
)

// HTTP methods accepted in a resources description.
var httpMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"}

// Resources is the set of resource methods of one application.
type Resources struct {
	BasePath string    `yaml:"basePath,omitempty" json:"basePath,omitempty"`
	Methods  []*Method `yaml:"methods" json:"methods"`
}

// Method is one resource method.
type Method struct {
	HTTPMethod  string        `yaml:"method" json:"method"`
	Path        string        `yaml:"path" json:"path"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Request     *Body         `yaml:"request,omitempty" json:"request,omitempty"`
	Responses   map[int]*Body `yaml:"responses,omitempty" json:"responses,omitempty"`
}

// Body is a request or response entity. TypeName takes precedence over
// Sample when both are given.
type Body struct {
	// TypeName is a declared type in Java notation or signature form.
	TypeName string `yaml:"type,omitempty" json:"type,omitempty"`
	// Docs maps member names to descriptions.
	Docs map[string]string `yaml:"docs,omitempty" json:"docs,omitempty"`
	// Sample is a decoded JSON payload.
	Sample any `yaml:"sample,omitempty" json:"sample,omitempty"`

	// Type is set by Interpret.
	Type typeid.Identity `yaml:"-" json:"-"`

	resolved bool
}

// Resolved reports whether Interpret assigned a type to the body.
func (b *Body) Resolved() bool {
	return b != nil && b.resolved
}

// FullPath joins the base path and the method path.
func (r *Resources) FullPath(m *Method) string {
	base := strings.Trim(r.BasePath, "/")
	p := strings.Trim(m.Path, "/")
	switch {
	case base == "" && p == "":
		return "/"
	case base == "":
		return "/" + p
	case p == "":
		return "/" + base
	}
	return "/" + base + "/" + p
}

// Statuses returns the response status codes of m in ascending order.
func (m *Method) Statuses() []int {
	codes := make([]int, 0, len(m.Responses))
	for code := range m.Responses {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// validate normalizes the HTTP method and checks required fields.
func (m *Method) validate() error {
	m.HTTPMethod = strings.ToUpper(strings.TrimSpace(m.HTTPMethod))
	if m.HTTPMethod == "" {
		return fmt.Errorf("missing method")
	}
	if !slices.Contains(httpMethods, m.HTTPMethod) {
		return fmt.Errorf("unknown method %q", m.HTTPMethod)
	}
	for _, code := range m.Statuses() {
		if code < 100 || code > 599 {
			return fmt.Errorf("%s %s: invalid status %d", m.HTTPMethod, m.Path, code)
		}
	}
	return nil
}
