package resource

import (
	"cmp"
	"slices"

	"github.com/erraggy/restshape/model"
	"github.com/erraggy/restshape/render"
	"github.com/erraggy/restshape/schema"
	"github.com/erraggy/restshape/typeid"
)

// Summary describes one resolved body.
type Summary struct {
	Method string `json:"method" yaml:"method"`
	Path   string `json:"path" yaml:"path"`
	// Status is 0 for request bodies.
	Status int            `json:"status,omitempty" yaml:"status,omitempty"`
	Type   string         `json:"type" yaml:"type"`
	Sample string         `json:"sample" yaml:"sample"`
	Schema *schema.Schema `json:"schema" yaml:"schema"`
}

// IsRequest reports whether the summary describes a request body.
func (s Summary) IsRequest() bool {
	return s.Status == 0
}

// Summarize renders each resolved body of res as a sample and a schema
// reference. References register their definitions in b. Results are sorted
// by path, then method, then status with the request first.
func Summarize(res *Resources, store *model.Store, b *schema.Builder) []Summary {
	if res == nil {
		return nil
	}
	sample := render.NewSample(store)

	var out []Summary
	add := func(m *Method, status int, body *Body) {
		if !body.Resolved() {
			return
		}
		out = append(out, Summary{
			Method: m.HTTPMethod,
			Path:   res.FullPath(m),
			Status: status,
			Type:   describe(body),
			Sample: sample.RenderIdentity(body.Type),
			Schema: b.Ref(body.Type),
		})
	}
	for _, m := range res.Methods {
		if m == nil {
			continue
		}
		add(m, 0, m.Request)
		for _, code := range m.Statuses() {
			add(m, code, m.Responses[code])
		}
	}

	slices.SortStableFunc(out, func(x, y Summary) int {
		return cmp.Or(
			cmp.Compare(x.Path, y.Path),
			cmp.Compare(x.Method, y.Method),
			cmp.Compare(x.Status, y.Status),
		)
	})
	return out
}

func describe(b *Body) string {
	if b.Type.IsSynthetic() {
		return "inferred"
	}
	return typeid.ToReadable(b.Type.Signature())
}
