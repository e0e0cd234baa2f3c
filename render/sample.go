package render

import (
	"strings"
	"sync"

	"github.com/erraggy/restshape/model"
	"github.com/erraggy/restshape/typeid"
)

// Sample renders representative JSON instances.
type Sample struct {
	mu       sync.Mutex
	store    *model.Store
	sb       strings.Builder
	visiting map[typeid.Identity]bool
}

// NewSample returns a sample renderer resolving nested identities in store.
func NewSample(store *model.Store) *Sample {
	return &Sample{
		store:    store,
		visiting: make(map[typeid.Identity]bool),
	}
}

// Render returns the sample instance of rep.
func (s *Sample) Render(rep model.Representation) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sb.Reset()
	clear(s.visiting)
	s.write(rep)
	return s.sb.String()
}

// RenderIdentity renders the stored representation of id, or its primitive
// placeholder when the store has none.
func (s *Sample) RenderIdentity(id typeid.Identity) string {
	if rep, ok := s.store.Get(id); ok {
		return s.Render(rep)
	}
	return samplePlaceholder(id)
}

func (s *Sample) write(rep model.Representation) {
	switch r := rep.(type) {
	case *model.Concrete:
		s.writeConcrete(r)
	case *model.Collection:
		s.sb.WriteByte('[')
		s.write(resolve(s.store, r.Element))
		s.sb.WriteByte(']')
	case *model.Enum:
		values := r.SortedValues()
		if len(values) == 0 {
			s.sb.WriteString(`"string"`)
			return
		}
		writeQuoted(&s.sb, strings.Join(values, "|"))
	default:
		s.sb.WriteString("{}")
	}
}

func (s *Sample) writeConcrete(c *model.Concrete) {
	if c.IsLeaf() {
		s.sb.WriteString(samplePlaceholder(c.ID))
		return
	}
	if s.visiting[c.ID] {
		s.sb.WriteString("{}")
		return
	}
	s.visiting[c.ID] = true
	defer delete(s.visiting, c.ID)

	s.sb.WriteByte('{')
	for i, name := range c.PropertyNames() {
		if i > 0 {
			s.sb.WriteByte(',')
		}
		writeQuoted(&s.sb, name)
		s.sb.WriteByte(':')

		target := c.Properties[name].Type
		nested, ok := s.store.Get(target)
		switch {
		case !ok:
			s.sb.WriteString(samplePlaceholder(target))
		case s.visiting[target]:
			s.sb.WriteString("{}")
		default:
			s.write(nested)
		}
	}
	s.sb.WriteByte('}')
}

// samplePlaceholder returns the literal standing in for a primitive.
func samplePlaceholder(id typeid.Identity) string {
	switch id.Category() {
	case typeid.CategoryString:
		return `"string"`
	case typeid.CategoryBoolean:
		return "false"
	case typeid.CategoryInteger:
		return "0"
	case typeid.CategoryDecimal:
		return "0.0"
	default:
		return "{}"
	}
}

// resolve prefers the stored representation of rep's identity. Collection
// elements captured while their type was still under construction are
// leaves that carry only the identity.
func resolve(store *model.Store, rep model.Representation) model.Representation {
	if rep == nil {
		return nil
	}
	if stored, ok := store.Get(rep.Identity()); ok {
		return stored
	}
	return rep
}
