package model

import (
	"maps"
	"slices"

	"github.com/erraggy/restshape/typeid"
)

// Property is the edge metadata attached to a named property of a Concrete
// representation.
type Property struct {
	// Type is the identity of the property's declared type.
	Type typeid.Identity
	// Required is set only when the property is known to be required.
	Required *bool
	// Description is the documentation attached to the property, if any.
	Description string
	// Length is the declared maximum length, if any.
	Length *int
}

// NewProperty returns a Property for t. Required is recorded only when true.
func NewProperty(t typeid.Identity, required bool, description string) Property {
	p := Property{Type: t, Description: description}
	if required {
		p.Required = &required
	}
	return p
}

// IsRequired reports whether the property was marked required.
func (p Property) IsRequired() bool {
	return p.Required != nil && *p.Required
}

// Representation is the closed set of type representations.
type Representation interface {
	// Identity returns the identity the representation is stored under.
	Identity() typeid.Identity
	representation()
}

// Concrete is an object-shaped type. An empty property map denotes a
// primitive or opaque leaf.
type Concrete struct {
	ID         typeid.Identity
	Properties map[string]Property
}

// NewConcrete returns a Concrete representation. A nil map is treated as empty.
func NewConcrete(id typeid.Identity, properties map[string]Property) *Concrete {
	if properties == nil {
		properties = map[string]Property{}
	}
	return &Concrete{ID: id, Properties: properties}
}

// Identity implements Representation.
func (c *Concrete) Identity() typeid.Identity { return c.ID }

func (*Concrete) representation() {}

// IsLeaf reports whether the representation has no properties.
func (c *Concrete) IsLeaf() bool {
	return len(c.Properties) == 0
}

// PropertyNames returns the property names in lexicographic order.
func (c *Concrete) PropertyNames() []string {
	return slices.Sorted(maps.Keys(c.Properties))
}

// ContentEquals reports whether properties has the same names mapping to the
// same identities. Descriptions and required flags are ignored.
func (c *Concrete) ContentEquals(properties map[string]Property) bool {
	if len(c.Properties) != len(properties) {
		return false
	}
	for name, p := range c.Properties {
		other, ok := properties[name]
		if !ok || other.Type != p.Type {
			return false
		}
	}
	return true
}

// Collection is a homogeneous collection of Element.
type Collection struct {
	ID      typeid.Identity
	Element Representation
}

// NewCollection returns a Collection representation.
func NewCollection(id typeid.Identity, element Representation) *Collection {
	return &Collection{ID: id, Element: element}
}

// Identity implements Representation.
func (c *Collection) Identity() typeid.Identity { return c.ID }

func (*Collection) representation() {}

// ContentEquals reports whether element describes the same element type.
// Synthetic elements are compared by content, named ones by identity.
func (c *Collection) ContentEquals(element Representation) bool {
	return contentEqual(c.Element, element)
}

// Enum is a set of literal names. No values means an unconstrained string.
type Enum struct {
	ID     typeid.Identity
	Values []string
}

// NewEnum returns an Enum representation.
func NewEnum(id typeid.Identity, values ...string) *Enum {
	return &Enum{ID: id, Values: values}
}

// Identity implements Representation.
func (e *Enum) Identity() typeid.Identity { return e.ID }

func (*Enum) representation() {}

// SortedValues returns a sorted copy of the values.
func (e *Enum) SortedValues() []string {
	return slices.Sorted(slices.Values(e.Values))
}

// contentEqual compares two representations structurally when both are
// synthetic and by identity otherwise.
func contentEqual(a, b Representation) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Identity() == b.Identity() {
		return true
	}
	if !a.Identity().IsSynthetic() || !b.Identity().IsSynthetic() {
		return false
	}

	switch left := a.(type) {
	case *Concrete:
		right, ok := b.(*Concrete)
		return ok && left.ContentEquals(right.Properties)
	case *Collection:
		right, ok := b.(*Collection)
		return ok && contentEqual(left.Element, right.Element)
	case *Enum:
		right, ok := b.(*Enum)
		return ok && slices.Equal(left.SortedValues(), right.SortedValues())
	default:
		return false
	}
}
