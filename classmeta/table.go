package classmeta

import (
	"github.com/erraggy/restshape/shapeerrors"
	"github.com/erraggy/restshape/typeid"
)

// Table indexes classes by their erased descriptor.
type Table struct {
	classes map[string]*Class
	order   []string
}

// NewTable returns a table holding classes. Duplicate names keep the first
// declaration.
func NewTable(classes ...*Class) *Table {
	t := &Table{classes: make(map[string]*Class, len(classes))}
	for _, c := range classes {
		_ = t.Add(c)
	}
	return t
}

// Add registers c after normalizing its name and member types to
// descriptors. It returns a *shapeerrors.LookupError if a class with the
// same erased name is already present.
func (t *Table) Add(c *Class) error {
	normalize(c)
	key := typeid.Erasure(c.Name)
	if _, exists := t.classes[key]; exists {
		return &shapeerrors.LookupError{Kind: "class", Name: key, IsDuplicate: true}
	}
	t.classes[key] = c
	t.order = append(t.order, key)
	return nil
}

// Lookup returns the class for a possibly parameterized signature.
func (t *Table) Lookup(signature string) (*Class, bool) {
	if t == nil {
		return nil, false
	}
	c, ok := t.classes[typeid.Erasure(signature)]
	return c, ok
}

// MustLookup is like Lookup but returns a *shapeerrors.LookupError when the
// class is unknown.
func (t *Table) MustLookup(signature string) (*Class, error) {
	if c, ok := t.Lookup(signature); ok {
		return c, nil
	}
	return nil, &shapeerrors.LookupError{Kind: "class", Name: typeid.Erasure(signature)}
}

// Len returns the number of classes.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Classes returns the classes in registration order.
func (t *Table) Classes() []*Class {
	if t == nil {
		return nil
	}
	out := make([]*Class, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.classes[key])
	}
	return out
}

// IsSubtype reports whether signature is target or transitively extends or
// implements it, following the supertypes recorded in the table.
func (t *Table) IsSubtype(signature, target string) bool {
	target = typeid.Erasure(target)
	seen := make(map[string]bool)
	var walk func(string) bool
	walk = func(sig string) bool {
		erased := typeid.Erasure(sig)
		if erased == target {
			return true
		}
		if seen[erased] {
			return false
		}
		seen[erased] = true
		c, ok := t.Lookup(erased)
		if !ok {
			return false
		}
		for _, super := range c.Supertypes() {
			if walk(super) {
				return true
			}
		}
		return false
	}
	return walk(signature)
}

// AccessType returns the access type declared by the class or its nearest
// ancestor in the superclass chain, or AccessPublicMember when none declares
// one.
func (t *Table) AccessType(c *Class) AccessType {
	seen := make(map[string]bool)
	for c != nil && !seen[c.Name] {
		if c.Access != AccessUnset {
			return c.Access
		}
		seen[c.Name] = true
		if c.Superclass == "" {
			break
		}
		c, _ = t.Lookup(c.Superclass)
	}
	return AccessPublicMember
}

func normalize(c *Class) {
	c.Name = Descriptor(c.Name)
	c.Superclass = Descriptor(c.Superclass)
	for i := range c.Interfaces {
		c.Interfaces[i] = Descriptor(c.Interfaces[i])
	}
	for i := range c.Fields {
		c.Fields[i].Type = Descriptor(c.Fields[i].Type)
	}
	for i := range c.Methods {
		if c.Methods[i].ReturnType == "" {
			c.Methods[i].ReturnType = typeid.Void
		}
		c.Methods[i].ReturnType = Descriptor(c.Methods[i].ReturnType)
	}
}
