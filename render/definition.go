package render

import (
	"strings"
	"sync"

	"github.com/erraggy/restshape/model"
	"github.com/erraggy/restshape/typeid"
)

// Definition renders property descriptor tables.
type Definition struct {
	mu    sync.Mutex
	store *model.Store
	sb    strings.Builder
}

// NewDefinition returns a definition renderer resolving collection elements
// in store.
func NewDefinition(store *model.Store) *Definition {
	return &Definition{store: store}
}

// Render returns the definition of rep.
func (d *Definition) Render(rep model.Representation) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.sb.Reset()
	d.write(rep)
	return d.sb.String()
}

// RenderIdentity renders the stored representation of id, or its type name
// when the store has none.
func (d *Definition) RenderIdentity(id typeid.Identity) string {
	if rep, ok := d.store.Get(id); ok {
		return d.Render(rep)
	}
	return definitionType(id)
}

func (d *Definition) write(rep model.Representation) {
	switch r := rep.(type) {
	case *model.Concrete:
		d.writeConcrete(r)
	case *model.Collection:
		d.sb.WriteByte('[')
		d.write(resolve(d.store, r.Element))
		d.sb.WriteByte(']')
	case *model.Enum:
		values := r.SortedValues()
		if len(values) == 0 {
			d.sb.WriteString(`"String"`)
			return
		}
		writeQuoted(&d.sb, "String. Allowed values : "+strings.Join(values, "|"))
	default:
		d.sb.WriteString("{}")
	}
}

func (d *Definition) writeConcrete(c *model.Concrete) {
	if c.IsLeaf() {
		d.sb.WriteString(definitionType(c.ID))
		return
	}

	d.sb.WriteByte('{')
	for i, name := range c.PropertyNames() {
		if i > 0 {
			d.sb.WriteByte(',')
		}
		prop := c.Properties[name]
		writeQuoted(&d.sb, name)
		d.sb.WriteString(`:{"type":`)
		d.sb.WriteString(definitionType(prop.Type))
		if prop.Description != "" {
			d.sb.WriteString(`,"description":`)
			writeQuoted(&d.sb, strings.ReplaceAll(prop.Description, "\n", ""))
		}
		if prop.Required != nil {
			d.sb.WriteString(`,"required":`)
			if *prop.Required {
				d.sb.WriteString("true")
			} else {
				d.sb.WriteString("false")
			}
		}
		d.sb.WriteByte('}')
	}
	d.sb.WriteByte('}')
}

// definitionType returns the quoted type name of a primitive, or {}.
func definitionType(id typeid.Identity) string {
	switch id.Category() {
	case typeid.CategoryString:
		return `"String"`
	case typeid.CategoryBoolean:
		return `"Boolean"`
	case typeid.CategoryInteger:
		return `"Integer"`
	case typeid.CategoryDecimal:
		return `"Decimal"`
	case typeid.CategoryTimestamp:
		return `"Timestamp"`
	default:
		return "{}"
	}
}
