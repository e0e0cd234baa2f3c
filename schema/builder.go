package schema

import (
	"maps"
	"strconv"
	"sync"

	"github.com/erraggy/restshape/model"
	"github.com/erraggy/restshape/shapeerrors"
	"github.com/erraggy/restshape/typeid"
)

// Builder allocates definition names and builds definitions from a store.
// It is safe for concurrent use; the store must not be modified while a
// Builder reads from it.
type Builder struct {
	mu    sync.Mutex
	store *model.Store
	cfg   *config
	namer *namer

	names       map[typeid.Identity]string
	owners      map[string]typeid.Identity
	definitions map[string]*Schema
	order       []string
}

// New returns a Builder reading from store.
// It fails only when a name template does not parse or execute.
func New(store *model.Store, opts ...Option) (*Builder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	n := &namer{
		strategy:  cfg.strategy,
		fn:        cfg.nameFunc,
		synthetic: cfg.syntheticName,
	}
	if cfg.nameTemplate != "" {
		tmpl, err := parseNameTemplate(cfg.nameTemplate)
		if err != nil {
			return nil, &shapeerrors.ConfigError{
				Option:  "name template",
				Value:   cfg.nameTemplate,
				Message: "invalid definition name template",
				Cause:   err,
			}
		}
		n.tmpl = tmpl
	}
	if store == nil {
		store = model.NewStore()
	}

	return &Builder{
		store:       store,
		cfg:         cfg,
		namer:       n,
		names:       make(map[typeid.Identity]string),
		owners:      make(map[string]typeid.Identity),
		definitions: make(map[string]*Schema),
	}, nil
}

// Ref returns the schema referring to id. Types with properties become a
// reference to a named definition, which is built on first use. Collections
// and enums are inlined; everything else maps to a primitive descriptor.
func (b *Builder) Ref(id typeid.Identity) *Schema {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ref(id)
}

// Name returns the definition name assigned to id, if any.
func (b *Builder) Name(id typeid.Identity) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	name, ok := b.names[id]
	return name, ok
}

// Names returns the definition names in allocation order.
func (b *Builder) Names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Definitions returns a copy of the name to definition map built so far.
func (b *Builder) Definitions() map[string]*Schema {
	b.mu.Lock()
	defer b.mu.Unlock()
	return maps.Clone(b.definitions)
}

// Document wraps the definitions built so far.
func (b *Builder) Document() *Document {
	return &Document{Definitions: b.Definitions()}
}

func (b *Builder) ref(id typeid.Identity) *Schema {
	rep, ok := b.store.Get(id)
	if !ok {
		return primitive(id)
	}
	return b.schemaFor(rep)
}

func (b *Builder) schemaFor(rep model.Representation) *Schema {
	switch r := rep.(type) {
	case *model.Concrete:
		if r.IsLeaf() {
			if stored, ok := b.store.Get(r.ID); ok && stored != rep {
				return b.schemaFor(stored)
			}
			return primitive(r.ID)
		}
		return &Schema{Ref: b.cfg.refPrefix + b.define(r)}
	case *model.Collection:
		return &Schema{Type: "array", Items: b.element(r.Element)}
	case *model.Enum:
		return &Schema{Type: "string", Enum: r.SortedValues()}
	default:
		return &Schema{Type: "object"}
	}
}

// element resolves a collection element through the store, since elements
// captured while their type was being analyzed are leaf placeholders.
func (b *Builder) element(rep model.Representation) *Schema {
	if rep == nil {
		return &Schema{Type: "object"}
	}
	if stored, ok := b.store.Get(rep.Identity()); ok {
		return b.schemaFor(stored)
	}
	return b.schemaFor(rep)
}

// define registers the definition of c and returns its name. The name is
// reserved before properties are visited, so a property referring back to c
// resolves to the same name.
func (b *Builder) define(c *model.Concrete) string {
	if name, ok := b.names[c.ID]; ok {
		return name
	}

	name := b.allocate(c.ID)
	def := &Schema{Properties: make(map[string]*Schema, len(c.Properties))}
	b.definitions[name] = def

	for _, prop := range c.PropertyNames() {
		p := c.Properties[prop]
		s := b.ref(p.Type)
		if !s.IsRef() {
			s.Description = p.Description
			s.Required = p.IsRequired()
			if p.Length != nil {
				s.MaxLength = *p.Length
			}
		}
		def.Properties[prop] = s
	}
	return name
}

func (b *Builder) allocate(id typeid.Identity) string {
	base := b.namer.baseName(id)
	name := base
	for i := 2; ; i++ {
		if _, taken := b.owners[name]; !taken {
			break
		}
		name = base + "_" + strconv.Itoa(i)
	}
	if name != base {
		b.cfg.logger.Debug("definition name collision",
			"base", base, "name", name, "type", id.String())
	}

	b.names[id] = name
	b.owners[name] = id
	b.order = append(b.order, name)
	return name
}

// primitive maps a type without a stored representation to an inline
// descriptor.
func primitive(id typeid.Identity) *Schema {
	switch id.Category() {
	case typeid.CategoryString:
		return &Schema{Type: "string"}
	case typeid.CategoryBoolean:
		return &Schema{Type: "boolean"}
	case typeid.CategoryInteger:
		return &Schema{Type: "integer"}
	case typeid.CategoryDecimal:
		return &Schema{Type: "number"}
	case typeid.CategoryTimestamp:
		return &Schema{Type: "string", Format: "date-time"}
	default:
		return &Schema{Type: "object"}
	}
}
