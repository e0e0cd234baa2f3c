package analyzer

import (
	"maps"
	"slices"

	"github.com/erraggy/restshape/classmeta"
	"github.com/erraggy/restshape/model"
	"github.com/erraggy/restshape/typeid"
)

// deniedGetters are getter-shaped methods that never bind a property.
var deniedGetters = []string{"getClass"}

// Static derives representations from class metadata.
type Static struct {
	store *model.Store
	table *classmeta.Table
	cfg   *config
	cache *typeCache
}

// NewStatic returns a static analyzer writing into store. A nil table
// treats every class as unknown.
func NewStatic(store *model.Store, table *classmeta.Table, opts ...Option) *Static {
	if table == nil {
		table = classmeta.NewTable()
	}
	return &Static{
		store: store,
		table: table,
		cfg:   newConfig(opts),
		cache: newTypeCache(),
	}
}

// Store returns the store the analyzer writes into.
func (s *Static) Store() *model.Store {
	return s.store
}

// Analyze analyzes typeName and everything reachable from it and returns the
// root identity. docs maps property names of the root type to descriptions.
//
// Platform types that are not collections yield their identity without a
// store entry. Malformed type names yield an opaque identity and are not
// walked.
func (s *Static) Analyze(typeName string, docs map[string]string) typeid.Identity {
	signature := s.cfg.vocabulary.Normalize(classmeta.Descriptor(typeName))
	if typeid.IsTypeVariable(signature) {
		signature = typeid.Object
	}
	if id, ok := s.cache.get(signature); ok {
		s.cfg.logger.Debug("type already analyzed", "type", signature, "inProgress", s.cache.isInProgress(signature))
		return id
	}

	id := typeid.Named(signature)
	if !typeid.IsWellFormed(signature) {
		s.cfg.logger.Warn("malformed type name, treating as opaque", "type", typeName)
		s.cache.mark(signature, id)
		s.cache.done(signature)
		return id
	}

	collection := s.isCollection(signature)
	if !collection && typeid.IsPlatform(signature) {
		s.cfg.logger.Debug("skipping platform type", "type", signature)
		return id
	}

	s.cache.mark(signature, id)
	s.cfg.logger.Debug("analyzing type", "type", typeid.ToReadable(signature))

	var rep model.Representation
	if collection {
		rep = model.NewCollection(id, s.element(s.collectionElement(signature, nil), docs))
	} else {
		rep = s.represent(id, signature, docs)
	}
	s.store.Put(rep)
	s.cache.done(signature)
	return id
}

// represent builds the representation of a non-collection type.
func (s *Static) represent(id typeid.Identity, signature string, docs map[string]string) model.Representation {
	class, ok := s.table.Lookup(signature)
	if !ok {
		s.cfg.logger.Debug("class not in metadata table", "type", signature)
		return model.NewConcrete(id, nil)
	}
	if class.IsEnum() {
		return model.NewEnum(id, class.EnumConstants...)
	}
	return model.NewConcrete(id, s.properties(class, signature, docs, make(map[string]bool)))
}

// element analyzes a collection element and returns its representation.
// An element still under construction, or one without a store entry, is
// represented by a leaf carrying its identity.
func (s *Static) element(signature string, docs map[string]string) model.Representation {
	id := s.Analyze(signature, docs)
	if rep, ok := s.store.Get(id); ok {
		return rep
	}
	return model.NewConcrete(id, nil)
}

// isCollection reports whether signature is a collection, either directly or
// through a supertype recorded in the table.
func (s *Static) isCollection(signature string) bool {
	if s.cfg.vocabulary.IsCollection(signature) {
		return true
	}
	return slices.ContainsFunc(s.cfg.vocabulary.Collections, func(collection string) bool {
		return s.table.IsSubtype(signature, collection)
	})
}

// collectionElement returns the element type of a collection signature,
// resolving type arguments through the supertype chain of collection
// subclasses.
func (s *Static) collectionElement(signature string, visiting map[string]bool) string {
	if s.cfg.vocabulary.IsCollection(signature) {
		return typeid.ElementType(signature)
	}
	class, ok := s.table.Lookup(signature)
	if !ok {
		return typeid.Object
	}
	if visiting == nil {
		visiting = make(map[string]bool)
	}
	if visiting[class.Name] {
		return typeid.Object
	}
	visiting[class.Name] = true

	bindings := class.Bindings(signature)
	for _, super := range class.Supertypes() {
		resolved := typeid.Substitute(super, bindings)
		if s.isCollection(resolved) {
			return s.collectionElement(resolved, visiting)
		}
	}
	return typeid.Object
}

// properties collects the property map of class, ancestors first so that
// the class's own members win.
func (s *Static) properties(class *classmeta.Class, signature string, docs map[string]string, visiting map[string]bool) map[string]model.Property {
	if visiting[class.Name] {
		return nil
	}
	visiting[class.Name] = true
	defer delete(visiting, class.Name)

	bindings := class.Bindings(signature)
	access := s.table.AccessType(class)

	// fields first: an ignored field hides its getter
	ctx := newClassContext()
	var members []Member
	for i := range class.Fields {
		if s.fieldRelevant(ctx, class, &class.Fields[i], access) {
			members = append(members, Member{Owner: class, Field: &class.Fields[i]})
		}
	}
	for i := range class.Methods {
		if s.getterRelevant(ctx, class, &class.Methods[i], access) {
			members = append(members, Member{Owner: class, Method: &class.Methods[i]})
		}
	}

	props := make(map[string]model.Property)
	for _, super := range class.Supertypes() {
		resolved := typeid.Substitute(super, bindings)
		if typeid.IsPlatform(resolved) {
			continue
		}
		superClass, ok := s.table.Lookup(resolved)
		if !ok {
			continue
		}
		maps.Copy(props, s.properties(superClass, resolved, docs, visiting))
	}

	for _, m := range members {
		propType := s.Analyze(typeid.Substitute(m.declaredType(), bindings), nil)
		name := m.Name()
		prop := model.NewProperty(propType, s.cfg.required(m), docs[name])
		if n := m.length(); n > 0 {
			prop.Length = &n
		}
		props[name] = prop
	}
	return props
}

func (s *Static) fieldRelevant(ctx *classContext, class *classmeta.Class, f *classmeta.Field, access classmeta.AccessType) bool {
	if f.Synthetic {
		return false
	}
	if f.Annotations.Has(classmeta.JSONIgnore) || class.Annotations.Has(classmeta.JSONIgnoreType) || s.typeIgnored(f.Type) {
		ctx.ignore(f.Name)
		return false
	}
	if f.Annotations.Has(classmeta.XMLElement) {
		return true
	}

	switch access {
	case classmeta.AccessField:
		return !f.Transient && !f.Static && !f.Annotations.Has(classmeta.XMLTransient)
	case classmeta.AccessPublicMember:
		return f.Public && !f.Static && !f.Annotations.Has(classmeta.XMLTransient)
	default:
		return false
	}
}

func (s *Static) getterRelevant(ctx *classContext, class *classmeta.Class, m *classmeta.Method, access classmeta.AccessType) bool {
	if m.Synthetic || !isGetter(m) {
		return false
	}
	if ctx.isIgnored(classmeta.PropertyName(m.Name)) ||
		m.Annotations.Has(classmeta.JSONIgnore) ||
		class.Annotations.Has(classmeta.JSONIgnoreType) ||
		s.typeIgnored(m.ReturnType) {
		return false
	}
	if m.Annotations.Has(classmeta.XMLElement) {
		return true
	}

	switch access {
	case classmeta.AccessProperty:
		return !m.Annotations.Has(classmeta.XMLTransient)
	case classmeta.AccessPublicMember:
		return m.Public && !m.Annotations.Has(classmeta.XMLTransient)
	default:
		return false
	}
}

// typeIgnored reports whether the declared type is marked as ignored.
func (s *Static) typeIgnored(signature string) bool {
	class, ok := s.table.Lookup(signature)
	return ok && class.Annotations.Has(classmeta.JSONIgnoreType)
}

func isGetter(m *classmeta.Method) bool {
	if m.Static || m.Params != 0 || slices.Contains(deniedGetters, m.Name) {
		return false
	}
	switch {
	case len(m.Name) > 3 && m.Name[:3] == "get":
		return m.ReturnType != typeid.Void
	case len(m.Name) > 2 && m.Name[:2] == "is":
		return m.ReturnType == typeid.PrimitiveBoolean
	default:
		return false
	}
}
