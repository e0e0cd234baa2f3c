package analyzer

import "github.com/erraggy/restshape/typeid"

// typeCache records which normalized signatures have been analyzed in this
// run. A signature is marked before its properties are explored, which is
// what terminates recursive types. It is kept apart from the store because
// a marked type may still be under construction.
type typeCache struct {
	seen       map[string]typeid.Identity
	inProgress map[string]bool
}

func newTypeCache() *typeCache {
	return &typeCache{
		seen:       make(map[string]typeid.Identity),
		inProgress: make(map[string]bool),
	}
}

// get returns the identity recorded for signature.
func (c *typeCache) get(signature string) (typeid.Identity, bool) {
	id, ok := c.seen[signature]
	return id, ok
}

// mark records signature as analyzed and in progress.
func (c *typeCache) mark(signature string, id typeid.Identity) {
	c.seen[signature] = id
	c.inProgress[signature] = true
}

// done clears the in-progress flag once the representation is stored.
func (c *typeCache) done(signature string) {
	delete(c.inProgress, signature)
}

// isInProgress reports whether signature is still under construction.
func (c *typeCache) isInProgress(signature string) bool {
	return c.inProgress[signature]
}

// classContext carries the per-class state of one property collection:
// field names hidden by an ignore annotation also hide the matching getter.
type classContext struct {
	ignored map[string]bool
}

func newClassContext() *classContext {
	return &classContext{ignored: make(map[string]bool)}
}

func (c *classContext) ignore(name string) {
	c.ignored[name] = true
}

func (c *classContext) isIgnored(name string) bool {
	return c.ignored[name]
}
