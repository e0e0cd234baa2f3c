package model

import (
	"slices"

	"github.com/erraggy/restshape/typeid"
)

// Store is the arena of representations produced during one analysis run.
// Entries are never removed or replaced once inserted.
type Store struct {
	entries map[typeid.Identity]Representation
	order   []typeid.Identity
	seq     typeid.Sequence

	// mergeable entries grouped by structural hash
	index map[uint64][]typeid.Identity
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		entries: make(map[typeid.Identity]Representation),
		index:   make(map[uint64][]typeid.Identity),
	}
}

// Get returns the representation stored under id.
func (s *Store) Get(id typeid.Identity) (Representation, bool) {
	rep, ok := s.entries[id]
	return rep, ok
}

// Contains reports whether id has a representation.
func (s *Store) Contains(id typeid.Identity) bool {
	_, ok := s.entries[id]
	return ok
}

// Put inserts rep under its identity unless an entry already exists.
// It returns the representation retained by the store and whether rep was
// inserted.
func (s *Store) Put(rep Representation) (Representation, bool) {
	id := rep.Identity()
	if existing, ok := s.entries[id]; ok {
		return existing, false
	}
	s.entries[id] = rep
	s.order = append(s.order, id)
	if mergeable(rep) {
		key := structuralHash(rep)
		s.index[key] = append(s.index[key], id)
	}
	return rep, true
}

// GetOrInsert returns the entry for id, calling build to create it when
// absent. build must return a representation carrying id.
func (s *Store) GetOrInsert(id typeid.Identity, build func() Representation) Representation {
	if existing, ok := s.entries[id]; ok {
		return existing
	}
	rep, _ := s.Put(build())
	return rep
}

// Len returns the number of stored representations.
func (s *Store) Len() int {
	return len(s.entries)
}

// Identities returns the stored identities in insertion order.
func (s *Store) Identities() []typeid.Identity {
	out := make([]typeid.Identity, len(s.order))
	copy(out, s.order)
	return out
}

// All returns the stored representations in insertion order.
func (s *Store) All() []Representation {
	out := make([]Representation, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id])
	}
	return out
}

// NewSynthetic allocates a synthetic identity from the store's sequence.
func (s *Store) NewSynthetic() typeid.Identity {
	return s.seq.Next()
}

// FindEqual returns the identity of a stored representation with the same
// content as rep. Synthetic entries of every variant match; named entries
// match only when they are Concretes with at least one property.
func (s *Store) FindEqual(rep Representation) (typeid.Identity, bool) {
	for _, id := range s.index[structuralHash(rep)] {
		candidate := s.entries[id]
		if sameVariantContent(candidate, rep) {
			return id, true
		}
	}
	return typeid.Identity{}, false
}

func mergeable(rep Representation) bool {
	if rep.Identity().IsSynthetic() {
		return true
	}
	c, ok := rep.(*Concrete)
	return ok && len(c.Properties) > 0
}

// sameVariantContent compares content regardless of the identities the two
// representations carry.
func sameVariantContent(a, b Representation) bool {
	switch left := a.(type) {
	case *Concrete:
		right, ok := b.(*Concrete)
		return ok && left.ContentEquals(right.Properties)
	case *Collection:
		right, ok := b.(*Collection)
		return ok && left.ContentEquals(right.Element)
	case *Enum:
		right, ok := b.(*Enum)
		return ok && slices.Equal(left.SortedValues(), right.SortedValues())
	default:
		return false
	}
}
