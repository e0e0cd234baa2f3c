package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/restshape/typeid"
)

func TestStorePutNeverReplaces(t *testing.T) {
	s := NewStore()
	id := typeid.Named("Lcom/example/Model;")

	first := NewConcrete(id, map[string]Property{"id": {Type: intID}})
	got, inserted := s.Put(first)
	assert.True(t, inserted)
	assert.Same(t, first, got)

	second := NewConcrete(id, nil)
	got, inserted = s.Put(second)
	assert.False(t, inserted)
	assert.Same(t, first, got)

	stored, ok := s.Get(id)
	require.True(t, ok)
	assert.Same(t, first, stored)
	assert.Equal(t, 1, s.Len())
}

func TestStoreGetOrInsert(t *testing.T) {
	s := NewStore()
	id := typeid.Named("Lcom/example/Model;")
	calls := 0
	build := func() Representation {
		calls++
		return NewConcrete(id, nil)
	}

	a := s.GetOrInsert(id, build)
	b := s.GetOrInsert(id, build)
	assert.Same(t, a, b)
	assert.Equal(t, 1, calls)
	assert.True(t, s.Contains(id))
	assert.False(t, s.Contains(stringID))
}

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore()
	ids := []typeid.Identity{
		typeid.Named("Lcom/example/B;"),
		typeid.Named("Lcom/example/A;"),
		s.NewSynthetic(),
		typeid.Named("Lcom/example/C;"),
	}
	for _, id := range ids {
		s.Put(NewConcrete(id, nil))
	}
	assert.Equal(t, ids, s.Identities())

	all := s.All()
	require.Len(t, all, len(ids))
	for i, rep := range all {
		assert.Equal(t, ids[i], rep.Identity())
	}
}

func TestStoreNewSynthetic(t *testing.T) {
	s := NewStore()
	a := s.NewSynthetic()
	b := s.NewSynthetic()
	assert.True(t, a.IsSynthetic())
	assert.NotEqual(t, a, b)
	assert.Equal(t, 0, s.Len())
}

func TestStoreFindEqual(t *testing.T) {
	s := NewStore()
	props := map[string]Property{"key": {Type: stringID}, "number": {Type: intID}}

	// named leaves without properties never match an empty object
	s.Put(NewConcrete(typeid.Named(typeid.Object), nil))
	_, ok := s.FindEqual(NewConcrete(typeid.Identity{}, nil))
	assert.False(t, ok)

	existing := s.NewSynthetic()
	s.Put(NewConcrete(existing, props))
	s.Put(NewConcrete(typeid.Named("Lcom/example/Model;"), props))

	found, ok := s.FindEqual(NewConcrete(typeid.Identity{}, map[string]Property{
		"number": {Type: intID},
		"key":    {Type: stringID},
	}))
	require.True(t, ok)
	assert.Equal(t, existing, found)

	_, ok = s.FindEqual(NewConcrete(typeid.Identity{}, map[string]Property{"key": {Type: stringID}}))
	assert.False(t, ok)
}

func TestStoreFindEqualNamed(t *testing.T) {
	s := NewStore()
	named := typeid.Named("Lcom/example/Model;")
	s.Put(NewConcrete(named, map[string]Property{"key": NewProperty(stringID, true, "Key.")}))

	found, ok := s.FindEqual(NewConcrete(typeid.Identity{}, map[string]Property{"key": {Type: stringID}}))
	require.True(t, ok)
	assert.Equal(t, named, found)
}

func TestStoreFindEqualCollection(t *testing.T) {
	s := NewStore()
	elementProps := map[string]Property{"key": {Type: stringID}}

	element := NewConcrete(s.NewSynthetic(), elementProps)
	s.Put(element)
	list := NewCollection(s.NewSynthetic(), element)
	s.Put(list)

	// a distinct synthetic element with equal content matches
	other := NewConcrete(s.NewSynthetic(), map[string]Property{"key": {Type: stringID}})
	found, ok := s.FindEqual(NewCollection(typeid.Identity{}, other))
	require.True(t, ok)
	assert.Equal(t, list.Identity(), found)

	_, ok = s.FindEqual(NewCollection(typeid.Identity{}, NewConcrete(stringID, nil)))
	assert.False(t, ok)
}

func TestStructuralHash(t *testing.T) {
	a := NewConcrete(objectID, map[string]Property{"a": {Type: stringID}, "b": {Type: intID}})
	b := NewConcrete(stringID, map[string]Property{"b": {Type: intID}, "a": NewProperty(stringID, true, "x")})
	assert.Equal(t, structuralHash(a), structuralHash(b))

	c := NewConcrete(objectID, map[string]Property{"a": {Type: intID}, "b": {Type: intID}})
	assert.NotEqual(t, structuralHash(a), structuralHash(c))

	assert.NotEqual(t, structuralHash(NewEnum(objectID, "A")), structuralHash(NewConcrete(objectID, nil)))
	assert.Equal(t, structuralHash(NewEnum(objectID, "B", "A")), structuralHash(NewEnum(stringID, "A", "B")))
}
