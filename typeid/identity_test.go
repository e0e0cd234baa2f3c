package typeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamedEquality(t *testing.T) {
	a := Named("Lcom/example/Model;")
	b := Named("Lcom/example/Model;")
	c := Named("Lcom/example/Other;")

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, KindNamed, a.Kind())
	assert.False(t, a.IsSynthetic())

	m := map[Identity]int{a: 1}
	assert.Equal(t, 1, m[b])
}

func TestSequence(t *testing.T) {
	var seq Sequence
	first := seq.Next()
	second := seq.Next()

	assert.True(t, first.IsSynthetic())
	assert.Equal(t, KindSynthetic, first.Kind())
	assert.NotEqual(t, first, second)
	assert.Equal(t, "Ljavax/json/JsonObject;", first.Signature())
	assert.Equal(t, SyntheticName, first.SimpleName())
	assert.Equal(t, "JsonObject#1", first.String())
	assert.Equal(t, "JsonObject#2", second.String())
	assert.Equal(t, uint64(2), seq.Allocated())
	assert.Equal(t, CategoryObject, first.Category())

	var other Sequence
	assert.Equal(t, first, other.Next(), "numbering is scoped to a sequence")
}

func TestZeroIdentity(t *testing.T) {
	var id Identity
	assert.Equal(t, Object, id.Signature())
	assert.Equal(t, "Object", id.SimpleName())
	assert.Equal(t, CategoryObject, id.Category())
}

func TestIdentityCategory(t *testing.T) {
	tests := []struct {
		signature string
		want      Category
	}{
		{String, CategoryString},
		{PrimitiveBoolean, CategoryBoolean},
		{Boolean, CategoryBoolean},
		{PrimitiveInt, CategoryInteger},
		{Long, CategoryInteger},
		{PrimitiveDouble, CategoryDecimal},
		{BigDecimal, CategoryDecimal},
		{Date, CategoryTimestamp},
		{Object, CategoryObject},
		{"Lcom/example/Model;", CategoryObject},
	}
	for _, tt := range tests {
		t.Run(tt.signature, func(t *testing.T) {
			assert.Equal(t, tt.want, Named(tt.signature).Category())
		})
	}
}
