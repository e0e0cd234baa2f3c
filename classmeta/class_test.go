package classmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/restshape/typeid"
)

func TestDescriptor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"com.example.Model", "Lcom/example/Model;"},
		{"com.example.Outer$Inner", "Lcom/example/Outer$Inner;"},
		{"Lcom/example/Model;", "Lcom/example/Model;"},
		{"Ljava/util/List<Lcom/example/Model;>;", "Ljava/util/List<Lcom/example/Model;>;"},
		{"int", "I"},
		{"boolean", "Z"},
		{"I", "I"},
		{"TA;", "TA;"},
		{"java.lang.String[]", "[Ljava/lang/String;"},
		{"", ""},
		{"java.util.List<com.example.Model>", "Ljava/util/List<Lcom/example/Model;>;"},
		{"java.util.Map<java.lang.String, java.util.List<int[]>>", "Ljava/util/Map<Ljava/lang/String;Ljava/util/List<[I>;>;"},
		{"java.util.List<?>", "Ljava/util/List<*>;"},
		{"java.util.List<? extends com.example.Model>", "Ljava/util/List<+Lcom/example/Model;>;"},
		{"java.util.List<com.example.Model", "java.util.List<com.example.Model"},
		{"java.util.List<>", "java.util.List<>"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Descriptor(tt.in))
		})
	}
}

func TestPropertyName(t *testing.T) {
	assert.Equal(t, "firstName", PropertyName("getFirstName"))
	assert.Equal(t, "active", PropertyName("isActive"))
	assert.Equal(t, "x", PropertyName("getX"))
	assert.Equal(t, "état", PropertyName("getÉtat"))
	assert.Equal(t, "ölig", PropertyName("isÖlig"))
	assert.Equal(t, "", PropertyName("get"))
	assert.Equal(t, "", PropertyName("is"))
	assert.Equal(t, "", PropertyName("setName"))
}

func TestAnnotationsHas(t *testing.T) {
	a := Annotations{"com.fasterxml.jackson.annotation.JsonIgnore", "@XmlElement", "Ljavax/xml/bind/annotation/XmlTransient;"}
	assert.True(t, a.Has(JSONIgnore))
	assert.True(t, a.Has(XMLElement))
	assert.True(t, a.Has(XMLTransient))
	assert.False(t, a.Has(JSONIgnoreType))
	assert.False(t, Annotations(nil).Has(JSONIgnore))
}

func TestClassBindings(t *testing.T) {
	c := &Class{Name: "Lcom/example/GenericFields;", TypeParameters: []string{"A", "B"}}

	got := c.Bindings("Lcom/example/GenericFields<Ljava/lang/Long;Ljava/lang/String;>;")
	assert.Equal(t, map[string]string{"A": typeid.Long, "B": typeid.String}, got)

	got = c.Bindings("Lcom/example/GenericFields;")
	assert.Equal(t, map[string]string{"A": typeid.Object, "B": typeid.Object}, got)

	assert.Nil(t, (&Class{}).Bindings("Lcom/example/Plain;"))
}

func TestClassSupertypesAndEnum(t *testing.T) {
	c := &Class{
		Name:       "Lcom/example/Sub;",
		Superclass: "Lcom/example/Base;",
		Interfaces: []string{"Lcom/example/Named;"},
	}
	assert.Equal(t, []string{"Lcom/example/Named;", "Lcom/example/Base;"}, c.Supertypes())
	assert.False(t, c.IsEnum())

	assert.True(t, (&Class{Enum: true}).IsEnum())
	assert.True(t, (&Class{EnumConstants: []string{"A"}}).IsEnum())
}

func TestAccessTypeIsValid(t *testing.T) {
	for _, a := range []AccessType{AccessUnset, AccessField, AccessProperty, AccessPublicMember, AccessNone} {
		assert.True(t, a.IsValid(), a)
	}
	assert.False(t, AccessType("PRIVATE").IsValid())
}
