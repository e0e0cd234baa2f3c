package typeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleName(t *testing.T) {
	tests := []struct {
		signature string
		want      string
	}{
		{"Lcom/example/Model;", "Model"},
		{"Ljava/util/concurrent/locks/Lock;", "Lock"},
		{"Lcom/example/Outer$Inner;", "Inner"},
		{"Lcom/example/Page<Lcom/example/Item;>;", "Page"},
		{"[Lcom/example/Item;", "Item[]"},
		{"I", "int"},
		{"TA;", "A"},
		{"Model;", "Model;"},
	}
	for _, tt := range tests {
		t.Run(tt.signature, func(t *testing.T) {
			assert.Equal(t, tt.want, SimpleName(tt.signature))
		})
	}
}

func TestTypeArguments(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		want      []string
	}{
		{"not generic", "Lcom/example/Model;", nil},
		{"single", "Ljava/util/List<Ljava/lang/String;>;", []string{String}},
		{"two", "Lcom/example/Pair<Ljava/lang/Long;Ljava/lang/String;>;", []string{Long, String}},
		{"nested", "Ljava/util/Map<Ljava/lang/String;Ljava/util/List<TA;>;>;", []string{String, "Ljava/util/List<TA;>;"}},
		{"primitive array", "Lcom/example/Box<[I>;", []string{"[I"}},
		{"wildcards", "Ljava/util/List<+Lcom/example/Item;>;", []string{"Lcom/example/Item;"}},
		{"unbounded", "Ljava/util/List<*>;", []string{Object}},
		{"malformed", "Ljava/util/List<Q>;", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeArguments(tt.signature))
		})
	}
}

func TestErasureAndClassName(t *testing.T) {
	sig := "Lcom/example/Page<Lcom/example/Item;>;"
	assert.Equal(t, "Lcom/example/Page;", Erasure(sig))
	assert.Equal(t, "com/example/Page", ClassName(sig))
	assert.Equal(t, "com.example", PackageName(sig))
	assert.Equal(t, "I", Erasure("I"))
	assert.Equal(t, "", ClassName("I"))
	assert.Equal(t, "", PackageName("LModel;"))
}

func TestTypeVariables(t *testing.T) {
	assert.True(t, IsTypeVariable("TA;"))
	assert.Equal(t, "A", TypeVariableName("TA;"))
	assert.False(t, IsTypeVariable("Lcom/A;"))
	assert.False(t, IsTypeVariable("T;"))

	bindings := map[string]string{"A": Long, "B": String}
	assert.Equal(t, Long, Substitute("TA;", bindings))
	assert.Equal(t, Object, Substitute("TC;", bindings))
	assert.Equal(t, "Ljava/util/List<Ljava/lang/Long;>;", Substitute("Ljava/util/List<TA;>;", bindings))
	assert.Equal(t, "[Ljava/lang/String;", Substitute("[TB;", bindings))
	assert.Equal(t, String, Substitute(String, bindings))
}

func TestIsPlatform(t *testing.T) {
	assert.True(t, IsPlatform("I"))
	assert.True(t, IsPlatform(String))
	assert.True(t, IsPlatform("Ljavax/ws/rs/core/Response;"))
	assert.False(t, IsPlatform("Lcom/example/Model;"))
}

func TestIsWellFormed(t *testing.T) {
	assert.True(t, IsWellFormed("Lcom/example/Model;"))
	assert.True(t, IsWellFormed("Ljava/util/List<Ljava/lang/String;>;"))
	assert.True(t, IsWellFormed("[[I"))
	assert.False(t, IsWellFormed(""))
	assert.False(t, IsWellFormed("com.example.Model"))
	assert.False(t, IsWellFormed("Lcom/example/Model"))
}

func TestToReadable(t *testing.T) {
	assert.Equal(t, "java.util.List<java.lang.String>", ToReadable("Ljava/util/List<Ljava/lang/String;>;"))
	assert.Equal(t, "java.util.Map<java.lang.String, int[]>", ToReadable("Ljava/util/Map<Ljava/lang/String;[I>;"))
	assert.Equal(t, "boolean", ToReadable("Z"))
	assert.Equal(t, "not a signature", ToReadable("not a signature"))
}
