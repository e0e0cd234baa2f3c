package typeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabularyCollections(t *testing.T) {
	v := DefaultVocabulary()

	assert.True(t, v.IsCollection("Ljava/util/List<Ljava/lang/String;>;"))
	assert.True(t, v.IsCollection("Ljava/util/Set;"))
	assert.True(t, v.IsCollection("[Lcom/example/Item;"))
	assert.False(t, v.IsCollection("Lcom/example/Item;"))
	assert.False(t, v.IsCollection("Ljava/util/Map<Ljava/lang/String;Ljava/lang/String;>;"))

	assert.Equal(t, String, ElementType("Ljava/util/List<Ljava/lang/String;>;"))
	assert.Equal(t, "Lcom/example/Item;", ElementType("[Lcom/example/Item;"))
	assert.Equal(t, Object, ElementType("Ljava/util/List;"))
}

func TestVocabularyNormalize(t *testing.T) {
	v := DefaultVocabulary()

	assert.Equal(t, "Lcom/example/Model;", v.Normalize("Lcom/example/Model;"))
	assert.Equal(t, "Lcom/example/Model;", v.Normalize("Ljavax/ws/rs/core/GenericEntity<Lcom/example/Model;>;"))
	assert.Equal(t, "Ljava/util/List<Lcom/example/Model;>;",
		v.Normalize("Ljava/util/concurrent/CompletionStage<Ljava/util/Optional<Ljava/util/List<Lcom/example/Model;>;>;>;"))
	assert.Equal(t, Object, v.Normalize("Ljava/util/Optional;"))

	custom := Vocabulary{Envelopes: []string{"Lcom/example/Envelope;"}}
	assert.Equal(t, String, custom.Normalize("Lcom/example/Envelope<Ljava/lang/String;>;"))
	assert.False(t, custom.IsCollection("Ljava/util/List;"))
}
