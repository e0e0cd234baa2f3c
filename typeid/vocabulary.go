package typeid

import "slices"

// Vocabulary lists the wrapper types that trigger unwrapping.
// Entries are erased class signatures such as "Ljava/util/List;".
type Vocabulary struct {
	// Collections render as arrays of their first type argument.
	Collections []string
	// Envelopes are replaced by their first type argument before analysis.
	Envelopes []string
}

// DefaultVocabulary returns the collection and envelope types recognized
// out of the box.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Collections: []string{
			"Ljava/lang/Iterable;",
			"Ljava/util/Collection;",
			"Ljava/util/List;",
			"Ljava/util/ArrayList;",
			"Ljava/util/LinkedList;",
			"Ljava/util/Set;",
			"Ljava/util/HashSet;",
			"Ljava/util/LinkedHashSet;",
			"Ljava/util/SortedSet;",
			"Ljava/util/TreeSet;",
			"Ljava/util/Queue;",
			"Ljava/util/Deque;",
			"Ljava/util/ArrayDeque;",
			"Ljava/util/stream/Stream;",
			"Ljavax/json/JsonArray;",
		},
		Envelopes: []string{
			"Ljavax/ws/rs/core/GenericEntity;",
			"Ljava/util/Optional;",
			"Ljava/util/concurrent/CompletionStage;",
			"Ljava/util/concurrent/CompletableFuture;",
			"Ljava/util/concurrent/Future;",
			"Ljava/util/function/Supplier;",
		},
	}
}

// IsCollection reports whether signature is an array or one of the
// vocabulary's collection types.
func (v Vocabulary) IsCollection(signature string) bool {
	if IsArray(signature) {
		return true
	}
	return slices.Contains(v.Collections, Erasure(signature))
}

// IsEnvelope reports whether signature is one of the vocabulary's envelopes.
func (v Vocabulary) IsEnvelope(signature string) bool {
	return slices.Contains(v.Envelopes, Erasure(signature))
}

// ElementType returns the element signature of a collection or array.
// Raw collections contain Object.
func ElementType(signature string) string {
	if IsArray(signature) {
		return signature[1:]
	}
	if args := TypeArguments(signature); len(args) > 0 {
		return args[0]
	}
	return Object
}

// Normalize unwraps envelope types until a payload type remains.
// A raw envelope unwraps to Object.
func (v Vocabulary) Normalize(signature string) string {
	for v.IsEnvelope(signature) {
		args := TypeArguments(signature)
		if len(args) == 0 {
			return Object
		}
		signature = args[0]
	}
	return signature
}
