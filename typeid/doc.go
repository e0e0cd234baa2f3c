// Package typeid names the types that flow through the restshape type graph.
//
// An [Identity] is either named, derived from a JVM-style type signature such
// as "Lcom/example/Model;" or "Ljava/util/List<Lcom/example/Item;>;", or
// synthetic, allocated from a per-run [Sequence] for shapes that have no
// declared class (for example an ad hoc JSON object seen in a sample).
//
// Identities are comparable values and are used as map keys by the
// representation store. Two named identities are equal exactly when their
// signatures are equal. Synthetic identities are unique per allocation.
//
// # Descriptor Grammar
//
// The package also understands the small subset of the JVM signature grammar
// needed for documentation purposes:
//
//	Lpkg/Class;                 class type
//	Lpkg/Generic<Lpkg/Arg;>;    parameterized type
//	[Lpkg/Class;                array type
//	TA;                         type variable
//	Z B C S I J F D V           primitive types
//
// Descriptors that do not fit the grammar are never rejected. They are treated
// as opaque object types.
//
// # Vocabulary
//
// A [Vocabulary] lists the collection types whose instances render as arrays
// and the envelope types (GenericEntity, Optional, CompletionStage, ...) that
// are unwrapped to their payload before analysis.
package typeid
