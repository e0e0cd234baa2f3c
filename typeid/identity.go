package typeid

import "strconv"

// SyntheticName is the simple name used for identities without a declared class.
const SyntheticName = "JsonObject"

// Kind distinguishes named from synthetic identities.
type Kind uint8

const (
	// KindNamed identifies a type by its signature.
	KindNamed Kind = iota
	// KindSynthetic identifies a shape that has no declared class.
	KindSynthetic
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindSynthetic {
		return "synthetic"
	}
	return "named"
}

// Identity is the canonical key naming a type.
// The zero value is a named identity with an empty signature and is treated
// like java.lang.Object wherever a type is classified.
type Identity struct {
	signature string
	seq       uint64
}

// Named returns the identity for a type signature.
func Named(signature string) Identity {
	return Identity{signature: signature}
}

// Kind reports whether the identity is named or synthetic.
func (id Identity) Kind() Kind {
	if id.seq != 0 {
		return KindSynthetic
	}
	return KindNamed
}

// IsSynthetic reports whether the identity was allocated from a Sequence.
func (id Identity) IsSynthetic() bool {
	return id.seq != 0
}

// Signature returns the type signature. Synthetic identities report the
// generic JSON signature.
func (id Identity) Signature() string {
	if id.signature == "" {
		return Object
	}
	return id.signature
}

// Sequence returns the allocation number of a synthetic identity, or 0.
func (id Identity) Sequence() uint64 {
	return id.seq
}

// SimpleName returns the unqualified type name used as a base for schema names.
func (id Identity) SimpleName() string {
	if id.IsSynthetic() {
		return SyntheticName
	}
	return SimpleName(id.Signature())
}

// Category classifies the identity's signature.
func (id Identity) Category() Category {
	if id.IsSynthetic() {
		return CategoryObject
	}
	return Classify(id.Signature())
}

// String returns a debug representation of the identity.
func (id Identity) String() string {
	if id.IsSynthetic() {
		return SyntheticName + "#" + strconv.FormatUint(id.seq, 10)
	}
	return id.Signature()
}

// Sequence allocates synthetic identities.
// A Sequence belongs to one analysis run; its zero value is ready to use.
type Sequence struct {
	last uint64
}

// Next returns a new synthetic identity distinct from every previous one.
func (s *Sequence) Next() Identity {
	s.last++
	return Identity{signature: JSON, seq: s.last}
}

// Allocated returns the number of identities handed out so far.
func (s *Sequence) Allocated() uint64 {
	return s.last
}
