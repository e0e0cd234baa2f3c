package model

import (
	"hash"
	"hash/fnv"
	"strconv"

	"github.com/erraggy/restshape/typeid"
)

// structuralHash computes a hash over the parts of a representation that
// decide content equivalence. Equal content always hashes equal; collisions
// are possible, so callers confirm with contentEqual.
func structuralHash(rep Representation) uint64 {
	h := fnv.New64a()
	hashRepresentation(h, rep)
	return h.Sum64()
}

func hashRepresentation(h hash.Hash64, rep Representation) {
	switch r := rep.(type) {
	case *Concrete:
		writeString(h, "concrete{")
		for _, name := range r.PropertyNames() {
			writeString(h, name)
			writeString(h, "=")
			hashIdentity(h, r.Properties[name].Type)
			writeString(h, ";")
		}
		writeString(h, "}")
	case *Collection:
		writeString(h, "collection[")
		if r.Element == nil {
			writeString(h, "nil")
		} else if r.Element.Identity().IsSynthetic() {
			// synthetic elements compare by content
			hashRepresentation(h, r.Element)
		} else {
			hashIdentity(h, r.Element.Identity())
		}
		writeString(h, "]")
	case *Enum:
		writeString(h, "enum(")
		for _, v := range r.SortedValues() {
			writeString(h, v)
			writeString(h, "|")
		}
		writeString(h, ")")
	default:
		writeString(h, "nil")
	}
}

func hashIdentity(h hash.Hash64, id typeid.Identity) {
	writeString(h, id.Signature())
	writeString(h, "#")
	writeString(h, strconv.FormatUint(id.Sequence(), 10))
}

func writeString(h hash.Hash64, s string) {
	_, _ = h.Write([]byte(s))
}
