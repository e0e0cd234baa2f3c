// Package model defines the type graph shared by the analyzers and renderers.
//
// A [Representation] is one of three variants:
//
//   - [*Concrete]: an object shape, a map of property name to [Property]
//   - [*Collection]: a homogeneous collection wrapping one element representation
//   - [*Enum]: a set of literal value names
//
// Representations never own each other across type boundaries. A property
// refers to its target by [typeid.Identity], and the [Store] maps identities
// to representations. Self-referential and mutually recursive types are
// therefore plain data: a Concrete whose property points back at its own
// identity is a finite value.
//
// The Store is written by the analyzers during one analysis run and read by
// the renderers afterwards. It is not safe for concurrent mutation.
package model
