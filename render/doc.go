// Package render turns representations into JSON text.
//
// [Sample] renders a representative instance: objects with keys in
// lexicographic order, single-element arrays for collections, and fixed
// placeholders for primitives ("string", 0, 0.0, false). An enumeration
// renders as its sorted values joined by "|", which reads as "one of".
// Cyclic references render as {} instead of recursing.
//
// [Definition] renders a property table: each property becomes a descriptor
// such as {"type":"Integer","description":"identifier"}. Nested
// non-primitive properties render as {} because the schema package flattens
// them into named references.
//
// For the Model scenario
//
//	class Model { int id; String name; }  // docs: {id: "identifier"}
//
// the sample is {"id":0,"name":"string"} and the definition is
// {"id":{"type":"Integer","description":"identifier"},"name":{"type":"String"}}.
//
// Renderers read a finished store and never modify it. One renderer may be
// shared between goroutines; each Render call holds the renderer's lock.
package render
