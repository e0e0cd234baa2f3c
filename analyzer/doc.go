// Package analyzer populates a [model.Store] from the two structural sources.
//
// [Static] walks compiled-type metadata from a [classmeta.Table]. Given a type
// descriptor and a property description lookup, it produces the identity of
// the root type and stores a representation for every non-platform type
// reachable from it. A type is marked as analyzed before its properties are
// explored, so self-referential and mutually recursive classes terminate.
//
// [Dynamic] walks sampled JSON values. Scalars map to fixed primitive
// identities and never create store entries. Objects and arrays receive
// synthetic identities, and a new shape whose content equals an existing
// entry reuses that entry's identity. An object shaped like a class the
// [Static] analyzer already stored takes the class identity.
//
// Both analyzers are single-threaded and belong to one analysis run:
//
//	store := model.NewStore()
//	static := analyzer.NewStatic(store, table)
//	id := static.Analyze("Lcom/example/Model;", map[string]string{"id": "identifier"})
//
//	dynamic := analyzer.NewDynamic(store)
//	sample, err := dynamic.AnalyzeJSON([]byte(`{"key":"value"}`))
package analyzer
