// Package restshape infers the JSON shape of REST request and response
// bodies without running the program that produces them.
//
// Two sources feed one type graph held in a model.Store:
//
//   - analyzer.Static walks declared class metadata (a classmeta.Table)
//   - analyzer.Dynamic walks sampled JSON values
//
// Structurally equal shapes collapse to one node, and self-referential
// types are represented without infinite construction. The graph is then
// rendered by the render package as a representative sample payload or a
// flat definition table, and by the schema package as $ref-linked schema
// definitions with deterministic name collision handling.
//
// # Quick Start
//
// Infer the shape of a JSON sample:
//
//	store := model.NewStore()
//	id, err := analyzer.NewDynamic(store).AnalyzeJSON([]byte(`{"id":1,"tags":["a"]}`))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(render.NewSample(store).RenderIdentity(id))
//
// Analyze a declared type from class metadata:
//
//	table, err := classmeta.LoadFile("classes.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	store := model.NewStore()
//	id := analyzer.NewStatic(store, table).Analyze("com.example.Model", nil)
//	b, _ := schema.New(store)
//	ref := b.Ref(id)
//	doc, _ := b.Document().JSON(true)
//
// The resource package ties both analyzers to a description of HTTP methods
// and their bodies, and the restshape command exposes everything on the
// command line and as an MCP server.
package restshape
