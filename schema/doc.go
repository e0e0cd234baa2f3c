// Package schema projects a representation store into a flat, collision-free
// namespace of named definitions connected by $ref links.
//
// A Builder hands out references on demand. Referencing a type that has
// properties registers its definition the first time, assigning the name
// before the properties are built so that cyclic graphs terminate:
//
//	b, err := schema.New(store)
//	if err != nil {
//		return err
//	}
//	root := b.Ref(id)          // {"$ref":"#/definitions/Model"}
//	doc := b.Document()        // {"definitions":{"Model":{...}}}
//
// Base names come from the simple type name. A second distinct identity with
// the same base name gets "_2", then "_3", and so on. Synthetic identities
// share the base name "JsonObject".
//
// Naming can be changed with WithNaming, WithNameTemplate or WithNameFunc; the
// numeric collision suffix is always applied after the chosen strategy.
package schema
