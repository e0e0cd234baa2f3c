// Package classmeta holds compiled-type metadata for static analysis.
//
// A [Table] is built ahead of time, typically by a bytecode scanner, and
// describes each class by its fields, accessor methods, supertypes, type
// parameters, and annotations. The static analyzer consumes it as plain data
// and never loads classes.
//
// Tables can be assembled in code with [NewTable] and [Table.Add], or decoded
// from YAML or JSON with [Parse] and [LoadFile]:
//
//	classes:
//	  - name: com.example.Model
//	    access: FIELD
//	    fields:
//	      - name: id
//	        type: I
//	        required: true
//	      - name: name
//	        type: Ljava/lang/String;
//
// Class names and member types accept JVM descriptors ("Lcom/example/Model;")
// as well as dotted names ("com.example.Model") and primitive keywords ("int").
// Generic member types must be written as descriptors.
package classmeta
