// Package resource binds request and response bodies of HTTP resource
// methods to type representations.
//
// A Resources description lists methods with their bodies. A body names
// either a declared type, which is analyzed against class metadata, or a
// sample payload, whose shape is inferred. Interpret writes the resulting
// identity into each Body and Summarize renders the outcome.
package resource
