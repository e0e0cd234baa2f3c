// Package shapeerrors provides structured error types for the restshape library.
//
// Import path: github.com/erraggy/restshape/shapeerrors
//
// Type-graph analysis itself never fails: unresolvable types degrade to opaque
// placeholders. Errors only arise at the edges of the library, when metadata
// tables, resource descriptions, JSON samples, or configuration are loaded.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON decoding failures and structural issues in inputs
//   - [ConfigError]: Invalid configuration or option values
//   - [LookupError]: A class missing from, or declared twice in, a metadata table
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrNotFound], [ErrDuplicate]: Match a [LookupError]
//
// # Usage Examples
//
//	table, err := classmeta.LoadFile("classes.yaml")
//	if errors.Is(err, shapeerrors.ErrParse) {
//	    // Handle malformed metadata
//	}
//
//	var parseErr *shapeerrors.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("Failed to read %s\n", parseErr.Path)
//	}
package shapeerrors
