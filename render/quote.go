package render

import (
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// writeQuoted appends s as a JSON string literal. Invalid UTF-8 is replaced
// with U+FFFD.
func writeQuoted(sb *strings.Builder, s string) {
	quoted, _ := jsontext.AppendQuote(nil, s)
	sb.Write(quoted)
}
