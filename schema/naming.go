package schema

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/restshape/typeid"
)

// NamingStrategy selects how a base definition name is derived from a type.
type NamingStrategy int

const (
	// NamingSimple uses the simple type name: "Model".
	// This is the default.
	NamingSimple NamingStrategy = iota

	// NamingQualified prefixes the PascalCase package: "ComExampleModel".
	NamingQualified

	// NamingFullPath joins the package and type with underscores:
	// "com_example_Model".
	NamingFullPath

	// NamingGeneric appends type arguments: "PairOfLongAndString".
	// Types without arguments use the simple name.
	NamingGeneric
)

// String returns the strategy name.
func (s NamingStrategy) String() string {
	switch s {
	case NamingSimple:
		return "simple"
	case NamingQualified:
		return "qualified"
	case NamingFullPath:
		return "fullpath"
	case NamingGeneric:
		return "generic"
	default:
		return fmt.Sprintf("NamingStrategy(%d)", int(s))
	}
}

// ParseNamingStrategy parses a strategy name as accepted by String.
func ParseNamingStrategy(s string) (NamingStrategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "simple":
		return NamingSimple, true
	case "qualified":
		return NamingQualified, true
	case "fullpath", "full-path", "full_path":
		return NamingFullPath, true
	case "generic":
		return NamingGeneric, true
	}
	return NamingSimple, false
}

// NameContext describes a type for template and function based naming.
type NameContext struct {
	// Type is the simple type name: "Pair".
	Type string

	// TypeSanitized includes type arguments joined by underscores:
	// "Pair_Long_String".
	TypeSanitized string

	// Package is the dotted package: "com.example".
	Package string

	// PackageSanitized replaces dots with underscores: "com_example".
	PackageSanitized string

	// Signature is the raw type signature.
	Signature string

	// Readable is the Java-style name: "com.example.Pair<java.lang.Long, java.lang.String>".
	Readable string

	// IsSynthetic is true for shapes inferred from sample payloads.
	IsSynthetic bool

	// IsGeneric is true when the type has type arguments.
	IsGeneric bool

	// GenericParams holds the simple names of the type arguments.
	GenericParams []string
}

// NameFunc returns the base definition name for a type.
type NameFunc func(ctx NameContext) string

type namer struct {
	strategy  NamingStrategy
	tmpl      *template.Template
	fn        NameFunc
	synthetic string
}

// baseName applies, in priority order, the custom function, the template
// and the strategy. Synthetic identities always use the synthetic name.
func (n *namer) baseName(id typeid.Identity) string {
	if id.IsSynthetic() {
		return n.synthetic
	}
	ctx := newNameContext(id)
	var name string
	switch {
	case n.fn != nil:
		name = n.fn(ctx)
	case n.tmpl != nil:
		var sb strings.Builder
		if err := n.tmpl.Execute(&sb, ctx); err == nil {
			name = sb.String()
		}
	default:
		name = n.byStrategy(ctx)
	}
	name = sanitizeName(name)
	if name == "" {
		// fall back so every definition gets a usable name
		name = sanitizeName(ctx.Type)
	}
	return name
}

func (n *namer) byStrategy(ctx NameContext) string {
	switch n.strategy {
	case NamingQualified:
		return toPascalCase(ctx.Package) + ctx.Type
	case NamingFullPath:
		if ctx.PackageSanitized == "" {
			return ctx.Type
		}
		return ctx.PackageSanitized + "_" + ctx.Type
	case NamingGeneric:
		if !ctx.IsGeneric {
			return ctx.Type
		}
		params := make([]string, len(ctx.GenericParams))
		for i, p := range ctx.GenericParams {
			params[i] = toPascalCase(p)
		}
		return ctx.Type + "Of" + strings.Join(params, "And")
	default:
		return ctx.Type
	}
}

func newNameContext(id typeid.Identity) NameContext {
	sig := id.Signature()
	ctx := NameContext{
		Type:        id.SimpleName(),
		Package:     typeid.PackageName(sig),
		Signature:   sig,
		Readable:    typeid.ToReadable(sig),
		IsSynthetic: id.IsSynthetic(),
	}
	ctx.PackageSanitized = strings.ReplaceAll(ctx.Package, ".", "_")

	args := typeid.TypeArguments(sig)
	ctx.IsGeneric = len(args) > 0
	parts := []string{ctx.Type}
	for _, arg := range args {
		simple := strings.TrimSuffix(typeid.SimpleName(arg), "[]")
		if typeid.IsArray(arg) {
			simple += "Array"
		}
		ctx.GenericParams = append(ctx.GenericParams, simple)
		parts = append(parts, simple)
	}
	ctx.TypeSanitized = sanitizeName(strings.Join(parts, "_"))
	return ctx
}

// sanitizeName replaces characters that are awkward in reference paths.
func sanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '[', ']', ',', ' ', '/', '$', ';', '#':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.Trim(name, "_")
}

func toPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

func toCamelCase(s string) string {
	pascal := toPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		case r == '-' || r == '.' || r == '/':
			result.WriteRune('_')
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

func toKebabCase(s string) string {
	return strings.ReplaceAll(toSnakeCase(s), "_", "-")
}

func templateFuncs() template.FuncMap {
	titleCaser := cases.Title(language.English)

	return template.FuncMap{
		"pascal":     toPascalCase,
		"camel":      toCamelCase,
		"snake":      toSnakeCase,
		"kebab":      toKebabCase,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"title":      titleCaser.String,
		"sanitize":   sanitizeName,
		"trimPrefix": strings.TrimPrefix,
		"trimSuffix": strings.TrimSuffix,
		"replace":    strings.ReplaceAll,
		"join": func(sep string, parts ...string) string {
			return strings.Join(parts, sep)
		},
	}
}

// parseNameTemplate parses tmpl and runs it once against a sample context so
// that execution errors surface at construction time.
func parseNameTemplate(tmpl string) (*template.Template, error) {
	t, err := template.New("definitionName").Funcs(templateFuncs()).Parse(tmpl)
	if err != nil {
		return nil, err
	}

	sample := NameContext{
		Type:             "Sample",
		TypeSanitized:    "Sample_String",
		Package:          "com.example",
		PackageSanitized: "com_example",
		Signature:        "Lcom/example/Sample<Ljava/lang/String;>;",
		Readable:         "com.example.Sample<java.lang.String>",
		IsGeneric:        true,
		GenericParams:    []string{"String"},
	}
	var sb strings.Builder
	if err := t.Execute(&sb, sample); err != nil {
		return nil, err
	}
	return t, nil
}
