package classmeta

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/restshape/typeid"
)

// AccessType selects which members of a class are bound to properties.
type AccessType string

const (
	// AccessUnset means the class declares no access type of its own.
	AccessUnset AccessType = ""
	// AccessField binds every non-static, non-transient field.
	AccessField AccessType = "FIELD"
	// AccessProperty binds every getter.
	AccessProperty AccessType = "PROPERTY"
	// AccessPublicMember binds public fields and public getters.
	AccessPublicMember AccessType = "PUBLIC_MEMBER"
	// AccessNone binds only explicitly annotated members.
	AccessNone AccessType = "NONE"
)

// IsValid reports whether a is one of the known access types.
func (a AccessType) IsValid() bool {
	switch a {
	case AccessUnset, AccessField, AccessProperty, AccessPublicMember, AccessNone:
		return true
	}
	return false
}

// Recognized annotations. Matching uses the simple name, so qualified
// spellings such as "com.fasterxml.jackson.annotation.JsonIgnore" also match.
const (
	JSONIgnore     = "JsonIgnore"
	JSONIgnoreType = "JsonIgnoreType"
	XMLTransient   = "XmlTransient"
	XMLElement     = "XmlElement"
)

// Annotations is a list of annotation names.
type Annotations []string

// Has reports whether the list contains the annotation with the given
// simple name.
func (a Annotations) Has(name string) bool {
	return slices.ContainsFunc(a, func(candidate string) bool {
		return simpleAnnotationName(candidate) == name
	})
}

func simpleAnnotationName(name string) string {
	name = strings.TrimPrefix(name, "@")
	name = strings.TrimSuffix(name, ";")
	if idx := strings.LastIndexAny(name, "./$"); idx != -1 {
		name = name[idx+1:]
	}
	return name
}

// Class describes one compiled type.
type Class struct {
	// Name is the class descriptor, e.g. "Lcom/example/Model;".
	Name string `yaml:"name" json:"name"`
	// Superclass is the generic superclass signature, empty for none.
	Superclass string `yaml:"superclass,omitempty" json:"superclass,omitempty"`
	// Interfaces are the generic signatures of implemented interfaces.
	Interfaces []string `yaml:"interfaces,omitempty" json:"interfaces,omitempty"`
	// TypeParameters are the declared type variable names, in order.
	TypeParameters []string `yaml:"typeParameters,omitempty" json:"typeParameters,omitempty"`
	// Enum marks an enumeration type.
	Enum bool `yaml:"enum,omitempty" json:"enum,omitempty"`
	// EnumConstants are the constant names of an enumeration.
	EnumConstants []string `yaml:"enumConstants,omitempty" json:"enumConstants,omitempty"`
	// Access is the declared access type, if any.
	Access AccessType `yaml:"access,omitempty" json:"access,omitempty"`

	Annotations Annotations `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	Fields      []Field     `yaml:"fields,omitempty" json:"fields,omitempty"`
	Methods     []Method    `yaml:"methods,omitempty" json:"methods,omitempty"`
}

// IsEnum reports whether the class is an enumeration.
func (c *Class) IsEnum() bool {
	return c.Enum || len(c.EnumConstants) > 0
}

// Supertypes returns the interfaces followed by the superclass.
func (c *Class) Supertypes() []string {
	out := make([]string, 0, len(c.Interfaces)+1)
	out = append(out, c.Interfaces...)
	if c.Superclass != "" {
		out = append(out, c.Superclass)
	}
	return out
}

// Bindings maps the class type parameters to the type arguments of a
// parameterized use of the class. Missing arguments bind to Object.
func (c *Class) Bindings(signature string) map[string]string {
	if len(c.TypeParameters) == 0 {
		return nil
	}
	args := typeid.TypeArguments(signature)
	bindings := make(map[string]string, len(c.TypeParameters))
	for i, param := range c.TypeParameters {
		if i < len(args) {
			bindings[param] = args[i]
		} else {
			bindings[param] = typeid.Object
		}
	}
	return bindings
}

// Field describes a declared field.
type Field struct {
	Name string `yaml:"name" json:"name"`
	// Type is the generic field signature.
	Type        string      `yaml:"type" json:"type"`
	Public      bool        `yaml:"public,omitempty" json:"public,omitempty"`
	Static      bool        `yaml:"static,omitempty" json:"static,omitempty"`
	Transient   bool        `yaml:"transient,omitempty" json:"transient,omitempty"`
	Synthetic   bool        `yaml:"synthetic,omitempty" json:"synthetic,omitempty"`
	Annotations Annotations `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	// Required is the precomputed result of the validation rules.
	Required bool `yaml:"required,omitempty" json:"required,omitempty"`
	// Length is the declared maximum length, 0 when unbounded.
	Length int `yaml:"length,omitempty" json:"length,omitempty"`
}

// Method describes a declared method.
type Method struct {
	Name string `yaml:"name" json:"name"`
	// ReturnType is the generic return signature; "V" for void.
	ReturnType  string      `yaml:"returnType" json:"returnType"`
	Params      int         `yaml:"params,omitempty" json:"params,omitempty"`
	Public      bool        `yaml:"public,omitempty" json:"public,omitempty"`
	Static      bool        `yaml:"static,omitempty" json:"static,omitempty"`
	Synthetic   bool        `yaml:"synthetic,omitempty" json:"synthetic,omitempty"`
	Annotations Annotations `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	Required    bool        `yaml:"required,omitempty" json:"required,omitempty"`
	Length      int         `yaml:"length,omitempty" json:"length,omitempty"`
}

// PropertyName returns the property bound by a getter name: "getFirstName"
// yields "firstName" and "isActive" yields "active". Other names yield "".
func PropertyName(method string) string {
	var rest string
	switch {
	case strings.HasPrefix(method, "get") && len(method) > 3:
		rest = method[3:]
	case strings.HasPrefix(method, "is") && len(method) > 2:
		rest = method[2:]
	default:
		return ""
	}
	r, size := utf8.DecodeRuneInString(rest)
	return string(unicode.ToLower(r)) + rest[size:]
}

var readableKeywords = map[string]string{
	"boolean": typeid.PrimitiveBoolean,
	"byte":    typeid.PrimitiveByte,
	"char":    typeid.PrimitiveChar,
	"short":   typeid.PrimitiveShort,
	"int":     typeid.PrimitiveInt,
	"long":    typeid.PrimitiveLong,
	"float":   typeid.PrimitiveFloat,
	"double":  typeid.PrimitiveDouble,
	"void":    typeid.Void,
}

// Descriptor converts a dotted class name or primitive keyword to a JVM
// descriptor. Descriptors and unrecognized input are returned unchanged.
func Descriptor(name string) string {
	name = strings.TrimSpace(name)
	if prim, ok := readableKeywords[name]; ok {
		return prim
	}
	if name == "" || typeid.IsWellFormed(name) {
		return name
	}
	if strings.HasSuffix(name, "[]") {
		return "[" + Descriptor(strings.TrimSuffix(name, "[]"))
	}
	if generic := genericDescriptor(name); generic != "" {
		return generic
	}
	if strings.ContainsAny(name, "<>; ") {
		return name
	}
	return "L" + strings.ReplaceAll(name, ".", "/") + ";"
}

// genericDescriptor converts "java.util.Map<java.lang.String, ? extends a.B>"
// to a parameterized signature. It returns "" for anything else.
func genericDescriptor(name string) string {
	open := strings.IndexByte(name, '<')
	if open <= 0 || !strings.HasSuffix(name, ">") || strings.ContainsAny(name, ";/") {
		return ""
	}
	args := splitTypeArguments(name[open+1 : len(name)-1])
	if len(args) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("L")
	sb.WriteString(strings.ReplaceAll(strings.TrimSpace(name[:open]), ".", "/"))
	sb.WriteByte('<')
	for _, arg := range args {
		switch {
		case arg == "?":
			sb.WriteByte('*')
		case strings.HasPrefix(arg, "? extends "):
			sb.WriteByte('+')
			sb.WriteString(Descriptor(strings.TrimPrefix(arg, "? extends ")))
		case strings.HasPrefix(arg, "? super "):
			sb.WriteByte('-')
			sb.WriteString(Descriptor(strings.TrimPrefix(arg, "? super ")))
		default:
			d := Descriptor(arg)
			if !typeid.IsWellFormed(d) {
				return ""
			}
			sb.WriteString(d)
		}
	}
	sb.WriteString(">;")
	return sb.String()
}

// splitTypeArguments splits on commas outside nested angle brackets.
func splitTypeArguments(s string) []string {
	var args []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil
	}
	last := strings.TrimSpace(s[start:])
	if last == "" {
		return nil
	}
	return append(args, last)
}
