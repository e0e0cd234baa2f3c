package typeid

import "strings"

// Well-known signatures.
const (
	Object     = "Ljava/lang/Object;"
	String     = "Ljava/lang/String;"
	Character  = "Ljava/lang/Character;"
	Boolean    = "Ljava/lang/Boolean;"
	Integer    = "Ljava/lang/Integer;"
	Long       = "Ljava/lang/Long;"
	Short      = "Ljava/lang/Short;"
	Byte       = "Ljava/lang/Byte;"
	BigInteger = "Ljava/math/BigInteger;"
	Double     = "Ljava/lang/Double;"
	Float      = "Ljava/lang/Float;"
	BigDecimal = "Ljava/math/BigDecimal;"
	Date       = "Ljava/util/Date;"
	JSON       = "Ljavax/json/JsonObject;"

	PrimitiveBoolean = "Z"
	PrimitiveByte    = "B"
	PrimitiveChar    = "C"
	PrimitiveShort   = "S"
	PrimitiveInt     = "I"
	PrimitiveLong    = "J"
	PrimitiveFloat   = "F"
	PrimitiveDouble  = "D"
	Void             = "V"
)

// Category is the coarse JSON kind of a signature.
type Category uint8

const (
	// CategoryObject covers every type without a primitive JSON mapping.
	CategoryObject Category = iota
	CategoryString
	CategoryBoolean
	CategoryInteger
	CategoryDecimal
	CategoryTimestamp
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryString:
		return "string"
	case CategoryBoolean:
		return "boolean"
	case CategoryInteger:
		return "integer"
	case CategoryDecimal:
		return "decimal"
	case CategoryTimestamp:
		return "timestamp"
	default:
		return "object"
	}
}

var categories = map[string]Category{
	String:           CategoryString,
	Character:        CategoryString,
	PrimitiveChar:    CategoryString,
	Boolean:          CategoryBoolean,
	PrimitiveBoolean: CategoryBoolean,
	Integer:          CategoryInteger,
	Long:             CategoryInteger,
	Short:            CategoryInteger,
	Byte:             CategoryInteger,
	BigInteger:       CategoryInteger,
	PrimitiveInt:     CategoryInteger,
	PrimitiveLong:    CategoryInteger,
	PrimitiveShort:   CategoryInteger,
	PrimitiveByte:    CategoryInteger,
	Double:           CategoryDecimal,
	Float:            CategoryDecimal,
	BigDecimal:       CategoryDecimal,
	PrimitiveDouble:  CategoryDecimal,
	PrimitiveFloat:   CategoryDecimal,
	Date:             CategoryTimestamp,

	"Ljava/time/Instant;":        CategoryTimestamp,
	"Ljava/time/LocalDate;":      CategoryTimestamp,
	"Ljava/time/LocalDateTime;":  CategoryTimestamp,
	"Ljava/time/OffsetDateTime;": CategoryTimestamp,
	"Ljava/time/ZonedDateTime;":  CategoryTimestamp,
}

// Classify returns the category of a signature.
func Classify(signature string) Category {
	return categories[signature]
}

var readablePrimitives = map[string]string{
	PrimitiveBoolean: "boolean",
	PrimitiveByte:    "byte",
	PrimitiveChar:    "char",
	PrimitiveShort:   "short",
	PrimitiveInt:     "int",
	PrimitiveLong:    "long",
	PrimitiveFloat:   "float",
	PrimitiveDouble:  "double",
	Void:             "void",
}

// IsPrimitive reports whether the signature is a JVM primitive (or void).
func IsPrimitive(signature string) bool {
	_, ok := readablePrimitives[signature]
	return ok
}

// IsPlatform reports whether the signature names a primitive or a type from
// the java and javax namespaces. Platform types are never walked for
// properties.
func IsPlatform(signature string) bool {
	return IsPrimitive(signature) ||
		strings.HasPrefix(signature, "Ljava/") ||
		strings.HasPrefix(signature, "Ljavax/")
}

// IsClass reports whether the signature has the "L...;" class form.
func IsClass(signature string) bool {
	return len(signature) > 2 && signature[0] == 'L' && signature[len(signature)-1] == ';'
}

// IsArray reports whether the signature is an array type.
func IsArray(signature string) bool {
	return len(signature) > 1 && signature[0] == '['
}

// IsTypeVariable reports whether the signature is a type variable such as "TA;".
func IsTypeVariable(signature string) bool {
	return len(signature) > 2 && signature[0] == 'T' && signature[len(signature)-1] == ';' &&
		!strings.ContainsAny(signature[1:len(signature)-1], "/<;")
}

// TypeVariableName returns "A" for "TA;", or "" for other signatures.
func TypeVariableName(signature string) string {
	if !IsTypeVariable(signature) {
		return ""
	}
	return signature[1 : len(signature)-1]
}

// Erasure strips type arguments: "Lpkg/A<Lpkg/B;>;" becomes "Lpkg/A;".
// Non-class signatures are returned unchanged.
func Erasure(signature string) string {
	if !IsClass(signature) {
		return signature
	}
	if idx := strings.IndexByte(signature, '<'); idx != -1 {
		return signature[:idx] + ";"
	}
	return signature
}

// ClassName returns the internal class name: "Lpkg/A<...>;" becomes "pkg/A".
func ClassName(signature string) string {
	erased := Erasure(signature)
	if !IsClass(erased) {
		return ""
	}
	return erased[1 : len(erased)-1]
}

// SimpleName returns the unqualified name of a signature. Nested classes
// yield the innermost name, arrays yield the element name with "[]" appended.
func SimpleName(signature string) string {
	if name, ok := readablePrimitives[signature]; ok {
		return name
	}
	if IsArray(signature) {
		return SimpleName(signature[1:]) + "[]"
	}
	if v := TypeVariableName(signature); v != "" {
		return v
	}
	name := ClassName(signature)
	if name == "" {
		return signature
	}
	if idx := strings.LastIndexByte(name, '/'); idx != -1 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndexByte(name, '$'); idx != -1 && idx < len(name)-1 {
		name = name[idx+1:]
	}
	return name
}

// PackageName returns the dotted package of a class signature, or "".
func PackageName(signature string) string {
	name := ClassName(signature)
	idx := strings.LastIndexByte(name, '/')
	if idx == -1 {
		return ""
	}
	return strings.ReplaceAll(name[:idx], "/", ".")
}

// TypeArguments splits the top-level type arguments of a parameterized
// signature. "Lpkg/Map<Ljava/lang/String;Ljava/util/List<TA;>;>;" yields
// ["Ljava/lang/String;", "Ljava/util/List<TA;>;"]. Wildcard bounds are
// removed and unbounded wildcards become Object.
func TypeArguments(signature string) []string {
	if !IsClass(signature) {
		return nil
	}
	start := strings.IndexByte(signature, '<')
	end := strings.LastIndexByte(signature, '>')
	if start == -1 || end <= start {
		return nil
	}

	body := signature[start+1 : end]
	var args []string
	for i := 0; i < len(body); {
		next := scanSignature(body, i)
		if next <= i {
			// malformed remainder
			return args
		}
		args = append(args, stripWildcard(body[i:next]))
		i = next
	}
	return args
}

// stripWildcard removes "+" and "-" bounds and maps "*" to Object.
func stripWildcard(arg string) string {
	switch {
	case arg == "*":
		return Object
	case strings.HasPrefix(arg, "+"), strings.HasPrefix(arg, "-"):
		return arg[1:]
	default:
		return arg
	}
}

// scanSignature returns the index just past the signature starting at i,
// or i when no valid signature starts there.
func scanSignature(s string, i int) int {
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '*':
		return i + 1
	case '+', '-', '[':
		if next := scanSignature(s, i+1); next > i+1 {
			return next
		}
		return i
	case 'L', 'T':
		depth := 0
		for j := i + 1; j < len(s); j++ {
			switch s[j] {
			case '<':
				depth++
			case '>':
				depth--
			case ';':
				if depth == 0 {
					return j + 1
				}
			}
		}
		return i
	default:
		if IsPrimitive(s[i : i+1]) {
			return i + 1
		}
		return i
	}
}

// IsWellFormed reports whether the whole string is exactly one signature.
func IsWellFormed(signature string) bool {
	return signature != "" && scanSignature(signature, 0) == len(signature)
}

// Substitute replaces type variables in signature using bindings.
// Unbound variables are replaced by Object.
func Substitute(signature string, bindings map[string]string) string {
	if v := TypeVariableName(signature); v != "" {
		if bound, ok := bindings[v]; ok {
			return bound
		}
		return Object
	}
	if IsArray(signature) {
		return "[" + Substitute(signature[1:], bindings)
	}
	args := TypeArguments(signature)
	if len(args) == 0 {
		return signature
	}

	var sb strings.Builder
	erased := Erasure(signature)
	sb.WriteString(erased[:len(erased)-1])
	sb.WriteByte('<')
	for _, arg := range args {
		sb.WriteString(Substitute(arg, bindings))
	}
	sb.WriteString(">;")
	return sb.String()
}

// ToReadable converts a signature to its source-level spelling:
// "Ljava/util/List<Ljava/lang/String;>;" becomes "java.util.List<java.lang.String>".
func ToReadable(signature string) string {
	if name, ok := readablePrimitives[signature]; ok {
		return name
	}
	if IsArray(signature) {
		return ToReadable(signature[1:]) + "[]"
	}
	if v := TypeVariableName(signature); v != "" {
		return v
	}
	if !IsClass(signature) {
		return signature
	}

	readable := strings.ReplaceAll(ClassName(signature), "/", ".")
	args := TypeArguments(signature)
	if len(args) == 0 {
		return readable
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = ToReadable(arg)
	}
	return readable + "<" + strings.Join(parts, ", ") + ">"
}
