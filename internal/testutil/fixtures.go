// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/restshape/classmeta"
	"github.com/erraggy/restshape/typeid"
)

// Signatures of the fixture classes.
const (
	Model        = "Lcom/example/Model;"
	Node         = "Lcom/example/Node;"
	Left         = "Lcom/example/Left;"
	Right        = "Lcom/example/Right;"
	Color        = "Lcom/example/Color;"
	Base         = "Lcom/example/Base;"
	Derived      = "Lcom/example/Derived;"
	Account      = "Lcom/example/Account;"
	Secret       = "Lcom/example/Secret;"
	Pair         = "Lcom/example/Pair;"
	PairHolder   = "Lcom/example/PairHolder;"
	ItemList     = "Lcom/example/ItemList;"
	AbstractBase = "Lcom/example/AbstractBase;"
	Concrete     = "Lcom/example/Concrete;"
)

// ModelClass returns the metadata of
//
//	@XmlAccessorType(FIELD) class Model { int id; String name; }
//
// with id marked required.
func ModelClass() *classmeta.Class {
	return &classmeta.Class{
		Name:   Model,
		Access: classmeta.AccessField,
		Fields: []classmeta.Field{
			{Name: "id", Type: typeid.PrimitiveInt, Required: true},
			{Name: "name", Type: typeid.String},
		},
	}
}

// NewModelTable returns a table holding only ModelClass.
func NewModelTable() *classmeta.Table {
	return classmeta.NewTable(ModelClass())
}

// NewRecursiveTable returns classes with self and mutual references:
//
//	class Node  { Node next; List<Node> children; }
//	class Left  { Right right; }
//	class Right { Left left; }
func NewRecursiveTable() *classmeta.Table {
	return classmeta.NewTable(
		&classmeta.Class{
			Name:   Node,
			Access: classmeta.AccessField,
			Fields: []classmeta.Field{
				{Name: "next", Type: Node},
				{Name: "children", Type: "Ljava/util/List<" + Node + ">;"},
			},
		},
		&classmeta.Class{
			Name:   Left,
			Access: classmeta.AccessField,
			Fields: []classmeta.Field{{Name: "right", Type: Right}},
		},
		&classmeta.Class{
			Name:   Right,
			Access: classmeta.AccessField,
			Fields: []classmeta.Field{{Name: "left", Type: Left}},
		},
	)
}

// NewInheritanceTable returns class hierarchies exercising overrides and
// access type inheritance:
//
//	@XmlAccessorType(FIELD) class Base { String id; Object value; }
//	class Derived extends Base { Integer value; String label; }
//
//	abstract class AbstractBase { String hello; String getHello(); abstract Object getOverridden(); }
//	class Concrete extends AbstractBase { String foobar; String getFoobar(); String getOverridden(); }
func NewInheritanceTable() *classmeta.Table {
	return classmeta.NewTable(
		&classmeta.Class{
			Name:   Base,
			Access: classmeta.AccessField,
			Fields: []classmeta.Field{
				{Name: "id", Type: typeid.String},
				{Name: "value", Type: typeid.Object},
			},
		},
		&classmeta.Class{
			Name:       Derived,
			Superclass: Base,
			Fields: []classmeta.Field{
				{Name: "value", Type: typeid.Integer, Required: true},
				{Name: "label", Type: typeid.String},
			},
		},
		&classmeta.Class{
			Name:   AbstractBase,
			Fields: []classmeta.Field{{Name: "hello", Type: typeid.String}},
			Methods: []classmeta.Method{
				{Name: "getHello", ReturnType: typeid.String, Public: true},
				{Name: "setHello", ReturnType: typeid.Void, Params: 1, Public: true},
				{Name: "getOverridden", ReturnType: typeid.Object, Public: true},
			},
		},
		&classmeta.Class{
			Name:       Concrete,
			Superclass: AbstractBase,
			Fields:     []classmeta.Field{{Name: "foobar", Type: typeid.String}},
			Methods: []classmeta.Method{
				{Name: "getFoobar", ReturnType: typeid.String, Public: true},
				{Name: "getOverridden", ReturnType: typeid.String, Public: true},
				{Name: "getOverridden", ReturnType: typeid.Object, Public: true, Synthetic: true},
				{Name: "getClass", ReturnType: "Ljava/lang/Class;", Public: true},
				{Name: "getStatic", ReturnType: typeid.String, Public: true, Static: true},
				{Name: "getByIndex", ReturnType: typeid.String, Public: true, Params: 1},
				{Name: "isReady", ReturnType: typeid.PrimitiveBoolean, Public: true},
				{Name: "isBoxed", ReturnType: typeid.Boolean, Public: true},
			},
		},
	)
}

// NewIgnoreTable returns classes exercising the ignore annotations:
//
//	@JsonIgnoreType class Secret { String key; }
//	class Account {
//	    public String name;
//	    @JsonIgnore public String password; String getPassword();
//	    public Secret secret;
//	    @XmlTransient public String cache;
//	    public static String CONSTANT;
//	    @XmlElement private String internal;
//	    @JsonIgnore String getToken();
//	}
func NewIgnoreTable() *classmeta.Table {
	return classmeta.NewTable(
		&classmeta.Class{
			Name:        Secret,
			Annotations: classmeta.Annotations{classmeta.JSONIgnoreType},
			Fields:      []classmeta.Field{{Name: "key", Type: typeid.String, Public: true}},
		},
		&classmeta.Class{
			Name: Account,
			Fields: []classmeta.Field{
				{Name: "name", Type: typeid.String, Public: true},
				{Name: "password", Type: typeid.String, Public: true, Annotations: classmeta.Annotations{"com.fasterxml.jackson.annotation.JsonIgnore"}},
				{Name: "secret", Type: Secret, Public: true},
				{Name: "cache", Type: typeid.String, Public: true, Annotations: classmeta.Annotations{classmeta.XMLTransient}},
				{Name: "CONSTANT", Type: typeid.String, Public: true, Static: true},
				{Name: "internal", Type: typeid.String, Annotations: classmeta.Annotations{classmeta.XMLElement}},
			},
			Methods: []classmeta.Method{
				{Name: "getPassword", ReturnType: typeid.String, Public: true},
				{Name: "getToken", ReturnType: typeid.String, Public: true, Annotations: classmeta.Annotations{classmeta.JSONIgnore}},
			},
		},
	)
}

// NewGenericTable returns generic classes:
//
//	class Pair<A, B> { A getFirst(); B getSecond(); List<A> getFirsts(); }
//	class PairHolder { Pair<Long, String> getLongAndString(); Pair<String, Long> getStringAndLong(); }
//	class ItemList extends ArrayList<Model> {}
//	enum Color { RED, GREEN, BLUE }
func NewGenericTable() *classmeta.Table {
	return classmeta.NewTable(
		&classmeta.Class{
			Name:           Pair,
			TypeParameters: []string{"A", "B"},
			Methods: []classmeta.Method{
				{Name: "getFirst", ReturnType: "TA;", Public: true},
				{Name: "getSecond", ReturnType: "TB;", Public: true},
				{Name: "getFirsts", ReturnType: "Ljava/util/List<TA;>;", Public: true},
			},
		},
		&classmeta.Class{
			Name: PairHolder,
			Methods: []classmeta.Method{
				{Name: "getLongAndString", ReturnType: PairOf(typeid.Long, typeid.String), Public: true},
				{Name: "getStringAndLong", ReturnType: PairOf(typeid.String, typeid.Long), Public: true},
			},
		},
		&classmeta.Class{
			Name:       ItemList,
			Superclass: "Ljava/util/ArrayList<" + Model + ">;",
		},
		ModelClass(),
		&classmeta.Class{
			Name:          Color,
			Enum:          true,
			EnumConstants: []string{"RED", "GREEN", "BLUE"},
		},
	)
}

// PairOf returns the signature of Pair<a, b>.
func PairOf(a, b string) string {
	return "Lcom/example/Pair<" + a + b + ">;"
}

// ListOf returns the signature of java.util.List<element>.
func ListOf(element string) string {
	return "Ljava/util/List<" + element + ">;"
}

// WriteTempYAML marshals doc to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals doc to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.Marshal(doc, jsontext.WithIndent("  "))
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
