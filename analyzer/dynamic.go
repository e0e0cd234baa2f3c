package analyzer

import (
	stdjson "encoding/json"
	"maps"
	"reflect"
	"slices"

	"github.com/go-json-experiment/json"

	"github.com/erraggy/restshape/model"
	"github.com/erraggy/restshape/shapeerrors"
	"github.com/erraggy/restshape/typeid"
)

// Dynamic derives representations from sampled JSON values.
type Dynamic struct {
	store *model.Store
	cfg   *config
}

// NewDynamic returns a dynamic analyzer writing into store.
func NewDynamic(store *model.Store, opts ...Option) *Dynamic {
	return &Dynamic{store: store, cfg: newConfig(opts)}
}

// Store returns the store the analyzer writes into.
func (d *Dynamic) Store() *model.Store {
	return d.store
}

// AnalyzeJSON decodes a JSON sample and analyzes it. Duplicate member names
// are rejected.
func (d *Dynamic) AnalyzeJSON(data []byte) (typeid.Identity, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return typeid.Identity{}, &shapeerrors.ParseError{Message: "decoding JSON sample", Cause: err}
	}
	return d.Analyze(value), nil
}

// Analyze returns the identity describing value.
//
// Accepted values are those produced by JSON decoding: nil, bool, numbers,
// string, []any and map[string]any. Other slices and string-keyed maps are
// walked by reflection; anything else is treated as an opaque object.
func (d *Dynamic) Analyze(value any) typeid.Identity {
	switch v := value.(type) {
	case nil:
		return typeid.Named(typeid.Object)
	case bool:
		return typeid.Named(typeid.PrimitiveBoolean)
	case string:
		return typeid.Named(typeid.String)
	case stdjson.Number,
		float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return typeid.Named(typeid.Double)
	case []any:
		return d.analyzeArray(v)
	case map[string]any:
		return d.analyzeObject(v)
	}
	return d.analyzeReflect(reflect.ValueOf(value))
}

// analyzeArray describes an array by its first element. Empty arrays hold
// Object.
func (d *Dynamic) analyzeArray(values []any) typeid.Identity {
	var element model.Representation
	if len(values) == 0 {
		element = model.NewConcrete(typeid.Named(typeid.Object), nil)
	} else {
		elementID := d.Analyze(values[0])
		if rep, ok := d.store.Get(elementID); ok {
			element = rep
		} else {
			element = model.NewConcrete(elementID, nil)
		}
	}

	if id, ok := d.store.FindEqual(model.NewCollection(typeid.Identity{}, element)); ok {
		d.cfg.logger.Debug("reusing collection shape", "identity", id.String())
		return id
	}
	id := d.store.NewSynthetic()
	d.store.Put(model.NewCollection(id, element))
	return id
}

// analyzeObject describes an object by its member names and member types.
// Members are visited in name order so synthetic numbering is stable.
func (d *Dynamic) analyzeObject(members map[string]any) typeid.Identity {
	properties := make(map[string]model.Property, len(members))
	for _, name := range slices.Sorted(maps.Keys(members)) {
		properties[name] = model.Property{Type: d.Analyze(members[name])}
	}

	if id, ok := d.store.FindEqual(model.NewConcrete(typeid.Identity{}, properties)); ok {
		d.cfg.logger.Debug("reusing object shape", "identity", id.String())
		return id
	}
	id := d.store.NewSynthetic()
	d.store.Put(model.NewConcrete(id, properties))
	return id
}

func (d *Dynamic) analyzeReflect(v reflect.Value) typeid.Identity {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return typeid.Named(typeid.Object)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			// []byte encodes as a base64 string
			return typeid.Named(typeid.String)
		}
		values := make([]any, v.Len())
		for i := range values {
			values[i] = v.Index(i).Interface()
		}
		return d.analyzeArray(values)
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			break
		}
		members := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			members[iter.Key().String()] = iter.Value().Interface()
		}
		return d.analyzeObject(members)
	case reflect.Bool:
		return typeid.Named(typeid.PrimitiveBoolean)
	case reflect.String:
		return typeid.Named(typeid.String)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return typeid.Named(typeid.Double)
	}
	d.cfg.logger.Debug("unsupported sample value, treating as object", "kind", v.Kind().String())
	return typeid.Named(typeid.Object)
}
