package ast

import (
	"encoding/json"
	"reflect"
	"strings"
)

// MarshalJSON encodes a node tree as indented JSON. Every node object has a
// "type" member naming its Go type and a "span" member with its start and
// end byte offsets, so interface valued children can be told apart.
func MarshalJSON(n Node) ([]byte, error) {
	return json.MarshalIndent(jsonValue(reflect.ValueOf(n)), "", "  ")
}

func jsonValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return jsonValue(v.Elem())
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return jsonValue(v.Elem())
	case reflect.Struct:
		return jsonObject(v)
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		out := make([]any, v.Len())
		for i := range out {
			out[i] = jsonValue(v.Index(i))
		}
		return out
	default:
		return v.Interface()
	}
}

func jsonObject(v reflect.Value) map[string]any {
	t := v.Type()
	obj := map[string]any{"type": t.Name()}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			if e, ok := v.Field(i).Interface().(Extent); ok {
				obj["span"] = []int{e.Position.Offset, e.EndPosition.Offset}
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fv := v.Field(i)
		if strings.Contains(opts, "omitempty") && fv.IsZero() {
			continue
		}
		obj[name] = jsonValue(fv)
	}
	return obj
}
