// Package astjson renders phpfront/ast trees into the machine-readable
// mapping the core spec leaves to downstream tooling: one object per
// node carrying "kind", "span", and the node's own fields. It walks
// any node generically by reflection rather than enumerating every
// grammar production, since the core's job is producing the tree, not
// emitting it.
package astjson

import (
	"fmt"
	"reflect"

	"github.com/phpfront/phpfront/ast"
)

// Encode converts v - typically an *ast.File, or any Node, slice of
// nodes, or nested struct reachable from one - into a value safe to
// pass to encoding/json.Marshal.
func Encode(v any) any {
	return encodeValue(reflect.ValueOf(v))
}

func encodeValue(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return nil
		}
		if node, ok := rv.Interface().(ast.Node); ok {
			return encodeNode(node, rv.Elem())
		}
		return encodeValue(rv.Elem())
	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return encodeValue(rv.Elem())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = encodeValue(rv.Index(i))
		}
		return out
	case reflect.Struct:
		return encodeFields(rv.Type().Name(), rv, nil)
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	default:
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		return nil
	}
}

// encodeNode renders a pointer-to-struct that satisfies ast.Node,
// prefixing the field map with its "kind" (the Go type name) and its
// byte span.
func encodeNode(n ast.Node, elem reflect.Value) any {
	span := ast.Span(n)
	return encodeFields(elem.Type().Name(), elem, &span)
}

func encodeFields(kind string, rv reflect.Value, span any) map[string]any {
	t := rv.Type()
	out := make(map[string]any, t.NumField()+2)
	out["kind"] = kind
	if span != nil {
		out["span"] = span
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		out[f.Name] = encodeValue(rv.Field(i))
	}
	return out
}
