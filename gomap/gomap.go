package gomap

import (
	"reflect"

	"github.com/nbtpath/go-nbtpath/ir"
)

// Mirror converts plain Go values to tag nodes and back. It handles
// leaf primitives, string-keyed maps and ordered sequences; anything
// richer (registered serializers) sits a layer above, in the editor.
type Mirror struct{}

// Default is a ready Mirror; the zero value is equally usable.
var Default = &Mirror{}

// ToNode converts v to a node. Passing a node returns it as-is, which
// makes re-insertion of values read out of a tree idempotent. The
// result is nil when v has no node representation; callers treat that
// as "unconvertible" and leave the tree untouched.
func (m *Mirror) ToNode(v any) *ir.Node {
	switch x := v.(type) {
	case nil:
		return nil
	case *ir.Node:
		return x
	case map[string]any:
		res := ir.NewCompound()
		for k, mv := range x {
			cv := m.ToNode(mv)
			if cv == nil {
				return nil
			}
			res.Set(k, cv)
		}
		return res
	case []any:
		res := ir.NewList()
		for _, lv := range x {
			cv := m.ToNode(lv)
			if cv == nil {
				return nil
			}
			res.Append(cv)
		}
		return res
	}
	if n, ok := ir.FromValue(v); ok {
		return n
	}
	return m.reflectToNode(v)
}

// reflectToNode picks up concretely typed maps and slices, e.g.
// map[string]string or []int32 wrapped in a named type.
func (m *Mirror) reflectToNode(v any) *ir.Node {
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return nil
		}
		res := ir.NewCompound()
		iter := val.MapRange()
		for iter.Next() {
			cv := m.ToNode(iter.Value().Interface())
			if cv == nil {
				return nil
			}
			res.Set(iter.Key().String(), cv)
		}
		return res
	case reflect.Slice, reflect.Array:
		res := ir.NewList()
		for i := 0; i < val.Len(); i++ {
			cv := m.ToNode(val.Index(i).Interface())
			if cv == nil {
				return nil
			}
			res.Append(cv)
		}
		return res
	default:
		return nil
	}
}

// FromNode is the inverse of ToNode: Compound becomes map[string]any,
// List becomes []any, leaves unwrap to their primitive. Array leaves
// come back as copies, never as the tree's own backing slice.
func (m *Mirror) FromNode(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.TypeCompound:
		res := make(map[string]any, n.Len())
		for _, k := range n.Keys() {
			res[k] = m.FromNode(n.Get(k))
		}
		return res
	case ir.TypeList:
		res := make([]any, 0, n.Len())
		for i := 0; i < n.Len(); i++ {
			res = append(res, m.FromNode(n.At(i)))
		}
		return res
	default:
		return n.Value()
	}
}

// Clone deep-copies a node; any other value is converted instead,
// which gives one call that always yields a fresh, unaliased node.
func (m *Mirror) Clone(v any) *ir.Node {
	if n, ok := v.(*ir.Node); ok {
		return n.Clone()
	}
	return m.ToNode(v)
}
