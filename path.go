package nbtpath

import (
	"fmt"

	"github.com/nbtpath/go-nbtpath/debug"
	"github.com/nbtpath/go-nbtpath/ir"
)

// A path is a sequence of segments, each a string (Compound key) or an
// int (List index). Segments are untyped until matched against the
// live node shape: foreign data may not have the shape the caller
// expects, and every step answers "not found" instead of panicking.

// createPolicy decides, while traversing a Compound with a missing
// key, whether the synthesized container should be a List. next is the
// index of the segment after the missing one.
type createPolicy func(next int, path []any) bool

// addPolicy forces List creation when the missing key is the last
// segment: an add target is always a list.
var addPolicy createPolicy = func(next int, path []any) bool {
	if next == len(path) {
		return true
	}
	_, isIndex := asIndex(path[next])
	return isIndex
}

// setPolicy creates a List only when the following segment is an index.
var setPolicy createPolicy = func(next int, path []any) bool {
	if next >= len(path) {
		return false
	}
	_, isIndex := asIndex(path[next])
	return isIndex
}

func asIndex(seg any) (int, bool) {
	switch x := seg.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	}
	return 0, false
}

func segKey(seg any) string {
	if s, ok := seg.(string); ok {
		return s
	}
	return fmt.Sprint(seg)
}

// GetExact returns the node at path, without conversion, or nil when
// any step misses.
func (e *Editor) GetExact(root *ir.Node, path ...any) *ir.Node {
	return e.getExactOrCreate(root, path, nil)
}

// Get converts the node at path to a plain value; nil when absent.
func (e *Editor) Get(root *ir.Node, path ...any) any {
	n := e.GetExact(root, path...)
	if n == nil {
		return nil
	}
	return e.FromTagExact(n)
}

// GetAs is Get with a typed result; false on absence or mismatch.
func GetAs[T any](e *Editor, root *ir.Node, path ...any) (T, bool) {
	var zero T
	n := e.GetExact(root, path...)
	if n == nil {
		return zero, false
	}
	return As[T](e.FromTagExact(n))
}

// getExactOrCreate walks path from root. With a nil policy missing
// keys fail the traversal; otherwise missing Compound keys are filled
// with a fresh container whose kind the policy picks from the next
// segment. List indices never create: out of range is a miss.
func (e *Editor) getExactOrCreate(root *ir.Node, path []any, policy createPolicy) *ir.Node {
	cur := root
	for i, seg := range path {
		if cur == nil {
			return nil
		}
		if idx, ok := asIndex(seg); ok && cur.Type == ir.TypeList {
			if idx < 0 || idx >= cur.Len() {
				if debug.Path() {
					debug.Logf("path: index %d out of bounds at segment %d\n", idx, i)
				}
				return nil
			}
			cur = cur.At(idx)
			continue
		}
		if cur.Type != ir.TypeCompound {
			// incompatible container for this segment
			if debug.Path() {
				debug.Logf("path: %s node at segment %d\n", cur.Type, i)
			}
			return nil
		}
		key := segKey(seg)
		if policy != nil && !cur.Has(key) {
			if policy(i+1, path) {
				cur.Set(key, ir.NewList())
			} else {
				cur.Set(key, ir.NewCompound())
			}
		}
		cur = cur.Get(key)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Set writes value at path, creating intermediate containers as
// needed. A nil value means remove, and then no containers are
// created along the way: building a path just to delete from it is
// wasted work. Returns false on an empty path or a failed traversal.
func (e *Editor) Set(root *ir.Node, value any, path ...any) bool {
	if len(path) == 0 {
		return false
	}
	last := len(path) - 1
	var policy createPolicy
	if value != nil {
		policy = setPolicy
	}
	container := e.getExactOrCreate(root, path[:last], policy)
	if container == nil {
		return false
	}
	if value == nil {
		return e.RemoveExact(container, path[last])
	}
	return e.SetExact(container, value, path[last])
}

// SetExact writes value directly under key in a List or Compound. An
// index key against a List replaces the element at that index, which
// must exist. Anything else goes through the Compound under the string
// form of the key. Returns false when the container matches neither
// shape or the value is unconvertible; the container is then left
// unmodified.
func (e *Editor) SetExact(container *ir.Node, value any, key any) bool {
	if container == nil {
		return false
	}
	if idx, ok := asIndex(key); ok && container.Type == ir.TypeList {
		tag := e.ToTag(value)
		if tag == nil {
			return false
		}
		return container.SetAt(idx, tag)
	}
	if container.Type == ir.TypeCompound {
		tag := e.ToTag(value)
		if tag == nil {
			return false
		}
		container.Set(segKey(key), tag)
		return true
	}
	return false
}

// RemoveExact removes key from a List (as an index) or a Compound.
// Removing an absent key or index reports true: the container already
// looks like the caller wanted. Only a shape mismatch reports false.
func (e *Editor) RemoveExact(container *ir.Node, key any) bool {
	if container == nil {
		return false
	}
	if idx, ok := asIndex(key); ok && container.Type == ir.TypeList {
		container.RemoveAt(idx)
		return true
	}
	if container.Type == ir.TypeCompound {
		container.Remove(segKey(key))
		return true
	}
	return false
}

// Add appends value to the List at path, creating it when missing. An
// empty path fails: add targets a position inside a container, never
// the root itself.
func (e *Editor) Add(root *ir.Node, value any, path ...any) bool {
	if len(path) == 0 {
		return false
	}
	final := e.getExactOrCreate(root, path, addPolicy)
	if final == nil || final.Type != ir.TypeList {
		return false
	}
	tag := e.ToTag(value)
	if tag == nil {
		return false
	}
	final.Append(tag)
	return true
}
