package nbtpath

import (
	"reflect"
	"sync"

	"github.com/nbtpath/go-nbtpath/gomap"
	"github.com/nbtpath/go-nbtpath/ir"
)

// serializedTypeKey is the reserved compound key that carries the
// serializer discriminator. The literal is a wire convention shared
// with existing serialized data; do not change it.
const serializedTypeKey = "rtag=="

// Serializer turns one application value type into a string-keyed map.
// ID is the discriminator written under the reserved key so the
// matching Deserializer can be found again on read.
type Serializer interface {
	ID() string
	Serialize(v any) map[string]any
}

// Deserializer rebuilds an application value from a string-keyed map
// previously produced by the Serializer with the same ID.
type Deserializer interface {
	ID() string
	Deserialize(m map[string]any) any
}

// SerializerFunc adapts a function pair to Serializer.
type SerializerFunc struct {
	OutID string
	Fn    func(v any) map[string]any
}

func (s SerializerFunc) ID() string                    { return s.OutID }
func (s SerializerFunc) Serialize(v any) map[string]any { return s.Fn(v) }

// DeserializerFunc adapts a function pair to Deserializer.
type DeserializerFunc struct {
	InID string
	Fn   func(m map[string]any) any
}

func (d DeserializerFunc) ID() string                       { return d.InID }
func (d DeserializerFunc) Deserialize(m map[string]any) any { return d.Fn(m) }

// Editor edits Compound and List nodes through tree-like paths and
// converts values on the way in and out. Registration is expected at
// setup time; the registries are mutex-guarded so late registration is
// safe too.
type Editor struct {
	mirror *gomap.Mirror

	mu            sync.RWMutex
	serializers   map[reflect.Type]Serializer
	deserializers map[string]Deserializer
}

// Default is an editor compatible with plain Go values only.
var Default = NewEditor()

func NewEditor() *Editor {
	return &Editor{
		mirror:        gomap.Default,
		serializers:   map[reflect.Type]Serializer{},
		deserializers: map[string]Deserializer{},
	}
}

func (e *Editor) Mirror() *gomap.Mirror {
	return e.mirror
}

// PutSerializer registers s for values whose exact runtime type is t.
// The last registration for a type wins.
func (e *Editor) PutSerializer(t reflect.Type, s Serializer) *Editor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.serializers[t] = s
	return e
}

// PutDeserializer registers d under its own discriminator. The last
// registration for a discriminator wins.
func (e *Editor) PutDeserializer(d Deserializer) *Editor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.deserializers[d.ID()] = d
	return e
}

// ToTag converts any value to a node. A registered serializer for the
// value's exact runtime type takes precedence; the serialized map gets
// the reserved discriminator key injected before conversion. Returns
// nil when the value has no node representation.
func (e *Editor) ToTag(v any) *ir.Node {
	if v == nil {
		return nil
	}
	e.mu.RLock()
	s := e.serializers[reflect.TypeOf(v)]
	e.mu.RUnlock()
	if s != nil {
		m := s.Serialize(v)
		m[serializedTypeKey] = s.ID()
		return e.mirror.ToNode(m)
	}
	return e.mirror.ToNode(v)
}

// FromTagExact converts a node back to a plain value. When the result
// is a map carrying the reserved discriminator key and a deserializer
// is registered for it, the deserializer's value is returned instead
// of the raw map.
func (e *Editor) FromTagExact(n *ir.Node) any {
	v := e.mirror.FromNode(n)
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	id, ok := m[serializedTypeKey].(string)
	if !ok {
		return v
	}
	e.mu.RLock()
	d := e.deserializers[id]
	e.mu.RUnlock()
	if d == nil {
		return v
	}
	return d.Deserialize(m)
}

// As casts a converted value to T. The second result distinguishes a
// usable value from "absent or wrong type"; absent and mismatched
// still look alike, which callers must accept on this API.
func As[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// FromTag converts n and casts the result to T. A nil node, an absent
// deserializer or a type mismatch all yield the zero value and false.
func FromTag[T any](e *Editor, n *ir.Node) (T, bool) {
	return As[T](e.FromTagExact(n))
}
