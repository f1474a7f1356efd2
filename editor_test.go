package nbtpath

import (
	"reflect"
	"testing"

	"github.com/nbtpath/go-nbtpath/ir"
)

type coords struct {
	X, Y int32
}

func coordsSerializer() SerializerFunc {
	return SerializerFunc{
		OutID: "test:coords",
		Fn: func(v any) map[string]any {
			c := v.(coords)
			return map[string]any{"x": c.X, "y": c.Y}
		},
	}
}

func coordsDeserializer() DeserializerFunc {
	return DeserializerFunc{
		InID: "test:coords",
		Fn: func(m map[string]any) any {
			c := coords{}
			if x, ok := m["x"].(int32); ok {
				c.X = x
			}
			if y, ok := m["y"].(int32); ok {
				c.Y = y
			}
			return c
		},
	}
}

func TestSerializerRoundTrip(t *testing.T) {
	e := NewEditor().
		PutSerializer(reflect.TypeOf(coords{}), coordsSerializer()).
		PutDeserializer(coordsDeserializer())

	root := ir.NewCompound()
	if !e.Set(root, coords{X: 4, Y: 9}, "pos") {
		t.Fatalf("Set failed")
	}

	// the wire form is a plain compound with the discriminator key
	n := e.GetExact(root, "pos")
	if n == nil || n.Type != ir.TypeCompound {
		t.Fatalf("expected compound, got %v", n)
	}
	if id := n.Get(serializedTypeKey); id == nil || id.Str != "test:coords" {
		t.Fatalf("missing discriminator, got %v", id)
	}

	got, ok := GetAs[coords](e, root, "pos")
	if !ok || got != (coords{X: 4, Y: 9}) {
		t.Errorf("round trip = %+v, %v", got, ok)
	}
}

func TestFromTagWithoutDeserializer(t *testing.T) {
	e := NewEditor().
		PutSerializer(reflect.TypeOf(coords{}), coordsSerializer())

	n := e.ToTag(coords{X: 1, Y: 2})
	v := e.FromTagExact(n)
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected raw map when no deserializer is registered, got %T", v)
	}
	if m[serializedTypeKey] != "test:coords" {
		t.Errorf("discriminator missing from raw map")
	}
}

func TestFromTagTypeMismatch(t *testing.T) {
	e := NewEditor()
	n := ir.FromString("not a number")
	got, ok := FromTag[int32](e, n)
	if ok || got != 0 {
		t.Errorf("mismatched cast should be zero,false; got %v, %v", got, ok)
	}
	if _, ok := FromTag[string](e, nil); ok {
		t.Errorf("nil node should be false")
	}
}

func TestLastRegistrationWins(t *testing.T) {
	e := NewEditor()
	e.PutDeserializer(DeserializerFunc{InID: "d", Fn: func(map[string]any) any { return "one" }})
	e.PutDeserializer(DeserializerFunc{InID: "d", Fn: func(map[string]any) any { return "two" }})

	c := ir.NewCompound()
	c.Set(serializedTypeKey, ir.FromString("d"))
	if got := e.FromTagExact(c); got != "two" {
		t.Errorf("got %v, want the last registered deserializer", got)
	}
}

func TestToTagUnsupported(t *testing.T) {
	e := NewEditor()
	if n := e.ToTag(make(chan int)); n != nil {
		t.Errorf("unsupported value should yield nil")
	}
	if n := e.ToTag(nil); n != nil {
		t.Errorf("nil should yield nil")
	}
}
