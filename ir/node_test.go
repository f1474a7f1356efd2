package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompoundOrder(t *testing.T) {
	c := NewCompound()
	c.Set("b", FromInt(1))
	c.Set("a", FromInt(2))
	c.Set("c", FromInt(3))
	c.Set("a", FromInt(4)) // overwrite keeps position

	want := []string{"b", "a", "c"}
	if d := cmp.Diff(want, c.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
	if got := c.Get("a").Int; got != 4 {
		t.Errorf("a = %d, want 4", got)
	}

	c.Remove("b")
	c.Remove("b") // absent, no-op
	if d := cmp.Diff([]string{"a", "c"}, c.Keys()); d != "" {
		t.Errorf("keys after remove (-want +got):\n%s", d)
	}
}

func TestListOps(t *testing.T) {
	l := NewList()
	l.Append(FromString("x"))
	l.Append(FromString("y"))

	if l.At(2) != nil {
		t.Errorf("At(2) on 2-element list should be nil")
	}
	if l.At(-1) != nil {
		t.Errorf("At(-1) should be nil")
	}
	if ok := l.SetAt(2, FromString("z")); ok {
		t.Errorf("SetAt out of range should be false")
	}
	if ok := l.SetAt(1, FromString("z")); !ok || l.At(1).Str != "z" {
		t.Errorf("SetAt(1) failed")
	}

	l.RemoveAt(5) // no-op
	l.RemoveAt(0)
	if l.Len() != 1 || l.At(0).Str != "z" {
		t.Errorf("unexpected list after removes: len=%d", l.Len())
	}
}

func TestCloneDeep(t *testing.T) {
	c := NewCompound()
	inner := NewList()
	inner.Append(FromIntArray([]int32{1, 2, 3}))
	c.Set("data", inner)

	cl := c.Clone()
	cl.Get("data").At(0).Ints[0] = 99
	cl.Get("data").Append(FromInt(7))

	if c.Get("data").At(0).Ints[0] != 1 {
		t.Errorf("clone aliases int array")
	}
	if c.Get("data").Len() != 1 {
		t.Errorf("clone aliases list")
	}
}

func TestValueCopiesArrays(t *testing.T) {
	n := FromByteArray([]byte{1, 2})
	v := n.Value().([]byte)
	v[0] = 9
	if n.Bytes[0] != 1 {
		t.Errorf("Value aliases byte array")
	}
}

func TestFromValue(t *testing.T) {
	tests := []struct {
		in   any
		typ  Type
		ok   bool
	}{
		{"s", TypeString, true},
		{int8(1), TypeByte, true},
		{int16(1), TypeShort, true},
		{int32(1), TypeInt, true},
		{1, TypeInt, true},
		{int64(1), TypeLong, true},
		{float32(1), TypeFloat, true},
		{float64(1), TypeDouble, true},
		{true, TypeByte, true},
		{[]byte{1}, TypeByteArray, true},
		{[]int32{1}, TypeIntArray, true},
		{[]int64{1}, TypeLongArray, true},
		{struct{}{}, 0, false},
		{map[int]int{}, 0, false},
	}
	for _, tc := range tests {
		n, ok := FromValue(tc.in)
		if ok != tc.ok {
			t.Errorf("FromValue(%T) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && n.Type != tc.typ {
			t.Errorf("FromValue(%T) type = %s, want %s", tc.in, n.Type, tc.typ)
		}
	}
}

func TestFromValueIdentity(t *testing.T) {
	n := FromString("x")
	got, ok := FromValue(n)
	if !ok || got != n {
		t.Errorf("FromValue on a node should return it as-is")
	}
}
