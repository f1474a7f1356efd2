package nbtpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nbtpath/go-nbtpath/ir"
)

type setGetTest struct {
	Name  string
	Path  []any
	Value any
	Want  any // expected Get result; nil means same as Value
}

var setGetTests = []setGetTest{
	{
		Name:  "flat string",
		Path:  []any{"id"},
		Value: "minecraft:stone",
	},
	{
		Name:  "nested create-on-write",
		Path:  []any{"tag", "display", "Name"},
		Value: "Excalibur",
	},
	{
		Name:  "int leaf",
		Path:  []any{"tag", "Damage"},
		Value: int32(7),
	},
	{
		Name:  "list created for index-follow",
		Path:  []any{"tag", "pages", 0},
		Value: "first",
		Want:  nil, // see TestSetListIndex; index 0 into fresh list fails
	},
	{
		Name:  "map value",
		Path:  []any{"tag", "display"},
		Value: map[string]any{"Name": "x", "Lore": []any{"l1"}},
	},
	{
		Name:  "array leaf",
		Path:  []any{"tag", "colors"},
		Value: []int32{1, 2, 3},
	},
}

func TestSetGetRoundTrip(t *testing.T) {
	for _, tc := range setGetTests {
		t.Run(tc.Name, func(t *testing.T) {
			e := NewEditor()
			root := ir.NewCompound()
			ok := e.Set(root, tc.Value, tc.Path...)
			want := tc.Want
			if want == nil {
				want = tc.Value
			}
			if tc.Name == "list created for index-follow" {
				// a fresh list is empty, so a replace at index 0 fails
				if ok {
					t.Fatalf("Set into empty list index should fail")
				}
				return
			}
			if !ok {
				t.Fatalf("Set failed")
			}
			got := e.Get(root, tc.Path...)
			if d := cmp.Diff(want, got); d != "" {
				t.Errorf("round trip (-want +got):\n%s", d)
			}
		})
	}
}

func TestAddThenSetIndex(t *testing.T) {
	e := NewEditor()
	root := ir.NewCompound()
	if !e.Add(root, "first", "tag", "pages") {
		t.Fatalf("Add failed")
	}
	if !e.Add(root, "second", "tag", "pages") {
		t.Fatalf("second Add failed")
	}
	if !e.Set(root, "SECOND", "tag", "pages", 1) {
		t.Fatalf("Set at index failed")
	}
	got, ok := GetAs[string](e, root, "tag", "pages", 1)
	if !ok || got != "SECOND" {
		t.Errorf("pages[1] = %q, %v", got, ok)
	}
	// out of range is a miss, not a panic
	if v := e.GetExact(root, "tag", "pages", 5); v != nil {
		t.Errorf("out of range index should miss")
	}
}

func TestAddEmptyPath(t *testing.T) {
	e := NewEditor()
	for _, root := range []*ir.Node{ir.NewCompound(), ir.NewList()} {
		if e.Add(root, "x") {
			t.Errorf("Add with empty path must fail for %s root", root.Type)
		}
	}
}

func TestSetNilIsRemove(t *testing.T) {
	e := NewEditor()
	root := ir.NewCompound()
	e.Set(root, "v", "a", "b")
	if !e.Set(root, nil, "a", "b") {
		t.Fatalf("remove via nil failed")
	}
	if e.GetExact(root, "a", "b") != nil {
		t.Errorf("value still present")
	}
	// removing through a missing path creates nothing
	if e.Set(root, nil, "missing", "deep") {
		t.Errorf("remove through missing path should fail")
	}
	if root.Has("missing") {
		t.Errorf("remove must not create containers")
	}
}

func TestRemoveExactIdempotent(t *testing.T) {
	e := NewEditor()
	c := ir.NewCompound()
	c.Set("k", ir.FromInt(1))
	if !e.RemoveExact(c, "k") {
		t.Fatalf("first remove failed")
	}
	if !e.RemoveExact(c, "k") {
		t.Errorf("second remove should still report true")
	}
	if c.Len() != 0 {
		t.Errorf("container changed unexpectedly")
	}
	if e.RemoveExact(ir.FromInt(1), "k") {
		t.Errorf("remove on a leaf should report false")
	}
}

func TestIncompatibleShapes(t *testing.T) {
	e := NewEditor()
	root := ir.NewCompound()
	root.Set("leaf", ir.FromInt(1))
	if v := e.GetExact(root, "leaf", "deeper"); v != nil {
		t.Errorf("descending through a leaf should miss")
	}
	if e.Set(root, "x", "leaf", "deeper") {
		t.Errorf("set through a leaf should fail")
	}
	if e.SetExact(ir.FromInt(1), "x", "k") {
		t.Errorf("SetExact on a leaf should fail")
	}
	// unconvertible value leaves the container unmodified
	c := ir.NewCompound()
	if e.SetExact(c, make(chan int), "k") {
		t.Errorf("unconvertible value should fail")
	}
	if c.Len() != 0 {
		t.Errorf("container modified on failed set")
	}
}

func TestSetIntKeyOnCompound(t *testing.T) {
	e := NewEditor()
	c := ir.NewCompound()
	if !e.SetExact(c, "v", 3) {
		t.Fatalf("int key against a compound stores under its string form")
	}
	if got, ok := GetAs[string](e, c, "3"); !ok || got != "v" {
		t.Errorf("key \"3\" = %q, %v", got, ok)
	}
}

func TestCreateOnWritePicksContainer(t *testing.T) {
	e := NewEditor()
	root := ir.NewCompound()
	if !e.Add(root, int32(9), "a", "b") {
		t.Fatalf("Add failed")
	}
	if n := e.GetExact(root, "a"); n == nil || n.Type != ir.TypeCompound {
		t.Errorf("intermediate should be a compound")
	}
	if n := e.GetExact(root, "a", "b"); n == nil || n.Type != ir.TypeList {
		t.Errorf("add target should be a list")
	}
}
