package encode

import (
	"testing"

	"github.com/nbtpath/go-nbtpath/ir"
)

type encodeTest struct {
	Name string
	Node *ir.Node
	Want string
}

func itemNode() *ir.Node {
	c := ir.NewCompound()
	c.Set("id", ir.FromString("minecraft:skull"))
	c.Set("Count", ir.FromByte(1))
	c.Set("Damage", ir.FromShort(1))
	return c
}

var encodeTests = []encodeTest{
	{
		Name: "leaves",
		Node: func() *ir.Node {
			c := ir.NewCompound()
			c.Set("b", ir.FromByte(-1))
			c.Set("s", ir.FromShort(2))
			c.Set("i", ir.FromInt(3))
			c.Set("l", ir.FromLong(4))
			c.Set("f", ir.FromFloat(1.5))
			c.Set("d", ir.FromDouble(2.5))
			c.Set("str", ir.FromString("hi"))
			return c
		}(),
		Want: `{b:-1b,s:2s,i:3,l:4L,f:1.5f,d:2.5d,str:"hi"}`,
	},
	{
		Name: "item",
		Node: itemNode(),
		Want: `{id:"minecraft:skull",Count:1b,Damage:1s}`,
	},
	{
		Name: "arrays",
		Node: func() *ir.Node {
			c := ir.NewCompound()
			c.Set("ba", ir.FromByteArray([]byte{1, 2}))
			c.Set("ia", ir.FromIntArray([]int32{3}))
			c.Set("la", ir.FromLongArray([]int64{4, 5}))
			return c
		}(),
		Want: `{ba:[B;1b,2b],ia:[I;3],la:[L;4L,5L]}`,
	},
	{
		Name: "list nesting",
		Node: func() *ir.Node {
			l := ir.NewList()
			inner := ir.NewCompound()
			inner.Set("k", ir.FromInt(1))
			l.Append(inner)
			l.Append(ir.FromString("x"))
			return l
		}(),
		Want: `[{k:1},"x"]`,
	},
	{
		Name: "quoted key",
		Node: func() *ir.Node {
			c := ir.NewCompound()
			c.Set("rtag==", ir.FromString("t"))
			return c
		}(),
		Want: `{"rtag==":"t"}`,
	},
	{
		Name: "empty compound",
		Node: ir.NewCompound(),
		Want: `{}`,
	},
	{
		Name: "nil",
		Node: nil,
		Want: "null",
	},
}

func TestEncode(t *testing.T) {
	for _, tc := range encodeTests {
		t.Run(tc.Name, func(t *testing.T) {
			got := MustString(tc.Node)
			if got != tc.Want {
				t.Errorf("got %s, want %s", got, tc.Want)
			}
		})
	}
}

func TestEncodeIndent(t *testing.T) {
	got := MustString(itemNode(), EncodeIndent(2))
	want := "{\n  id: \"minecraft:skull\",\n  Count: 1b,\n  Damage: 1s\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestJSONBytes(t *testing.T) {
	c := ir.NewCompound()
	c.Set("i", ir.FromInt(3))
	d, err := JSONBytes(c)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"i":3}` {
		t.Errorf("got %s", d)
	}
}
