package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/nbtpath/go-nbtpath/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	}

	able := Colorable{Attr: ValueColor}
	able.Type = ir.TypeString
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	for _, t := range []ir.Type{
		ir.TypeByte, ir.TypeShort, ir.TypeInt, ir.TypeLong,
		ir.TypeFloat, ir.TypeDouble,
		ir.TypeByteArray, ir.TypeIntArray, ir.TypeLongArray,
	} {
		able.Type = t
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
