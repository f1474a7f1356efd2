package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/nbtpath/go-nbtpath/ir"
)

type EncState struct {
	depth  int
	indent int // 0 encodes compact, single line

	colorAttr ColorAttr
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes node as SNBT-style text: compounds as {key:value},
// lists as [a,b], leaves with their kind suffix (1b, 1s, 1L, 1.5f,
// 1.5d) and typed arrays as [B;..], [I;..], [L;..].
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return writeString(w, es.color(ir.TypeString, ValueColor, "null"))
	}
	switch node.Type {
	case ir.TypeCompound:
		return encodeCompound(node, w, es)
	case ir.TypeList:
		return encodeList(node, w, es)
	case ir.TypeByteArray:
		return encodeArray(w, es, "B", len(node.Bytes), func(i int) string {
			return strconv.FormatInt(int64(node.Bytes[i]), 10) + "b"
		})
	case ir.TypeIntArray:
		return encodeArray(w, es, "I", len(node.Ints), func(i int) string {
			return strconv.FormatInt(int64(node.Ints[i]), 10)
		})
	case ir.TypeLongArray:
		return encodeArray(w, es, "L", len(node.Longs), func(i int) string {
			return strconv.FormatInt(node.Longs[i], 10) + "L"
		})
	default:
		return writeString(w, es.color(node.Type, ValueColor, leafString(node)))
	}
}

func leafString(node *ir.Node) string {
	switch node.Type {
	case ir.TypeString:
		return quote(node.Str)
	case ir.TypeByte:
		return strconv.FormatInt(int64(node.Byte), 10) + "b"
	case ir.TypeShort:
		return strconv.FormatInt(int64(node.Short), 10) + "s"
	case ir.TypeInt:
		return strconv.FormatInt(int64(node.Int), 10)
	case ir.TypeLong:
		return strconv.FormatInt(node.Long, 10) + "L"
	case ir.TypeFloat:
		return strconv.FormatFloat(float64(node.Float), 'g', -1, 32) + "f"
	case ir.TypeDouble:
		return strconv.FormatFloat(node.Double, 'g', -1, 64) + "d"
	default:
		return ""
	}
}

func encodeCompound(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es.color(ir.TypeCompound, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	keys := node.Keys()
	for i, k := range keys {
		if i > 0 {
			if err := writeString(w, es.color(ir.TypeCompound, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeBreak(w, es); err != nil {
			return err
		}
		if err := writeString(w, es.color(ir.TypeCompound, FieldColor, fieldString(k))); err != nil {
			return err
		}
		if err := writeString(w, es.color(ir.TypeCompound, SepColor, ":")); err != nil {
			return err
		}
		if es.indent > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encode(node.Get(k), w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(keys) > 0 {
		if err := writeBreak(w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.color(ir.TypeCompound, SepColor, "}"))
}

func encodeList(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es.color(ir.TypeList, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i := 0; i < node.Len(); i++ {
		if i > 0 {
			if err := writeString(w, es.color(ir.TypeList, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeBreak(w, es); err != nil {
			return err
		}
		if err := encode(node.At(i), w, es); err != nil {
			return err
		}
	}
	es.depth--
	if node.Len() > 0 {
		if err := writeBreak(w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.color(ir.TypeList, SepColor, "]"))
}

func encodeArray(w io.Writer, es *EncState, prefix string, n int, elem func(int) string) error {
	t := map[string]ir.Type{"B": ir.TypeByteArray, "I": ir.TypeIntArray, "L": ir.TypeLongArray}[prefix]
	if err := writeString(w, es.color(t, SepColor, "["+prefix+";")); err != nil {
		return err
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = es.color(t, ValueColor, elem(i))
	}
	sep := es.color(t, SepColor, ",")
	if err := writeString(w, strings.Join(parts, sep)); err != nil {
		return err
	}
	return writeString(w, es.color(t, SepColor, "]"))
}

// fieldString leaves simple keys bare and quotes the rest.
func fieldString(k string) string {
	if k == "" {
		return quote(k)
	}
	for _, r := range k {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == '-', r == '.', r == '+':
		default:
			return quote(k)
		}
	}
	return k
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeBreak(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
