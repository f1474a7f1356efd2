package ir

// Node is a tag tree element: a leaf holding one primitive, a List
// holding an ordered sequence of nodes, or a Compound holding a
// string-keyed mapping of nodes. The variant is selected by Type and
// only the fields of that variant are meaningful.
//
// A node belongs to at most one container. Attaching happens only via
// Set, SetAt and Append, so trees are acyclic by construction.
type Node struct {
	Type Type

	// Compound state. keys preserves insertion order.
	keys   []string
	fields map[string]*Node

	// List state.
	Values []*Node

	// Leaf state.
	Str    string
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	Bytes  []byte
	Ints   []int32
	Longs  []int64
}

func NewCompound() *Node {
	return &Node{
		Type:   TypeCompound,
		fields: map[string]*Node{},
	}
}

func NewList() *Node {
	return &Node{Type: TypeList}
}

func FromString(v string) *Node  { return &Node{Type: TypeString, Str: v} }
func FromByte(v int8) *Node      { return &Node{Type: TypeByte, Byte: v} }
func FromShort(v int16) *Node    { return &Node{Type: TypeShort, Short: v} }
func FromInt(v int32) *Node      { return &Node{Type: TypeInt, Int: v} }
func FromLong(v int64) *Node     { return &Node{Type: TypeLong, Long: v} }
func FromFloat(v float32) *Node  { return &Node{Type: TypeFloat, Float: v} }
func FromDouble(v float64) *Node { return &Node{Type: TypeDouble, Double: v} }

func FromBool(v bool) *Node {
	if v {
		return FromByte(1)
	}
	return FromByte(0)
}

func FromByteArray(v []byte) *Node  { return &Node{Type: TypeByteArray, Bytes: v} }
func FromIntArray(v []int32) *Node  { return &Node{Type: TypeIntArray, Ints: v} }
func FromLongArray(v []int64) *Node { return &Node{Type: TypeLongArray, Longs: v} }

// FromValue wraps a supported Go primitive as a leaf node. It reports
// false for values with no leaf representation; containers and
// arbitrary structs are the business of gomap, not this package.
func FromValue(v any) (*Node, bool) {
	switch x := v.(type) {
	case *Node:
		return x, true
	case string:
		return FromString(x), true
	case bool:
		return FromBool(x), true
	case int8:
		return FromByte(x), true
	case int16:
		return FromShort(x), true
	case int32:
		return FromInt(x), true
	case int:
		return FromInt(int32(x)), true
	case int64:
		return FromLong(x), true
	case uint8:
		return FromShort(int16(x)), true
	case uint16:
		return FromInt(int32(x)), true
	case uint32:
		return FromLong(int64(x)), true
	case uint:
		return FromLong(int64(x)), true
	case uint64:
		// YAML decoders hand positive integers over unsigned
		return FromLong(int64(x)), true
	case float32:
		return FromFloat(x), true
	case float64:
		return FromDouble(x), true
	case []byte:
		return FromByteArray(x), true
	case []int32:
		return FromIntArray(x), true
	case []int64:
		return FromLongArray(x), true
	}
	return nil, false
}

// Get returns the value under key, or nil if y is not a Compound or
// the key is absent.
func (y *Node) Get(key string) *Node {
	if y == nil || y.Type != TypeCompound {
		return nil
	}
	return y.fields[key]
}

// Set inserts or overwrites the value under key. It is a no-op on
// non-Compound nodes.
func (y *Node) Set(key string, v *Node) {
	if y.Type != TypeCompound {
		return
	}
	if y.fields == nil {
		y.fields = map[string]*Node{}
	}
	if _, present := y.fields[key]; !present {
		y.keys = append(y.keys, key)
	}
	y.fields[key] = v
}

// Remove deletes key from a Compound. Removing an absent key is fine.
func (y *Node) Remove(key string) {
	if y.Type != TypeCompound {
		return
	}
	if _, present := y.fields[key]; !present {
		return
	}
	delete(y.fields, key)
	for i, k := range y.keys {
		if k == key {
			y.keys = append(y.keys[:i], y.keys[i+1:]...)
			break
		}
	}
}

func (y *Node) Has(key string) bool {
	if y == nil || y.Type != TypeCompound {
		return false
	}
	_, present := y.fields[key]
	return present
}

// Keys returns the Compound keys in insertion order.
func (y *Node) Keys() []string {
	if y == nil || y.Type != TypeCompound {
		return nil
	}
	res := make([]string, len(y.keys))
	copy(res, y.keys)
	return res
}

// Len is the number of entries of a Compound or elements of a List,
// and 0 for leaves.
func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	switch y.Type {
	case TypeCompound:
		return len(y.keys)
	case TypeList:
		return len(y.Values)
	default:
		return 0
	}
}

// At returns the i-th element of a List, or nil when out of range.
func (y *Node) At(i int) *Node {
	if y == nil || y.Type != TypeList || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// SetAt replaces the i-th element of a List. This is a replace, not an
// insert: it reports false when i is out of range.
func (y *Node) SetAt(i int, v *Node) bool {
	if y.Type != TypeList || i < 0 || i >= len(y.Values) {
		return false
	}
	y.Values[i] = v
	return true
}

// RemoveAt removes the i-th element of a List. Out of range indices
// are a no-op.
func (y *Node) RemoveAt(i int) {
	if y.Type != TypeList || i < 0 || i >= len(y.Values) {
		return
	}
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
}

func (y *Node) Append(v *Node) {
	if y.Type != TypeList {
		return
	}
	y.Values = append(y.Values, v)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{}
	return y.CloneTo(res)
}

// CloneTo deep-copies y into dst. Array leaves are copied by value,
// never aliased, since the backing slices are mutable.
func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	switch y.Type {
	case TypeCompound:
		dst.keys = make([]string, len(y.keys))
		copy(dst.keys, y.keys)
		dst.fields = make(map[string]*Node, len(y.fields))
		for k, v := range y.fields {
			dst.fields[k] = v.Clone()
		}
	case TypeList:
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	case TypeByteArray:
		dst.Bytes = append([]byte(nil), y.Bytes...)
	case TypeIntArray:
		dst.Ints = append([]int32(nil), y.Ints...)
	case TypeLongArray:
		dst.Longs = append([]int64(nil), y.Longs...)
	default:
		dst.Str = y.Str
		dst.Byte = y.Byte
		dst.Short = y.Short
		dst.Int = y.Int
		dst.Long = y.Long
		dst.Float = y.Float
		dst.Double = y.Double
	}
	return dst
}

// Value unwraps a leaf into its Go primitive. Array leaves return a
// copy of the backing slice. Containers and nil return nil.
func (y *Node) Value() any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case TypeString:
		return y.Str
	case TypeByte:
		return y.Byte
	case TypeShort:
		return y.Short
	case TypeInt:
		return y.Int
	case TypeLong:
		return y.Long
	case TypeFloat:
		return y.Float
	case TypeDouble:
		return y.Double
	case TypeByteArray:
		return append([]byte(nil), y.Bytes...)
	case TypeIntArray:
		return append([]int32(nil), y.Ints...)
	case TypeLongArray:
		return append([]int64(nil), y.Longs...)
	default:
		return nil
	}
}

// Visit walks the tree pre- and post-order, diving into containers
// while f returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		switch y.Type {
		case TypeList:
			for _, yy := range y.Values {
				if err := yy.Visit(f); err != nil {
					return err
				}
			}
		case TypeCompound:
			for _, k := range y.keys {
				if err := y.fields[k].Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
