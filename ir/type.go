package ir

import "fmt"

type Type int

const (
	TypeByte Type = iota
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeString
	TypeByteArray
	TypeIntArray
	TypeLongArray
	TypeList
	TypeCompound
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TypeByte:      "Byte",
		TypeShort:     "Short",
		TypeInt:       "Int",
		TypeLong:      "Long",
		TypeFloat:     "Float",
		TypeDouble:    "Double",
		TypeString:    "String",
		TypeByteArray: "ByteArray",
		TypeIntArray:  "IntArray",
		TypeLongArray: "LongArray",
		TypeList:      "List",
		TypeCompound:  "Compound",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Byte":      TypeByte,
		"Short":     TypeShort,
		"Int":       TypeInt,
		"Long":      TypeLong,
		"Float":     TypeFloat,
		"Double":    TypeDouble,
		"String":    TypeString,
		"ByteArray": TypeByteArray,
		"IntArray":  TypeIntArray,
		"LongArray": TypeLongArray,
		"List":      TypeList,
		"Compound":  TypeCompound,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		TypeByte,
		TypeShort,
		TypeInt,
		TypeLong,
		TypeFloat,
		TypeDouble,
		TypeString,
		TypeByteArray,
		TypeIntArray,
		TypeLongArray,
		TypeList,
		TypeCompound,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case TypeList, TypeCompound:
		return false
	default:
		return true
	}
}
