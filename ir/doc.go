// Package ir is the tag node representation: a closed union of leaf,
// List and Compound variants over the ten NBT-style primitive kinds.
//
// # Usage
//
//	item := ir.NewCompound()
//	item.Set("id", ir.FromString("minecraft:stone"))
//	item.Set("Count", ir.FromByte(1))
//
//	copy := item.Clone()
//
// Every operation is total over nodes produced by this package:
// shape-mismatched calls return nil or false instead of panicking.
//
// # Related Packages
//
//   - github.com/nbtpath/go-nbtpath - path-addressed get/set/add/remove
//   - github.com/nbtpath/go-nbtpath/gomap - Go value <-> node conversion
package ir
