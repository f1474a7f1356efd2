// Package nbtpath edits Compound and List tag nodes through tree-like
// paths instead of hand-walking nested containers.
//
// A path is a sequence of segments. String segments select Compound
// keys, int segments select List indices:
//
//	e := nbtpath.Default
//	e.Set(item, 3, "tag", "Damage")
//	dmg, ok := nbtpath.GetAs[int32](e, item, "tag", "Damage")
//
// Values cross the boundary through the gomap mirror; application
// types with a registered Serializer/Deserializer pair are written
// with a reserved discriminator key so they come back as themselves.
//
// Absent paths, shape mismatches and unconvertible values are routine
// conditions and surface as nil or false, never as panics.
package nbtpath
