// Package gomap provides conversion between plain Go values and tag
// nodes.
//
// # Usage
//
//	// Go value to node
//	node := gomap.Default.ToNode(map[string]any{
//	    "id":    "minecraft:stone",
//	    "Count": int8(1),
//	})
//
//	// node back to a Go value
//	v := gomap.Default.FromNode(node)
//
// The conversion is structural: string-keyed maps become Compounds,
// sequences become Lists, everything else must be one of the leaf
// primitives. Custom object serialization is layered on top by the
// root package's editor.
//
// # Related Packages
//
//   - github.com/nbtpath/go-nbtpath/ir - node representation
//   - github.com/nbtpath/go-nbtpath - path engine and serializer registry
package gomap
