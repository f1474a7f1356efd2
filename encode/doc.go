// Package encode renders tag nodes as SNBT-style text.
//
// # Usage
//
//	// compact
//	s := encode.MustString(node)
//
//	// pretty, colored for a terminal
//	encode.Encode(node, os.Stdout,
//	    encode.EncodeIndent(2),
//	    encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/nbtpath/go-nbtpath/ir - node representation
package encode
