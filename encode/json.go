package encode

import (
	"encoding/json"
	"io"

	"github.com/nbtpath/go-nbtpath/gomap"
	"github.com/nbtpath/go-nbtpath/ir"
)

// EncodeJSON writes a plain JSON view of node. The view is lossy:
// numeric widths collapse to JSON numbers and byte arrays become
// base64 strings. It exists for interop with JSON tooling (diffs,
// RFC 6902 patches), not as a storage format.
func EncodeJSON(node *ir.Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(gomap.Default.FromNode(node))
}

// JSONBytes is EncodeJSON into a byte slice.
func JSONBytes(node *ir.Node) ([]byte, error) {
	return json.Marshal(gomap.Default.FromNode(node))
}
