package gomap

import (
	"fmt"

	"github.com/nbtpath/go-nbtpath/debug"
	"github.com/nbtpath/go-nbtpath/ir"
)

// ConvertError reports a value with no node representation. The core
// conversion API surfaces this as a nil node; Convert wraps the same
// outcome as an error for callers that need one (the CLI does).
type ConvertError struct {
	Value   any
	Message string
}

func (e *ConvertError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("convert error: %s", e.Message)
	}
	return fmt.Sprintf("convert error: unsupported value of type %T", e.Value)
}

// Convert is the error-returning form of ToNode.
func (m *Mirror) Convert(v any) (*ir.Node, error) {
	n := m.ToNode(v)
	if n == nil && v != nil {
		if debug.Convert() {
			debug.Logf("gomap: unconvertible %T: ", v)
			debug.LogAny(v)
		}
		return nil, &ConvertError{Value: v}
	}
	return n, nil
}
