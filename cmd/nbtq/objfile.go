package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/nbtpath/go-nbtpath/encode"
	"github.com/nbtpath/go-nbtpath/gomap"
	"github.com/nbtpath/go-nbtpath/ir"
)

// readDoc loads an item document from a JSON or YAML file, picking
// the decoder by extension. "-" reads stdin as YAML, which also
// covers JSON input.
func readDoc(file string) (*ir.Node, error) {
	var (
		r   io.Reader = os.Stdin
		ext           = ".yaml"
	)
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
		ext = filepath.Ext(file)
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	var v any
	switch ext {
	case ".json":
		err = json.Unmarshal(in, &v)
	default:
		err = yaml.Unmarshal(in, &v)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", file, err)
	}
	node, err := gomap.Default.Convert(v)
	if err != nil {
		return nil, fmt.Errorf("error converting %q: %w", file, err)
	}
	return node, nil
}

// items flattens a document into item compounds: a list yields its
// elements, anything else is a single item.
func items(doc *ir.Node) []*ir.Node {
	if doc != nil && doc.Type == ir.TypeList {
		res := make([]*ir.Node, 0, doc.Len())
		for i := 0; i < doc.Len(); i++ {
			res = append(res, doc.At(i))
		}
		return res
	}
	return []*ir.Node{doc}
}

func writeDoc(cfg *MainConfig, w io.Writer, doc *ir.Node) error {
	if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

// parsePath turns "tag.pages[0].text" into path segments: names
// become Compound keys and bracketed numbers become List indices.
func parsePath(s string) ([]any, error) {
	var path []any
	for _, part := range strings.Split(s, ".") {
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				if part != "" {
					path = append(path, part)
				}
				break
			}
			if name := part[:open]; name != "" {
				path = append(path, name)
			}
			end := strings.IndexByte(part, ']')
			if end < open {
				return nil, fmt.Errorf("%w: unbalanced brackets in %q", cli.ErrUsage, s)
			}
			idx, err := strconv.Atoi(part[open+1 : end])
			if err != nil {
				return nil, fmt.Errorf("%w: index in %q: %v", cli.ErrUsage, s, err)
			}
			path = append(path, idx)
			part = part[end+1:]
		}
	}
	return path, nil
}

// parseValue decodes a command line value argument. YAML covers the
// scalars and inline maps/lists we care about.
func parseValue(s string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("%w: value %q: %v", cli.ErrUsage, s, err)
	}
	return v, nil
}
