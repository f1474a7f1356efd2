package main

import (
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/nbtpath/go-nbtpath/encode"
	"github.com/nbtpath/go-nbtpath/gomap"
)

// patch applies an RFC 6902 patch against the document's JSON view.
// The JSON round trip widens numeric tags, so patched leaves come
// back with default widths.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch <file> <patchfile>", cli.ErrUsage)
	}
	doc, err := readDoc(args[0])
	if err != nil {
		return err
	}
	rawPatch, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", args[1], err)
	}
	p, err := jsonpatch.DecodePatch(rawPatch)
	if err != nil {
		return fmt.Errorf("error decoding patch %q: %w", args[1], err)
	}

	docJSON, err := encode.JSONBytes(doc)
	if err != nil {
		return err
	}
	patched, err := p.Apply(docJSON)
	if err != nil {
		return fmt.Errorf("error applying patch: %w", err)
	}
	var v any
	if err := json.Unmarshal(patched, &v); err != nil {
		return err
	}
	res, err := gomap.Default.Convert(v)
	if err != nil {
		return err
	}
	return writeDoc(cfg.MainConfig, cc.Out, res)
}
