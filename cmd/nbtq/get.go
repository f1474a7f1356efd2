package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	nbtpath "github.com/nbtpath/go-nbtpath"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: get <file> [tagpath]", cli.ErrUsage)
	}
	doc, err := readDoc(args[0])
	if err != nil {
		return err
	}
	node := doc
	if len(args) == 2 {
		path, err := parsePath(args[1])
		if err != nil {
			return err
		}
		node = nbtpath.Default.GetExact(doc, path...)
		if node == nil {
			return fmt.Errorf("no tag at %q", args[1])
		}
	}
	return writeDoc(cfg.MainConfig, cc.Out, node)
}
