package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	nbtpath "github.com/nbtpath/go-nbtpath"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set <file> <tagpath> <value>", cli.ErrUsage)
	}
	doc, err := readDoc(args[0])
	if err != nil {
		return err
	}
	path, err := parsePath(args[1])
	if err != nil {
		return err
	}
	value, err := parseValue(args[2])
	if err != nil {
		return err
	}
	if !nbtpath.Default.Set(doc, value, path...) {
		return fmt.Errorf("could not set %q", args[1])
	}
	return writeDoc(cfg.MainConfig, cc.Out, doc)
}

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: rm <file> <tagpath>", cli.ErrUsage)
	}
	doc, err := readDoc(args[0])
	if err != nil {
		return err
	}
	path, err := parsePath(args[1])
	if err != nil {
		return err
	}
	if !nbtpath.Default.Set(doc, nil, path...) {
		return fmt.Errorf("could not remove %q", args[1])
	}
	return writeDoc(cfg.MainConfig, cc.Out, doc)
}
