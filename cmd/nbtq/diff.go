package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nbtpath/go-nbtpath/encode"
	"github.com/nbtpath/go-nbtpath/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff <file1> <file2>", cli.ErrUsage)
	}
	a, err := readDoc(args[0])
	if err != nil {
		return err
	}
	b, err := readDoc(args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	return diffNodes(cfg, cc, a, b)
}

func diffNodes(cfg *DiffConfig, cc *cli.Context, a, b *ir.Node) error {
	// indented text keeps the diff line oriented
	indent := cfg.Indent
	if indent == 0 {
		indent = 2
	}
	at := encode.MustString(a, encode.EncodeIndent(indent))
	bt := encode.MustString(b, encode.EncodeIndent(indent))

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(at, bt, true)
	dmp.DiffCleanupSemantic(diffs)

	if diffColors(cfg, cc) {
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
		return nil
	}
	patches := dmp.PatchMake(at, diffs)
	fmt.Fprint(cc.Out, dmp.PatchToText(patches))
	return nil
}

func diffColors(cfg *DiffConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
