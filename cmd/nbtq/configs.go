package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/nbtpath/go-nbtpath/encode"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='indent output by n spaces'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type RmConfig struct {
	*MainConfig

	Rm *cli.Command
}

type MigrateConfig struct {
	*MainConfig
	Table    string `cli:"name=table desc='material name table (yaml)'"`
	From     int    `cli:"name=from desc='source schema version'"`
	To       int    `cli:"name=to desc='target schema version'"`
	Filter   string `cli:"name=filter desc='only convert items matching this expression'"`
	Default  string `cli:"name=default desc='placeholder material for unresolvable ids'"`
	CacheTTL time.Duration

	Migrate *cli.Command
}

func (cfg *MigrateConfig) mkCacheTTL() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.CacheTTL = d
		return d, nil
	}
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
