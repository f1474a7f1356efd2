package main

import (
	"time"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "nbtq").
		WithSynopsis("nbtq [opts] command [opts]").
		WithDescription("nbtq is a tool for working with item tag documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nbtqMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			RmCommand(cfg),
			MigrateCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <file> [tagpath]").
		WithDescription("get a tag from an item document").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("set").
		WithAliases("s", "se").
		WithSynopsis("set <file> <tagpath> <value>").
		WithDescription("set a tag in an item document, creating the path").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("rm").
		WithSynopsis("rm <file> <tagpath>").
		WithDescription("remove a tag from an item document").
		WithRun(func(cc *cli.Context, args []string) error {
			return rm(cfg, cc, args)
		})
	cfg.Rm = cmd
	return cmd
}

func MigrateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MigrateConfig{MainConfig: mainCfg, CacheTTL: 3 * time.Hour}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "ttl",
		Description: "translation cache idle expiry",
		Type:        cli.NamedFuncOpt(cfg.mkCacheTTL(), "(duration)"),
	})
	cmd := cli.NewCommand("migrate").
		WithAliases("m", "mi").
		WithSynopsis("migrate -table <file> -from <n> -to <n> [-filter expr] [files]").
		WithDescription("convert item documents between schema versions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return migrate(cfg, cc, args)
		})
	cfg.Migrate = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff <file1> <file2>").
		WithDescription("diff two item documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch <file> <patchfile>").
		WithDescription("apply an RFC 6902 patch to an item document").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
