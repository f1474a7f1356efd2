package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/nbtpath/go-nbtpath/item"
	"github.com/nbtpath/go-nbtpath/item/filter"
)

func migrate(cfg *MigrateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Migrate.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Table == "" {
		return fmt.Errorf("%w: migrate needs -table", cli.ErrUsage)
	}
	if cfg.From == 0 || cfg.To == 0 {
		return fmt.Errorf("%w: migrate needs -from and -to", cli.ErrUsage)
	}
	data, err := os.ReadFile(cfg.Table)
	if err != nil {
		return fmt.Errorf("could not read table %q: %w", cfg.Table, err)
	}
	table, err := item.LoadTable(data)
	if err != nil {
		return err
	}

	var keep filter.Predicate
	if cfg.Filter != "" {
		keep, err = filter.Compile(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
	}

	opts := []item.ResolverOption{item.WithCacheTTL(cfg.CacheTTL)}
	if cfg.Default != "" {
		opts = append(opts, item.WithDefaultMaterial(cfg.Default))
	}
	r := item.NewResolver(table, opts...)
	defer r.Close()

	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		doc, err := readDoc(file)
		if err != nil {
			return err
		}
		r.MigrateAll(items(doc), cfg.From, cfg.To, keep)
		if err := writeDoc(cfg.MainConfig, cc.Out, doc); err != nil {
			return fmt.Errorf("error writing result for %q: %w", file, err)
		}
		if i < len(args)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
