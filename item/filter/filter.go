// Package filter compiles item predicates from expression strings.
//
// Expressions see the item compound as plain values, so fields are
// addressed by their tag names:
//
//	id == "minecraft:skull" && Damage == 1
//	tag?.savedID != nil
//
// Missing fields read as nil rather than failing compilation, since
// item compounds are irregular across versions.
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nbtpath/go-nbtpath/gomap"
	"github.com/nbtpath/go-nbtpath/ir"
)

// Predicate reports whether an item compound matches. It is the keep
// function shape MigrateAll wants.
type Predicate func(*ir.Node) bool

// Compile builds a Predicate from an expression. Evaluation errors on
// a particular item make the predicate answer false for that item.
func Compile(src string) (Predicate, error) {
	prg, err := expr.Compile(src, compileOpts()...)
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", src, err)
	}
	return func(n *ir.Node) bool {
		env, ok := gomap.Default.FromNode(n).(map[string]any)
		if !ok {
			return false
		}
		res, err := vm.Run(prg, env)
		if err != nil {
			return false
		}
		b, _ := res.(bool)
		return b
	}, nil
}

func compileOpts() []expr.Option {
	return []expr.Option{
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}
}
