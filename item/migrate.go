package item

import (
	"sync"

	"github.com/nbtpath/go-nbtpath/ir"
)

// Migrate converts a single item compound between schema versions,
// picking the direction from the version pair. Items without a string
// id are left alone. Equal versions are a no-op.
func (r *Resolver) Migrate(compound *ir.Node, from, to int) {
	if compound == nil || compound.Type != ir.TypeCompound || from == to {
		return
	}
	idNode := compound.Get("id")
	if idNode == nil || idNode.Type != ir.TypeString {
		return
	}
	id := idNode.Str
	tag := compound.Get("tag")
	if from < to {
		r.Upgrade(compound, id, tag, from, to)
	} else {
		r.Downgrade(compound, id, tag, from, to)
	}
}

// MigrateAll converts every item for which keep answers true, one
// goroutine per item. A nil keep converts everything. Items are
// mutated in place; distinct items share only the resolver's
// translation cache, so concurrent conversion is safe as long as the
// same compound does not appear twice.
func (r *Resolver) MigrateAll(items []*ir.Node, from, to int, keep func(*ir.Node) bool) {
	var wg sync.WaitGroup
	for _, it := range items {
		if keep != nil && !keep(it) {
			continue
		}
		wg.Add(1)
		go func(n *ir.Node) {
			defer wg.Done()
			r.Migrate(n, from, to)
		}(it)
	}
	wg.Wait()
}
