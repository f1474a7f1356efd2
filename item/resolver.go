package item

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	nbtpath "github.com/nbtpath/go-nbtpath"
	"github.com/nbtpath/go-nbtpath/debug"
	"github.com/nbtpath/go-nbtpath/ir"
)

// noEquivalent is the cached sentinel for "this material does not
// exist in the target version".
const noEquivalent = "null"

// flatVersion is the first schema version with namespaced identifiers
// and damage stored inside the nested data tag.
const flatVersion = 13

// Resolver converts item material identifiers across schema versions.
// Translations are memoized in an idle-expiry cache; a Resolver is
// safe for concurrent use.
type Resolver struct {
	table           *MaterialTable
	editor          *nbtpath.Editor
	cache           *ttlcache.Cache[string, string]
	defaultMaterial string
}

type ResolverOption func(*Resolver)

// WithCacheTTL sets the idle expiry of translation entries. The
// default is 3 hours.
func WithCacheTTL(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.cache = ttlcache.New[string, string](
			ttlcache.WithTTL[string, string](d),
		)
	}
}

// WithDefaultMaterial sets the placeholder identifier used when a
// material has no equivalent in the target version. It must name a
// material the table knows; unknown values fall back to
// "minecraft:paper", and when even that is unknown the placeholder
// rewrite is disabled.
func WithDefaultMaterial(id string) ResolverOption {
	return func(r *Resolver) {
		r.defaultMaterial = id
	}
}

// WithEditor sets the tag editor used for nested reads and writes.
func WithEditor(e *nbtpath.Editor) ResolverOption {
	return func(r *Resolver) {
		r.editor = e
	}
}

func NewResolver(table *MaterialTable, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		table:           table,
		editor:          nbtpath.Default,
		defaultMaterial: "minecraft:paper",
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cache == nil {
		r.cache = ttlcache.New[string, string](
			ttlcache.WithTTL[string, string](3 * time.Hour),
		)
	}
	if !table.Has(r.defaultMaterial) {
		if table.Has("minecraft:paper") {
			r.defaultMaterial = "minecraft:paper"
		} else {
			r.defaultMaterial = ""
		}
	}
	go r.cache.Start()
	return r
}

// Close stops the cache eviction loop.
func (r *Resolver) Close() {
	r.cache.Stop()
}

// Upgrade rewrites compound in place from an older version to a newer
// one. tag is the item's nested data tag, nil when absent.
func (r *Resolver) Upgrade(compound *ir.Node, id string, tag *ir.Node, from, to int) {
	if tag != nil {
		r.ResolveSaved(compound, id, r.Damage(compound, tag, from), tag, from, to)
	} else {
		r.ResolveMaterial(compound, id, r.Damage(compound, nil, from), nil, from, to)
	}
}

// Downgrade rewrites compound in place from a newer version to an
// older one. Potions at version 8 and below keep their own encoding
// and are handled by a separate resolver, so they pass through here.
func (r *Resolver) Downgrade(compound *ir.Node, id string, tag *ir.Node, from, to int) {
	if to <= 8 && id == "minecraft:potion" {
		return
	}
	r.Upgrade(compound, id, tag, from, to)
}

// ResolveSaved retries a previously saved identifier first: a lossy
// downgrade leaves the original composite key under tag.savedID, and
// a later conversion may land on a version that supports it again.
func (r *Resolver) ResolveSaved(compound *ir.Node, id string, damage int, tag *ir.Node, from, to int) {
	if saved, ok := nbtpath.GetAs[string](r.editor, tag, "savedID"); ok {
		material := r.Translate(saved, from, to)
		if material != noEquivalent {
			r.ResolveItem(compound, material, tag, from, to)
		}
		return
	}
	r.ResolveMaterial(compound, id, damage, tag, from, to)
}

// ResolveMaterial translates the item's composite key and applies the
// result. Unresolvable materials become the configured placeholder
// with the original key preserved under tag.savedID.
func (r *Resolver) ResolveMaterial(compound *ir.Node, id string, damage int, tag *ir.Node, from, to int) {
	var material string
	isEgg := from >= 9 && from <= 12 && strings.EqualFold(id, "minecraft:spawn_egg")
	if isEgg {
		material = id + "=" + r.EggEntity(compound, from)
	} else if damage > 0 {
		material = id + ":" + strconv.Itoa(damage)
	} else {
		material = id
	}

	newMaterial := r.Translate(material, from, to)
	if newMaterial == material {
		return
	}
	if isEgg && (to >= flatVersion || to <= 8) {
		compound.Remove("EntityTag")
	}
	if newMaterial == noEquivalent {
		if r.defaultMaterial == "" {
			return
		}
		compound.Set("id", ir.FromString(r.defaultMaterial))
		r.editor.Set(compound, material, "tag", "savedID")
		r.SetDamage(compound, tag, 0, from, to)
		return
	}
	r.ResolveItem(compound, newMaterial, tag, from, to)
}

// ResolveItem writes a translated composite key back into the item:
// "name=entity" restores the entity sub-tag, "name:damage" sets
// damage, a bare name sets only the identifier.
func (r *Resolver) ResolveItem(compound *ir.Node, material string, tag *ir.Node, from, to int) {
	material = strings.TrimPrefix(material, "minecraft:")
	var name string
	if strings.HasPrefix(material, "spawn_egg=") {
		split := strings.SplitN(material, "=", 2)
		name = split[0]
		r.editor.Set(compound, split[1], "EntityTag", "id")
	} else {
		split := strings.SplitN(material, ":", 2)
		name = split[0]
		damage := 0
		if len(split) > 1 {
			damage, _ = strconv.Atoi(split[1])
		}
		r.SetDamage(compound, tag, damage, from, to)
	}
	compound.Set("id", ir.FromString("minecraft:"+name))
}

// SetDamage writes damage in the target version's representation: an
// Int at tag.Damage for flat versions, a Short directly on the item
// for legacy ones. The stale field from the source representation is
// removed so round trips do not leak.
func (r *Resolver) SetDamage(compound, tag *ir.Node, damage, from, to int) {
	if to >= flatVersion {
		if from < flatVersion {
			compound.Remove("Damage")
		}
		r.editor.Set(compound, damage, "tag", "Damage")
		return
	}
	if tag != nil && from >= flatVersion {
		tag.Remove("Damage")
	}
	compound.Set("Damage", ir.FromShort(int16(damage)))
}

// Damage reads the item's damage for its version, tolerating odd leaf
// types. Missing or unparseable damage reads as 0.
func (r *Resolver) Damage(compound, tag *ir.Node, version int) int {
	var n *ir.Node
	if version < flatVersion {
		// legacy versions keep Damage outside the data tag
		n = compound.Get("Damage")
	} else if tag != nil {
		n = tag.Get("Damage")
	}
	if n == nil {
		return 0
	}
	switch n.Type {
	case ir.TypeShort:
		return int(n.Short)
	case ir.TypeInt:
		return int(n.Int)
	default:
		if v, err := strconv.Atoi(fmt.Sprint(n.Value())); err == nil {
			return v
		}
	}
	return 0
}

// EggEntity reads the spawn egg's entity id, falling back to the
// version's spelling of a pig so the egg stays usable. The three
// placeholder spellings are what those versions actually used.
func (r *Resolver) EggEntity(compound *ir.Node, version int) string {
	if entity, ok := nbtpath.GetAs[string](r.editor, compound, "EntityTag", "id"); ok {
		return entity
	}
	switch version {
	case 12:
		return "pig"
	case 11:
		return "minecraft:pig"
	default:
		return "Pig"
	}
}

// Translate maps a composite key from one version's spelling to
// another's, or to "null" when no equivalent exists. Results are
// cached per (material, from, to); entries expire after sitting idle
// for the configured duration.
func (r *Resolver) Translate(material string, from, to int) string {
	key := material + "|" + strconv.Itoa(from) + "|" + strconv.Itoa(to)
	if item := r.cache.Get(key); item != nil {
		if debug.Cache() {
			debug.Logf("item: cache hit %q -> %q\n", key, item.Value())
		}
		return item.Value()
	}
	var res string
	if r.table.HasAt(material, to) {
		res = material
	} else {
		res = r.compute(normalize(material), from, to)
	}
	if debug.Resolve() {
		debug.Logf("item: translate %q %d->%d = %q\n", material, from, to, res)
	}
	r.cache.Set(key, res, ttlcache.DefaultTTL)
	return res
}

// normalize strips namespace prefixes and lifts a composite key into
// the table's legacy spelling.
func normalize(material string) string {
	return ChangeNameCase(strings.ReplaceAll(material, "minecraft:", ""), true)
}

// compute scans the whole table for a name used at or before from that
// matches value, then answers with that material's floor(to) name in
// modern case. No match anywhere means no equivalent.
func (r *Resolver) compute(value string, from, to int) string {
	for _, e := range r.table.Entries() {
		names := e.Versions()
		for i := len(names) - 1; i >= 0; i-- {
			if names[i].Version > from {
				continue
			}
			if names[i].Name == value {
				if name, ok := e.At(to); ok {
					return ChangeNameCase(name, false)
				}
				return noEquivalent
			}
		}
	}
	return noEquivalent
}
