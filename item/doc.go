// Package item converts item material identifiers between schema
// versions.
//
// A MaterialTable maps each canonical material to its name history.
// A Resolver uses the table to rewrite item compounds in place:
// the id field, the version-appropriate damage field, the spawn egg
// entity sub-tag, and a savedID marker for materials with no
// equivalent in the target version.
//
// # Usage
//
//	table, err := item.LoadTable(yamlBytes)
//	if err != nil { ... }
//	r := item.NewResolver(table)
//	defer r.Close()
//	r.Migrate(compound, 12, 13)
//
// # Related Packages
//
//   - github.com/nbtpath/go-nbtpath/item/filter - predicates for batch
//     migration
package item
