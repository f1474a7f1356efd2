package item

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// VersionName is one row of a material's name history.
type VersionName struct {
	Version int
	Name    string
}

// Entry is a single material's per-version name table, ordered by
// version ascending. Names are stored in the legacy upper-case style
// ("WITHER_SKELETON_SKULL", "SKULL:1", "SPAWN_EGG=MINECRAFT:PIG").
type Entry struct {
	id       string
	versions []VersionName
}

func (e *Entry) ID() string {
	return e.id
}

// Versions returns the name history ascending by version. The slice
// is shared; callers must not mutate it.
func (e *Entry) Versions() []VersionName {
	return e.versions
}

// At is the floor lookup: the latest known name at or before version.
func (e *Entry) At(version int) (string, bool) {
	for i := len(e.versions) - 1; i >= 0; i-- {
		if e.versions[i].Version <= version {
			return e.versions[i].Name, true
		}
	}
	return "", false
}

// MaterialTable is a read-only mapping from canonical material
// identifier to its name history. Build it once, share it freely.
type MaterialTable struct {
	entries map[string]*Entry
	order   []string
}

// NewTable builds a table from identifier -> version -> name data.
func NewTable(data map[string]map[int]string) *MaterialTable {
	t := &MaterialTable{entries: map[string]*Entry{}}
	for id, names := range data {
		e := &Entry{id: id}
		for v, n := range names {
			e.versions = append(e.versions, VersionName{Version: v, Name: n})
		}
		sort.Slice(e.versions, func(i, j int) bool {
			return e.versions[i].Version < e.versions[j].Version
		})
		t.entries[id] = e
		t.order = append(t.order, id)
	}
	sort.Strings(t.order)
	return t
}

// LoadTable reads a table from YAML of the form:
//
//	wither_skeleton_skull:
//	  8: "SKULL:1"
//	  13: WITHER_SKELETON_SKULL
func LoadTable(d []byte) (*MaterialTable, error) {
	data := map[string]map[int]string{}
	if err := yaml.Unmarshal(d, &data); err != nil {
		return nil, fmt.Errorf("material table: %w", err)
	}
	return NewTable(data), nil
}

func (t *MaterialTable) Entry(id string) *Entry {
	return t.entries[id]
}

// Entries iterates in deterministic (sorted identifier) order.
func (t *MaterialTable) Entries() []*Entry {
	res := make([]*Entry, 0, len(t.order))
	for _, id := range t.order {
		res = append(res, t.entries[id])
	}
	return res
}

func (t *MaterialTable) Len() int {
	return len(t.entries)
}

// Has reports whether key names a known material canonically, e.g.
// "minecraft:paper". Used to validate configured fallback materials.
func (t *MaterialTable) Has(key string) bool {
	return t.entries[strings.TrimPrefix(key, "minecraft:")] != nil
}

// HasAt reports whether key is already the right spelling for
// version: some entry's floor(version) name matches it. Such keys
// translate to themselves.
func (t *MaterialTable) HasAt(key string, version int) bool {
	want := ChangeNameCase(strings.TrimPrefix(key, "minecraft:"), true)
	for _, id := range t.order {
		if name, ok := t.entries[id].At(version); ok && name == want {
			return true
		}
	}
	return false
}

// ChangeNameCase converts between the legacy upper-case table spelling
// and the modern lower-case identifier spelling.
func ChangeNameCase(name string, upper bool) string {
	if upper {
		return strings.ToUpper(name)
	}
	return strings.ToLower(name)
}
