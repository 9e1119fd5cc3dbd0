package models

// SourceTable is the lookup built from the source document: match-column
// content mapped to value-column content. Keys keep their first-seen
// position so fuzzy scans iterate deterministically, while a duplicate key
// in a later row overwrites the stored value (last row wins).
type SourceTable struct {
	keys   []string
	values map[string]string
}

// NewSourceTable returns an empty table.
func NewSourceTable() *SourceTable {
	return &SourceTable{values: make(map[string]string)}
}

// Put stores a key/value pair, overwriting the value of an existing key.
func (t *SourceTable) Put(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Get returns the value stored for key.
func (t *SourceTable) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (t *SourceTable) Keys() []string {
	return t.keys
}

// Len returns the number of distinct keys.
func (t *SourceTable) Len() int {
	return len(t.keys)
}
