package properties

// Table is an insertion-ordered key/value mapping built from one parsed
// resource-bundle source. It is populated during parsing and treated as
// read-only afterwards.
type Table struct {
	keys   []string
	values map[string]string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string]string)}
}

// Set stores a value. A duplicate key keeps its original position and
// takes the last value, matching resource-bundle semantics.
func (t *Table) Set(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Get returns the value for key and whether the key exists. An empty
// value is a real entry, distinct from a missing key.
func (t *Table) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the keys in first-seen source order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.keys)
}
