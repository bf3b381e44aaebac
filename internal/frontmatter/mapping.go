package frontmatter

// Mapping is an ordered field-name to value map. Keys keep the position of
// their first insertion; re-setting an existing key overwrites the value in
// place, so a duplicated field in the input block keeps its original slot
// while the last occurrence wins.
type Mapping struct {
	keys   []string
	values map[string]Value
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: map[string]Value{}}
}

// Set stores value under key, preserving insertion order for new keys.
func (m *Mapping) Set(key string, value Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the field names in insertion order. The returned slice is a
// copy; callers can mutate it freely.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of fields.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Equal reports whether both mappings hold the same keys in the same order
// with equal values.
func (m *Mapping) Equal(other *Mapping) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i, key := range m.keys {
		if other.keys[i] != key {
			return false
		}
		if !m.values[key].Equal(other.values[key]) {
			return false
		}
	}
	return true
}

// appendItem grows the list stored under key. The parser uses it while a
// block list is open; setting a non-list key is a programming error caught by
// the kind check.
func (m *Mapping) appendItem(key, item string) {
	value, ok := m.values[key]
	if !ok || value.kind != KindList {
		return
	}
	value.items = append(value.items, item)
	m.values[key] = value
}
