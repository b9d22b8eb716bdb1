package domain

// PathMap maps source paths to their derived output paths. Keys are compared
// case-insensitively via NormalizePath; the originally stored output path is
// returned verbatim.
type PathMap struct {
	entries map[string]string
}

// NewPathMap creates an empty PathMap.
func NewPathMap() *PathMap {
	return &PathMap{entries: make(map[string]string)}
}

// Set records the output path for source, replacing any existing entry that
// normalizes to the same key.
func (m *PathMap) Set(source, output string) {
	m.entries[NormalizePath(source)] = output
}

// Get returns the output path recorded for source.
func (m *PathMap) Get(source string) (string, bool) {
	out, ok := m.entries[NormalizePath(source)]
	return out, ok
}

// Len returns the number of entries.
func (m *PathMap) Len() int {
	return len(m.entries)
}
