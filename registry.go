package bitcol

// The bitwise columns declared on one type, keyed by normalized name.
type Registry struct {
	entries  []*Column
	entryMap map[string]*Column
}

// Creates a new empty registry.
func NewRegistry() Registry {
	return Registry{
		entries:  make([]*Column, 0),
		entryMap: make(map[string]*Column),
	}
}

// Returns whether the registry is empty.
func (r Registry) IsEmpty() bool {
	return len(r.entries) == 0
}

func (r Registry) Len() int {
	return len(r.entries)
}

// Adds a column to the registry. The column is found by its field name and its key name.
// A column already registered under either name is kept.
func (r *Registry) Add(column *Column) bool {
	if r.Has(column.Field) || r.Has(column.Name) {
		return false
	}
	r.entries = append(r.entries, column)
	r.entryMap[Normalize(column.Field)] = column
	r.entryMap[Normalize(column.Name)] = column
	return true
}

// Returns all columns in declaration order.
func (r Registry) Entries() []*Column {
	return r.entries
}

// Returns the column with the given name or nil.
func (r Registry) Get(name string) *Column {
	return r.entryMap[Normalize(name)]
}

// Returns whether the registry has a column with the given name.
func (r Registry) Has(name string) bool {
	_, ok := r.entryMap[Normalize(name)]
	return ok
}
