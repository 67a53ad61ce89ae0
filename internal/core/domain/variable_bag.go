package domain

// VariableBag accumulates variable definitions during a merge.
// It is append-only and unique by variable name; insertion order is kept.
type VariableBag struct {
	defs  []VariableDefinition
	index map[string]int
}

// NewVariableBag creates a bag seeded with defs. Later duplicates of a name are ignored.
func NewVariableBag(defs ...VariableDefinition) *VariableBag {
	b := &VariableBag{index: make(map[string]int, len(defs))}
	for _, def := range defs {
		b.Add(def)
	}
	return b
}

// Has reports whether a definition for the named variable exists.
func (b *VariableBag) Has(name string) bool {
	_, ok := b.index[name]
	return ok
}

// Get returns the definition of the named variable.
func (b *VariableBag) Get(name string) (VariableDefinition, bool) {
	i, ok := b.index[name]
	if !ok {
		return VariableDefinition{}, false
	}
	return b.defs[i], true
}

// Add appends def unless a definition with the same name is present.
// It reports whether def was added.
func (b *VariableBag) Add(def VariableDefinition) bool {
	if b.Has(def.Name) {
		return false
	}
	b.index[def.Name] = len(b.defs)
	b.defs = append(b.defs, def)
	return true
}

// Len returns the number of definitions.
func (b *VariableBag) Len() int {
	return len(b.defs)
}

// Definitions returns a copy of the definitions in insertion order.
func (b *VariableBag) Definitions() []VariableDefinition {
	if len(b.defs) == 0 {
		return nil
	}
	res := make([]VariableDefinition, len(b.defs))
	copy(res, b.defs)
	return res
}
