package domain

// Listener is a component's registered interest in a named mutation.
type Listener struct {
	// ComponentID identifies the requesting component.
	ComponentID string
	// Mutation is the component's own mutation document.
	Mutation string
}
