package ports

import "go.trai.ch/fuse/internal/core/domain"

// ListenerRegistry maps mutation names and component ids to the components' documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=listener_registry.go -destination=mocks/mock_listener_registry.go -package=mocks
type ListenerRegistry interface {
	// Listener returns the listener a component registered for a mutation.
	// It returns domain.ErrUnknownMutation or domain.ErrUnknownComponent when absent.
	Listener(mutationName, componentID string) (domain.Listener, error)

	// Register adds or overwrites a component's listener for a mutation.
	Register(mutationName string, listener domain.Listener) error

	// Unregister removes a component's listener and reports whether it existed.
	Unregister(mutationName, componentID string) bool

	// Replace swaps the whole registry content for listeners, keyed by mutation name.
	Replace(listeners map[string][]domain.Listener) error

	// Components returns the ids registered for a mutation, sorted.
	Components(mutationName string) []string
}
