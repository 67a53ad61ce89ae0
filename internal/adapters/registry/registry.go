// Package registry provides the in-memory listener registry.
package registry

import (
	"maps"
	"slices"
	"sync"

	"go.trai.ch/fuse/internal/core/domain"
	"go.trai.ch/zerr"
)

// Registry implements ports.ListenerRegistry in memory.
type Registry struct {
	mu        sync.RWMutex
	listeners map[string]map[string]domain.Listener // mutation name -> component id -> listener
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		listeners: make(map[string]map[string]domain.Listener),
	}
}

// Listener returns the listener componentID registered for mutationName.
func (r *Registry) Listener(mutationName, componentID string) (domain.Listener, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byComponent, ok := r.listeners[mutationName]
	if !ok {
		return domain.Listener{}, zerr.With(zerr.Wrap(domain.ErrUnknownMutation, mutationName),
			"mutation", mutationName)
	}
	listener, ok := byComponent[componentID]
	if !ok {
		err := zerr.Wrap(domain.ErrUnknownComponent, componentID)
		err = zerr.With(err, "mutation", mutationName)
		return domain.Listener{}, zerr.With(err, "component", componentID)
	}
	return listener, nil
}

// Register adds or overwrites the listener of listener.ComponentID for mutationName.
func (r *Registry) Register(mutationName string, listener domain.Listener) error {
	if err := validate(mutationName, listener); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byComponent, ok := r.listeners[mutationName]
	if !ok {
		byComponent = make(map[string]domain.Listener)
		r.listeners[mutationName] = byComponent
	}
	byComponent[listener.ComponentID] = listener
	return nil
}

// Unregister removes a component's listener. A mutation left without listeners is forgotten.
func (r *Registry) Unregister(mutationName, componentID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	byComponent, ok := r.listeners[mutationName]
	if !ok {
		return false
	}
	if _, ok := byComponent[componentID]; !ok {
		return false
	}
	delete(byComponent, componentID)
	if len(byComponent) == 0 {
		delete(r.listeners, mutationName)
	}
	return true
}

// Replace swaps the registry content for listeners. Nothing changes if any listener is invalid.
func (r *Registry) Replace(listeners map[string][]domain.Listener) error {
	next := make(map[string]map[string]domain.Listener, len(listeners))
	for mutationName, list := range listeners {
		byComponent := make(map[string]domain.Listener, len(list))
		for _, listener := range list {
			if err := validate(mutationName, listener); err != nil {
				return err
			}
			byComponent[listener.ComponentID] = listener
		}
		next[mutationName] = byComponent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners = next
	return nil
}

// Components returns the sorted component ids registered for mutationName.
func (r *Registry) Components(mutationName string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.listeners[mutationName]))
}

func validate(mutationName string, listener domain.Listener) error {
	switch {
	case mutationName == "":
		return zerr.Wrap(domain.ErrInvalidListener, "missing mutation name")
	case listener.ComponentID == "":
		return zerr.With(zerr.Wrap(domain.ErrInvalidListener, "missing component id"), "mutation", mutationName)
	case listener.Mutation == "":
		err := zerr.Wrap(domain.ErrInvalidListener, "empty mutation document")
		err = zerr.With(err, "mutation", mutationName)
		return zerr.With(err, "component", listener.ComponentID)
	default:
		return nil
	}
}
