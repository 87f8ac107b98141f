// Package registry provides a global registry for level packs.
// Packs register themselves in init() functions (or at startup when loaded
// from disk), allowing the CLI and hosts to discover them by ID without
// hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Pack is an ordered sequence of level templates.
type Pack interface {
	// ID returns a unique identifier for this pack (e.g., "classic").
	// Used for CLI flags and progress storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Len returns the number of levels in the pack.
	Len() int

	// Level returns the name and 5x5 grid template of level i.
	// i must be in [0, Len()).
	Level(i int) (name, grid string)
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID     string
	Title  string
	Levels int
}

// Factory is a function that returns a level pack.
type Factory func() Pack

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PackInfo)
	mu        sync.RWMutex
)

// Register adds a pack factory to the registry.
// Typically called from an init() function.
// Panics if a pack with the same ID is already registered.
func Register(id string, f Factory) {
	if err := Add(id, f); err != nil {
		panic(err.Error())
	}
}

// Add is like Register but returns an error on a duplicate ID.
func Add(id string, f Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		return fmt.Errorf("registry: pack %q already registered", id)
	}

	factories[id] = f

	p := f()
	infos[id] = PackInfo{ID: id, Title: p.Title(), Levels: p.Len()}
	return nil
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns the pack registered under id.
// Returns an error if the pack ID is not registered.
func Create(id string) (Pack, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}

	return f(), nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
